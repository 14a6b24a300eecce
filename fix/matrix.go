package fix

import "fmt"

// MaxDim is the largest row or column count a Matrix can hold.
const MaxDim = 4

// Matrix is a small dense matrix with logical Height (rows) and Width
// (columns) over a fixed MaxDim x MaxDim backing array. It is a value type:
// copying a Matrix copies its cells and never allocates.
type Matrix struct {
	Height int
	Width  int

	cells [MaxDim][MaxDim]Scalar // [row][col]
}

// NewMatrix returns a zero matrix with h rows and w columns.
//
// It panics if either dimension is outside [1, MaxDim].
func NewMatrix(h, w int) Matrix {
	if h < 1 || h > MaxDim || w < 1 || w > MaxDim {
		panic(fmt.Sprintf("fix: matrix dimensions %dx%d out of range", h, w))
	}
	return Matrix{Height: h, Width: w}
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.cells[i][i] = One
	}
	return m
}

// MatrixOf builds a matrix from rows. All rows must have the same length.
func MatrixOf(rows ...[]Scalar) Matrix {
	if len(rows) == 0 {
		panic("fix: matrix with no rows")
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != m.Width {
			panic(fmt.Sprintf("fix: matrix row %d has %d cells, want %d", r, len(row), m.Width))
		}
		copy(m.cells[r][:], row)
	}
	return m
}

func (m Matrix) At(row, col int) Scalar { return m.cells[row][col] }

func (m *Matrix) Set(row, col int, v Scalar) { m.cells[row][col] = v }

// Mul returns m*rhs, a Height x rhs.Width matrix.
//
// Mismatched operands indicate a broken call site, not a runtime condition:
// Mul panics if m.Width != rhs.Height.
func (m Matrix) Mul(rhs Matrix) Matrix {
	if m.Width != rhs.Height {
		panic(fmt.Sprintf("fix: cannot multiply %dx%d by %dx%d matrix", m.Height, m.Width, rhs.Height, rhs.Width))
	}
	out := NewMatrix(m.Height, rhs.Width)
	for r := 0; r < out.Height; r++ {
		for c := 0; c < out.Width; c++ {
			var sum Scalar
			for i := 0; i < m.Width; i++ {
				sum += m.cells[r][i].Mul(rhs.cells[i][c])
			}
			out.cells[r][c] = sum
		}
	}
	return out
}

// FromVertex returns v as a 1x3 row matrix.
func FromVertex(v Vec3) Matrix {
	m := NewMatrix(1, 3)
	m.cells[0][0] = v.X
	m.cells[0][1] = v.Y
	m.cells[0][2] = v.Z
	return m
}

// Vertex reads a Vec3 back from the first row of m.
func (m Matrix) Vertex() Vec3 {
	return Vec3{X: m.cells[0][0], Y: m.cells[0][1], Z: m.cells[0][2]}
}
