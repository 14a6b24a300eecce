package fix

// Angles are measured in turns: One is a full revolution.

const (
	quarterTurn = One / 4
	turnMask    = One - 1

	sineSegments = 64
	segmentShift = 4 // quarterTurn / sineSegments == 1<<segmentShift
)

// sineTable holds sin(k/256 turn) in Q20.12 for k in [0, 64].
var sineTable = [sineSegments + 1]Scalar{
	0, 101, 201, 301, 401, 501, 601, 700,
	799, 897, 995, 1092, 1189, 1285, 1380, 1474,
	1567, 1660, 1751, 1842, 1931, 2019, 2106, 2191,
	2276, 2359, 2440, 2520, 2598, 2675, 2751, 2824,
	2896, 2967, 3035, 3102, 3166, 3229, 3290, 3349,
	3406, 3461, 3513, 3564, 3612, 3659, 3703, 3745,
	3784, 3822, 3857, 3889, 3920, 3948, 3973, 3996,
	4017, 4036, 4052, 4065, 4076, 4085, 4091, 4095,
	4096,
}

// quarterSine evaluates sin over the first quadrant; r is in [0, quarterTurn].
func quarterSine(r Scalar) Scalar {
	i := r >> segmentShift
	if i >= sineSegments {
		return sineTable[sineSegments]
	}
	f := r & (1<<segmentShift - 1)
	a := sineTable[i]
	b := sineTable[i+1]
	return a + ((b-a)*f)>>segmentShift
}

// Sin returns the sine of an angle given in turns.
func Sin(a Scalar) Scalar {
	a &= turnMask
	r := a & (quarterTurn - 1)
	switch a / quarterTurn {
	case 0:
		return quarterSine(r)
	case 1:
		return quarterSine(quarterTurn - r)
	case 2:
		return -quarterSine(r)
	default:
		return -quarterSine(quarterTurn - r)
	}
}

// Cos returns the cosine of an angle given in turns.
func Cos(a Scalar) Scalar { return Sin(a + quarterTurn) }

func (s Scalar) Sin() Scalar { return Sin(s) }
func (s Scalar) Cos() Scalar { return Cos(s) }
