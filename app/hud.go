package app

import (
	"fmt"

	"bitcube/render"
	"bitcube/scene"
)

const hudInk = scene.ColorWhite

type hud struct {
	d     pageDisplayer
	lines [2]string
}

func newHUD(w, h int) *hud {
	return &hud{d: pageDisplayer{w: int16(w), h: int16(h), ink: hudInk}}
}

func (u *hud) draw(s render.Surface, frame uint64, m *scene.Mesh, st render.Stats) {
	u.d.s = s
	u.lines[0] = fmt.Sprintf("f%d vis %d/%d", frame, st.Visible, st.Faces)
	u.lines[1] = fmt.Sprintf("x%s y%s z%s", m.Rot.X, m.Rot.Y, m.Rot.Z)
	writeLines(&u.d, 2, 1, u.lines[:])
}
