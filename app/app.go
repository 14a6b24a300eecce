// Package app runs the cube demo: it owns the scene, turns held buttons into
// rotation, and renders one frame per vertical blank.
package app

import (
	"fmt"
	"runtime/debug"

	"bitcube/fix"
	"bitcube/hal"
	"bitcube/internal/buildinfo"
	"bitcube/render"
	"bitcube/scene"
)

// binding turns a held button into rotation about one axis.
type binding struct {
	button hal.Button
	axis   scene.Axis
	sign   fix.Scalar // raw +1 or -1
}

var bindings = [...]binding{
	{hal.ButtonUp, scene.AxisX, 1},
	{hal.ButtonDown, scene.AxisX, -1},
	{hal.ButtonLeft, scene.AxisZ, 1},
	{hal.ButtonRight, scene.AxisZ, -1},
	{hal.ButtonL, scene.AxisY, 1},
	{hal.ButtonR, scene.AxisY, -1},
}

// applyInput turns the mesh by step for every held button. Opposing buttons
// cancel out.
func applyInput(in hal.Input, m *scene.Mesh, step fix.Scalar) {
	for _, b := range bindings {
		if in.Pressed(b.button) {
			m.Turn(b.axis, b.sign*step)
		}
	}
}

type cube struct {
	h        hal.HAL
	cfg      Config
	scene    *scene.Scene
	renderer *render.Renderer
	step     fix.Scalar
	hud      *hud

	frame uint64
	stats render.Stats
}

func newCube(h hal.HAL, cfg Config) *cube {
	disp := h.Display()
	InitPalette(disp)

	r := render.NewRenderer(disp.Width(), disp.Height())
	r.Outlines = cfg.Outlines
	r.Outline = uint8(cfg.OutlineColor)

	c := &cube{
		h:        h,
		cfg:      cfg,
		scene:    scene.New(),
		renderer: r,
		step:     fix.FromFraction(1, cfg.StepsPerTurn),
	}
	if cfg.HUD {
		c.hud = newHUD(disp.Width(), disp.Height())
	}

	c.logf("bitcube %s: display %dx%d, %d polygons, step %s turn",
		buildinfo.Short(), disp.Width(), disp.Height(), len(c.scene.Mesh.Polygons), c.step)
	return c
}

func (c *cube) logf(format string, args ...any) {
	if l := c.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}

// Step runs one frame: input, rotation, clear, render, vblank wait, flip.
func (c *cube) Step() error {
	in := c.h.Input()
	in.Poll()
	applyInput(in, &c.scene.Mesh, c.step)
	c.scene.Tick(c.step)

	disp := c.h.Display()
	s := disp.Surface()
	s.Clear(uint8(c.cfg.ClearColor))
	c.stats = c.renderer.Render(s, &c.scene.Mesh)
	if c.hud != nil {
		c.hud.draw(s, c.frame, &c.scene.Mesh, c.stats)
	}

	c.h.VBlank().WaitForVBlank()
	disp.FlipPage()

	c.frame++
	if n := c.cfg.StatsEvery; n > 0 && c.frame%uint64(n) == 0 {
		rot := c.scene.Mesh.Rot
		c.logf("frame %d: %d/%d visible, rot x=%s y=%s z=%s",
			c.frame, c.stats.Visible, c.stats.Faces, rot.X, rot.Y, rot.Z)
	}
	return nil
}

// safeStep runs Step and turns a panic into an abort screen and an error.
func (c *cube) safeStep() (err error) {
	defer func() {
		if r := recover(); r != nil {
			showAbort(c.h, r, debug.Stack())
			err = fmt.Errorf("frame %d: %v", c.frame, r)
		}
	}()
	return c.Step()
}

// New initializes the demo with default config and returns its frame step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig returns the frame step for cfg. An invalid cfg is logged and
// replaced by DefaultConfig.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	if err := cfg.Validate(); err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString(err.Error())
		}
		cfg = DefaultConfig()
	}
	return newCube(h, cfg).safeStep
}

// Run starts the demo and never returns (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			select {}
		}
	}
}
