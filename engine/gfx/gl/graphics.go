package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/sparky/engine/core"
)

var _ core.Graphics = (*Graphics)(nil)

// Graphics is the OpenGL 3.3 core backend for core.Window.
type Graphics struct {
	version string
}

func NewGraphics() *Graphics { return &Graphics{} }

// Init loads the GL entry points. A context must be current.
func (g *Graphics) Init() error {
	if err := gl.Init(); err != nil {
		return err
	}
	g.version = gl.GoStr(gl.GetString(gl.VERSION))
	// Enable depth (not necessary for 2D, but good default)
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (g *Graphics) Version() string { return g.version }

func (g *Graphics) SetClearColor(r, gr, b, a float32) { gl.ClearColor(r, gr, b, a) }

func (g *Graphics) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }

func (g *Graphics) Viewport(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	gl.Viewport(0, 0, int32(w), int32(h))
}
