package platform

import (
	"image"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/sparky/engine/core"
)

var (
	_ core.Provider = (*GLFW)(nil)
	_ core.Surface  = (*Surface)(nil)
)

// GLFW implements core.Provider. Must be used from the main thread.
type GLFW struct{}

func NewGLFW() *GLFW { return &GLFW{} }

func (*GLFW) Init() error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	return glfw.Init()
}

func (*GLFW) Terminate()  { glfw.Terminate() }
func (*GLFW) PollEvents() { glfw.PollEvents() }

func (*GLFW) CreateSurface(cfg core.SurfaceConfig) (core.Surface, error) {
	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Surface{w: win, vsync: cfg.VSync}, nil
}

// Surface wraps a *glfw.Window. The pointer itself is the handle passed back
// to callbacks, so it must stay stable for the surface's lifetime.
type Surface struct {
	w     *glfw.Window
	vsync bool
}

func (s *Surface) MakeContextCurrent() {
	s.w.MakeContextCurrent()
	if s.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

// SetCallbacks replaces all four input callbacks. Nil fields unregister.
func (s *Surface) SetCallbacks(cb core.Callbacks) {
	if cb.Resize != nil {
		s.w.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) { cb.Resize(s, w, h) })
	} else {
		s.w.SetFramebufferSizeCallback(nil)
	}
	if cb.Key != nil {
		s.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
			cb.Key(s, core.Key(key), scancode, translateAction(action), translateMods(mods))
		})
	} else {
		s.w.SetKeyCallback(nil)
	}
	if cb.MouseButton != nil {
		s.w.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
			cb.MouseButton(s, core.Button(b), translateAction(action), translateMods(mods))
		})
	} else {
		s.w.SetMouseButtonCallback(nil)
	}
	if cb.CursorPos != nil {
		s.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) { cb.CursorPos(s, x, y) })
	} else {
		s.w.SetCursorPosCallback(nil)
	}
}

func (s *Surface) ShouldClose() bool           { return s.w.ShouldClose() }
func (s *Surface) SetShouldClose(v bool)       { s.w.SetShouldClose(v) }
func (s *Surface) FramebufferSize() (int, int) { return s.w.GetFramebufferSize() }
func (s *Surface) SwapBuffers()                { s.w.SwapBuffers() }
func (s *Surface) SetTitle(t string)           { s.w.SetTitle(t) }
func (s *Surface) SetIcon(icons []image.Image) { s.w.SetIcon(icons) }
func (s *Surface) Destroy()                    { s.w.Destroy() }

func translateAction(a glfw.Action) core.Action {
	switch a {
	case glfw.Press:
		return core.Press
	case glfw.Repeat:
		return core.Repeat
	default:
		return core.Release
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
