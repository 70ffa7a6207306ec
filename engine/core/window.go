package core

import (
	"fmt"
	"log"
)

// State is the lifecycle stage of a Window.
type State int

const (
	Uninitialized State = iota
	Active
	CloseRequested
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Active:
		return "active"
	case CloseRequested:
		return "close-requested"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Window is one on-screen surface, its rendering context and its input state.
// All methods must be called from the goroutine that created it.
type Window struct {
	title         string
	width, height int

	platform *Platform
	surface  Surface // nil once destroyed
	gfx      Graphics
	input    Input

	log   *log.Logger
	debug bool
}

// NewWindow creates the surface, makes its context current, hooks up the
// input callbacks and initializes the graphics loader, in that order.
// Nothing is left behind on failure.
func (p *Platform) NewWindow(cfg Config) (*Window, error) {
	if p.terminated {
		return nil, ErrTerminated
	}
	if len(p.windows) > 0 {
		return nil, ErrWindowExists
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.logger()

	s, err := p.provider.CreateSurface(cfg.surface())
	if err != nil {
		logger.Printf("core: failed to create window %q: %v", cfg.Title, err)
		return nil, fmt.Errorf("%w: %w", ErrSurfaceCreate, err)
	}

	w := &Window{
		title:    cfg.Title,
		width:    cfg.Width,
		height:   cfg.Height,
		platform: p,
		surface:  s,
		gfx:      p.gfx,
		log:      logger,
		debug:    cfg.Debug,
	}

	s.MakeContextCurrent()
	p.windows[s] = w
	s.SetCallbacks(p.callbacks())

	if err := w.gfx.Init(); err != nil {
		logger.Printf("core: could not initialise graphics loader: %v", err)
		w.Destroy()
		return nil, fmt.Errorf("%w: %w", ErrLoaderInit, err)
	}
	logger.Printf("GL: %s", w.gfx.Version())

	c := cfg.ClearColor
	w.gfx.SetClearColor(c[0], c[1], c[2], c[3])
	if len(cfg.Icons) > 0 {
		s.SetIcon(cfg.Icons)
	}
	return w, nil
}

// Destroy releases the surface and drops the window from the callback
// registry. Further calls are no-ops.
func (w *Window) Destroy() {
	if w.surface == nil {
		return
	}
	s := w.surface
	delete(w.platform.windows, s)
	s.SetCallbacks(Callbacks{})
	s.Destroy()
	w.surface = nil
	w.input.Reset()
}

// Update drains pending events, refreshes the cached size and presents the frame.
func (w *Window) Update() {
	if w.surface == nil {
		return
	}
	w.platform.provider.PollEvents()
	if w.surface == nil {
		return
	}
	w.width, w.height = w.surface.FramebufferSize()
	w.surface.SwapBuffers()
}

// Closed reports whether the user asked to close the window.
func (w *Window) Closed() bool {
	if w.surface == nil {
		return true
	}
	return w.surface.ShouldClose()
}

// RequestClose flags the window for closing as if the user had clicked close.
func (w *Window) RequestClose() {
	if w.surface != nil {
		w.surface.SetShouldClose(true)
	}
}

// Clear clears the color and depth buffers of the current context.
func (w *Window) Clear() {
	if w.surface == nil {
		return
	}
	w.gfx.Clear()
}

func (w *Window) State() State {
	switch {
	case w.platform == nil:
		return Uninitialized
	case w.surface == nil || w.platform.terminated:
		return Terminated
	case w.surface.ShouldClose():
		return CloseRequested
	default:
		return Active
	}
}

func (w *Window) Title() string { return w.title }

func (w *Window) SetTitle(title string) {
	w.title = title
	if w.surface != nil {
		w.surface.SetTitle(title)
	}
}

// Width and Height are as of the last Update.
func (w *Window) Width() int       { return w.width }
func (w *Window) Height() int      { return w.height }
func (w *Window) Size() (int, int) { return w.width, w.height }

func (w *Window) IsKeyPressed(key Key) bool          { return w.input.IsKeyPressed(key) }
func (w *Window) IsMouseButtonPressed(b Button) bool { return w.input.IsMouseButtonPressed(b) }
func (w *Window) MousePosition() (x, y float64)      { return w.input.MousePosition() }

// Input returns the window's input table. Callers should only read it.
func (w *Window) Input() *Input { return &w.input }
