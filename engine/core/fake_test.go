package core

import (
	"bytes"
	"image"
	"io"
	"log"

	"github.com/stretchr/testify/require"
)

// fakeProvider queues events and fires them on PollEvents, like GLFW does.
type fakeProvider struct {
	initErr    error
	createErr  error
	inits      int
	terminates int
	polls      int
	surfaces   []*fakeSurface
	pending    []func()
}

func (p *fakeProvider) Init() error { p.inits++; return p.initErr }
func (p *fakeProvider) Terminate()  { p.terminates++ }

func (p *fakeProvider) CreateSurface(cfg SurfaceConfig) (Surface, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	s := &fakeSurface{p: p, cfg: cfg, fbW: cfg.Width, fbH: cfg.Height, title: cfg.Title}
	p.surfaces = append(p.surfaces, s)
	return s, nil
}

func (p *fakeProvider) PollEvents() {
	p.polls++
	evs := p.pending
	p.pending = nil
	for _, ev := range evs {
		ev()
	}
}

type fakeSurface struct {
	p         *fakeProvider
	cfg       SurfaceConfig
	cb        Callbacks
	current   bool
	destroyed int
	close     bool
	fbW, fbH  int
	swaps     int
	title     string
	icons     []image.Image
}

func (s *fakeSurface) MakeContextCurrent()         { s.current = true }
func (s *fakeSurface) SetCallbacks(cb Callbacks)   { s.cb = cb }
func (s *fakeSurface) ShouldClose() bool           { return s.close }
func (s *fakeSurface) SetShouldClose(v bool)       { s.close = v }
func (s *fakeSurface) FramebufferSize() (int, int) { return s.fbW, s.fbH }
func (s *fakeSurface) SwapBuffers()                { s.swaps++ }
func (s *fakeSurface) SetTitle(t string)           { s.title = t }
func (s *fakeSurface) SetIcon(icons []image.Image) { s.icons = icons }
func (s *fakeSurface) Destroy()                    { s.destroyed++ }

func (s *fakeSurface) queue(ev func()) { s.p.pending = append(s.p.pending, ev) }

func (s *fakeSurface) key(k Key, a Action) {
	s.queue(func() {
		if s.cb.Key != nil {
			s.cb.Key(s, k, 0, a, ModNone)
		}
	})
}

func (s *fakeSurface) button(b Button, a Action) {
	s.queue(func() {
		if s.cb.MouseButton != nil {
			s.cb.MouseButton(s, b, a, ModNone)
		}
	})
}

func (s *fakeSurface) cursor(x, y float64) {
	s.queue(func() {
		if s.cb.CursorPos != nil {
			s.cb.CursorPos(s, x, y)
		}
	})
}

func (s *fakeSurface) resize(w, h int) {
	s.queue(func() {
		s.fbW, s.fbH = w, h
		if s.cb.Resize != nil {
			s.cb.Resize(s, w, h)
		}
	})
}

func (s *fakeSurface) requestClose() { s.queue(func() { s.close = true }) }

type fakeGraphics struct {
	initErr    error
	inits      int
	clears     int
	viewports  [][2]int
	clearColor [4]float32
}

func (g *fakeGraphics) Init() error                       { g.inits++; return g.initErr }
func (g *fakeGraphics) Version() string                   { return "fake 3.3" }
func (g *fakeGraphics) SetClearColor(r, gr, b, a float32) { g.clearColor = [4]float32{r, gr, b, a} }
func (g *fakeGraphics) Clear()                            { g.clears++ }
func (g *fakeGraphics) Viewport(w, h int)                 { g.viewports = append(g.viewports, [2]int{w, h}) }

type harness struct {
	prov *fakeProvider
	gfx  *fakeGraphics
	plat *Platform
	win  *Window
	surf *fakeSurface
	logs *bytes.Buffer
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Logger = log.New(io.Discard, "", 0)
	return cfg
}

// tester is satisfied by both *testing.T and *rapid.T.
type tester interface {
	require.TestingT
	Helper()
}

func open(t tester, cfg Config) *harness {
	t.Helper()
	logs := &bytes.Buffer{}
	if cfg.Logger == nil {
		cfg.Logger = log.New(logs, "", 0)
	}
	h := &harness{prov: &fakeProvider{}, gfx: &fakeGraphics{}, logs: logs}
	var err error
	h.plat, h.win, err = Open(h.prov, h.gfx, cfg)
	require.NoError(t, err)
	require.Len(t, h.prov.surfaces, 1)
	h.surf = h.prov.surfaces[0]
	return h
}
