package core

import (
	"fmt"
	"log"
)

// Platform owns the provider's global state. Windows are created from it
// and it must outlive them; Terminate tears everything down.
type Platform struct {
	provider   Provider
	gfx        Graphics
	windows    map[Surface]*Window // non-owning, cleared on Destroy
	terminated bool
}

// Init performs the provider's global initialization.
func Init(p Provider, g Graphics) (*Platform, error) {
	if err := p.Init(); err != nil {
		log.Printf("core: failed to initialise provider: %v", err)
		p.Terminate()
		return nil, fmt.Errorf("%w: %w", ErrProviderInit, err)
	}
	return &Platform{
		provider: p,
		gfx:      g,
		windows:  map[Surface]*Window{},
	}, nil
}

// Open initializes the provider and creates a window in one step. If the
// window cannot be created the platform is terminated again.
func Open(p Provider, g Graphics, cfg Config) (*Platform, *Window, error) {
	plat, err := Init(p, g)
	if err != nil {
		return nil, nil, err
	}
	win, err := plat.NewWindow(cfg)
	if err != nil {
		plat.Terminate()
		return nil, nil, err
	}
	return plat, win, nil
}

// Terminate destroys any live window and releases the provider. Safe to call twice.
func (p *Platform) Terminate() {
	if p.terminated {
		return
	}
	for _, w := range p.windows {
		w.Destroy()
	}
	p.provider.Terminate()
	p.terminated = true
}

func (p *Platform) Terminated() bool { return p.terminated }

func (p *Platform) lookup(s Surface) *Window {
	if s == nil {
		return nil
	}
	return p.windows[s]
}

func (p *Platform) callbacks() Callbacks {
	return Callbacks{
		Resize:      p.onResize,
		Key:         p.onKey,
		MouseButton: p.onMouseButton,
		CursorPos:   p.onCursorPos,
	}
}

// The viewport follows the surface right away; cached sizes wait for Update.
func (p *Platform) onResize(s Surface, width, height int) {
	w := p.lookup(s)
	if w == nil {
		return
	}
	w.gfx.Viewport(width, height)
}

func (p *Platform) onKey(s Surface, key Key, _ int, action Action, _ Mod) {
	w := p.lookup(s)
	if w == nil {
		return
	}
	if !w.input.SetKey(key, action.Down()) && w.debug {
		w.log.Printf("core: key code %d out of range, ignored", key)
	}
}

func (p *Platform) onMouseButton(s Surface, b Button, action Action, _ Mod) {
	w := p.lookup(s)
	if w == nil {
		return
	}
	if !w.input.SetButton(b, action.Down()) && w.debug {
		w.log.Printf("core: mouse button %d out of range, ignored", b)
	}
}

func (p *Platform) onCursorPos(s Surface, x, y float64) {
	if w := p.lookup(s); w != nil {
		w.input.SetCursor(x, y)
	}
}
