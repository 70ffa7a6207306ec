package core

import (
	"fmt"
	"image"
	"log"
)

// Provider is the windowing library: global lifecycle, surfaces and the event pump.
type Provider interface {
	Init() error
	Terminate()
	CreateSurface(cfg SurfaceConfig) (Surface, error)
	PollEvents() // runs registered callbacks synchronously
}

// Surface is one native window with its rendering context.
type Surface interface {
	MakeContextCurrent()
	SetCallbacks(cb Callbacks)
	ShouldClose() bool
	SetShouldClose(v bool)
	FramebufferSize() (int, int)
	SwapBuffers()
	SetTitle(title string)
	SetIcon(icons []image.Image)
	Destroy()
}

// Graphics is the loaded graphics API of the current context.
type Graphics interface {
	Init() error // resolves function entry points; needs a current context
	Version() string
	SetClearColor(r, g, b, a float32)
	Clear()
	Viewport(w, h int)
}

// Callbacks receive the surface the event belongs to. Any field may be nil.
type Callbacks struct {
	Resize      func(s Surface, w, h int)
	Key         func(s Surface, key Key, scancode int, action Action, mods Mod)
	MouseButton func(s Surface, b Button, action Action, mods Mod)
	CursorPos   func(s Surface, x, y float64)
}

// SurfaceConfig is what the provider needs to create a surface.
type SurfaceConfig struct {
	Title     string
	Width     int
	Height    int
	VSync     bool
	Resizable bool
}

// Config for a window.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	Resizable  bool
	ClearColor [4]float32 // RGBA
	Icons      []image.Image
	Debug      bool        // log rejected input codes
	Logger     *log.Logger // nil means log.Default()
}

func DefaultConfig() Config {
	return Config{
		Title:      "Sparky",
		Width:      1280,
		Height:     720,
		VSync:      true,
		Resizable:  true,
		ClearColor: [4]float32{0.2, 0.3, 0.8, 1},
	}
}

func (c Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidConfig)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

func (c Config) surface() SurfaceConfig {
	return SurfaceConfig{
		Title:     c.Title,
		Width:     c.Width,
		Height:    c.Height,
		VSync:     c.VSync,
		Resizable: c.Resizable,
	}
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}
