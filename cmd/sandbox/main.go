package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hubastard/sparky/engine/assets"
	"github.com/hubastard/sparky/engine/colors"
	"github.com/hubastard/sparky/engine/core"
	glbackend "github.com/hubastard/sparky/engine/gfx/gl"
	"github.com/hubastard/sparky/engine/platform"
)

func main() {
	def := core.DefaultConfig()
	var (
		title    = flag.String("title", def.Title, "window title")
		width    = flag.Int("width", def.Width, "window width in pixels")
		height   = flag.Int("height", def.Height, "window height in pixels")
		vsync    = flag.Bool("vsync", def.VSync, "wait for vertical sync")
		clearHex = flag.String("clear", "#334dccff", "clear color as #RRGGBB[AA]")
		icon     = flag.String("icon", "", "window icon (png, bmp or webp)")
		debug    = flag.Bool("debug", false, "log rejected input codes")
		quiet    = flag.Bool("quiet", false, "do not print the cursor every frame")
	)
	flag.Parse()

	cfg := def
	cfg.Title, cfg.Width, cfg.Height, cfg.VSync, cfg.Debug = *title, *width, *height, *vsync, *debug

	cc, err := colors.Parse(*clearHex)
	if err != nil {
		log.Fatal(err)
	}
	cfg.ClearColor = cc

	icons, err := assets.LoadIcons(*icon)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Icons = icons

	plat, win, err := core.Open(platform.NewGLFW(), glbackend.NewGraphics(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer plat.Terminate()

	quad, err := glbackend.NewQuad(-0.5, -0.5, 0.5, 0.5)
	if err != nil {
		log.Fatal(err)
	}
	defer quad.Delete()

	core.Run(win, func(w *core.Window) {
		if w.IsKeyPressed(core.KeyEscape) {
			w.RequestClose()
		}

		fill := colors.White
		if w.IsMouseButtonPressed(core.MouseButtonLeft) {
			fill = colors.Yellow
		}
		quad.Draw(fill.RGBA())

		if !*quiet {
			x, y := w.MousePosition()
			fmt.Printf("%.1f, %.1f\n", x, y)
		}
	})
}
