package core

import "log"

// Run drives the main loop until the window is closed: clear, draw, present.
func Run(w *Window, frame func(w *Window)) {
	for !w.Closed() {
		w.Clear()
		if frame != nil {
			frame(w)
		}
		w.Update()
	}
	log.Println("core: main loop exit")
}
