// Package window hosts the embedded engine in a native top-level window.
package window

import "errors"

// ErrNoGUI is returned by Create in builds without the gui tag.
var ErrNoGUI = errors.New("built without GUI support (rebuild with -tags gui)")

type Point struct {
	X, Y int
}

type Size struct {
	Width, Height int
}

// Host is a top-level window plus the event loop that drives it.
type Host interface {
	Create(title string, origin Point, size Size) error
	// SetQuitOnClose makes closing the window end Run.
	SetQuitOnClose(quit bool)
	// Run dispatches platform events until the window quits.
	Run()
	// Quit asks Run to return. Safe from any goroutine.
	Quit()
}
