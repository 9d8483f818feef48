//go:build !gui

package window

import "instal/engine"

type headless struct{}

func New(engine.Project, Palette) Host {
	return headless{}
}

func (headless) Create(string, Point, Size) error { return ErrNoGUI }
func (headless) SetQuitOnClose(bool)              {}
func (headless) Run()                             {}
func (headless) Quit()                            {}
