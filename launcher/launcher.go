// Package launcher runs the desktop start-up sequence: diagnostics, window
// construction, argument hand-off and the event loop.
package launcher

import (
	"os"

	"instal/config"
	"instal/doctor"
	"instal/engine"
	"instal/log"
	"instal/window"
)

type Launcher struct {
	Config config.Config
	// ConfigErr is a settings load failure; it is logged and the
	// defaults in Config are used.
	ConfigErr error
	Log       *log.Log
	System    doctor.System
	NewHost   func(engine.Project, window.Palette) window.Host
	// Args are forwarded to the engine verbatim.
	Args []string
	// Interrupt, when set, quits the event loop on receive.
	Interrupt <-chan os.Signal
}

// Run returns the process exit code: 0 after the event loop ends, 1 when
// the window cannot be created. No probe outcome changes it.
func (l *Launcher) Run() int {
	rep := doctor.New(l.Log, l.System, l.Config.ProbeOptions())
	rep.Run()
	if l.ConfigErr != nil {
		l.Log.Linef("config: %v (using defaults)", l.ConfigErr)
	}

	project := engine.NewProject(l.Config.Engine.DataDir, l.Args)
	host := l.NewHost(project, l.Config.Palette())
	if err := host.Create(l.Config.Window.Title, l.Config.Origin(), l.Config.Size()); err != nil {
		rep.WindowResult(err)
		return 1
	}
	rep.WindowResult(nil)
	host.SetQuitOnClose(true)

	if l.Interrupt != nil {
		stop := make(chan struct{})
		defer close(stop)
		go func() {
			select {
			case <-l.Interrupt:
				host.Quit()
			case <-stop:
			}
		}()
	}
	host.Run()

	l.System.UninitCOM()
	rep.Exit()
	return 0
}
