package main

import (
	"fmt"
	"os"
	"runtime"

	"instal/config"
	"instal/console"
	"instal/engine"
	"instal/launcher"
	"instal/log"
	"instal/platform"
	"instal/shutdown"
	"instal/window"
)

func init() {
	// COM is initialized apartment-threaded and the window's event loop
	// must run on the thread that created it.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	attached := console.Attach()
	sys := platform.New()

	cfg, cfgErr := config.Load(sys.ExecutableDir().Detail)

	lg := log.New(log.ResolvePath(cfg.Log.Path, sys.TempDir), console.Echo(attached))
	if err := lg.CaptureCrashes(); err != nil && attached {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	l := &launcher.Launcher{
		Config:    cfg,
		ConfigErr: cfgErr,
		Log:       lg,
		System:    sys,
		NewHost:   window.New,
		Args:      engine.CommandLineArguments(os.Args),
		Interrupt: shutdown.Interrupts(),
	}
	return l.Run()
}
