// Package engine describes the embedded application engine the window
// hosts.
package engine

import "path/filepath"

// Project is what the engine is started with: where its data lives and the
// arguments handed to the application's entrypoint.
type Project struct {
	DataDir        string
	EntrypointArgs []string
}

// NewProject copies args, so later changes to the caller's slice (os.Args,
// usually) do not reach the engine.
func NewProject(dataDir string, args []string) Project {
	return Project{
		DataDir:        filepath.FromSlash(dataDir),
		EntrypointArgs: append([]string(nil), args...),
	}
}

// CommandLineArguments returns the process arguments without the program
// name.
func CommandLineArguments(argv []string) []string {
	if len(argv) <= 1 {
		return nil
	}
	return append([]string(nil), argv[1:]...)
}
