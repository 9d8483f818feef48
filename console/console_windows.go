//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procAttachConsole     = kernel32.NewProc("AttachConsole")
	procAllocConsole      = kernel32.NewProc("AllocConsole")
	procIsDebuggerPresent = kernel32.NewProc("IsDebuggerPresent")
)

// ATTACH_PARENT_PROCESS, (DWORD)-1.
const attachParentProcess = 0xFFFFFFFF

// Attach connects the GUI-subsystem process to its parent's console (a
// terminal launch) or, under a debugger, to a freshly allocated one.
func Attach() bool {
	if r, _, _ := procAttachConsole.Call(attachParentProcess); r != 0 {
		rebind()
		return true
	}
	if r, _, _ := procIsDebuggerPresent.Call(); r == 0 {
		return false
	}
	if r, _, _ := procAllocConsole.Call(); r == 0 {
		return false
	}
	rebind()
	return true
}

// rebind points os.Stdout and os.Stderr at the console; a GUI process
// starts with no standard handles.
func rebind() {
	out, err := os.OpenFile("CONOUT$", os.O_RDWR, 0)
	if err != nil {
		return
	}
	os.Stdout = out
	os.Stderr = out
}
