// Package platform answers the startup probes against the real operating
// system.
package platform

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/go-ole/go-ole"

	"instal/doctor"
)

// eFail is E_FAIL, reported when COM init fails without an HRESULT.
const eFail = 0x80004005

type System struct{}

var _ doctor.System = System{}

func New() System {
	return System{}
}

func (System) InitCOM() uint32 {
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	if err == nil {
		return 0
	}
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		return uint32(oleErr.Code())
	}
	return eFail
}

func (System) UninitCOM() {
	ole.CoUninitialize()
}

// TempDir is the per-user temporary directory (GetTempPath on Windows).
func (System) TempDir() (string, error) {
	d := os.TempDir()
	if d == "" {
		return "", errors.New("temp directory unavailable")
	}
	return d, nil
}

func (System) ExecutableDir() doctor.Result {
	exe, err := os.Executable()
	if err != nil {
		return doctor.FailedWith(errCode(err))
	}
	return doctor.Found(filepath.Dir(exe))
}

func (System) WorkingDir() doctor.Result {
	wd, err := os.Getwd()
	if err != nil {
		return doctor.FailedWith(errCode(err))
	}
	return doctor.Found(wd)
}

func (System) LookupEnv(key string) doctor.Result {
	v, ok := os.LookupEnv(key)
	if !ok {
		return doctor.Missing("")
	}
	return doctor.Found(v)
}

func (System) Stat(path string) doctor.Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doctor.Missing("")
		}
		return doctor.FailedWith(errCode(err))
	}
	if info.IsDir() {
		return doctor.Found("dir")
	}
	return doctor.Found("file")
}

// errCode extracts the OS error number from err, or 0 if it carries none.
func errCode(err error) uint32 {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}
