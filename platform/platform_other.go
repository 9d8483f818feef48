//go:build !windows

package platform

import (
	"errors"
	"os"
	"syscall"

	"instal/doctor"
)

// No registry outside Windows: the redistributable is never installed.
func (System) RegistryDWORD(key, value string) doctor.Result {
	return doctor.Missing("no registry")
}

// LoadLibrary only checks the file: the engine library is a PE image and
// cannot be mapped here.
func (System) LoadLibrary(path string) doctor.Result {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doctor.FailedWith(uint32(syscall.ENOENT))
		}
		return doctor.FailedWith(errCode(err))
	}
	return doctor.FailedWith(uint32(syscall.ENOSYS))
}

func (System) FileVersion(path string) doctor.Result {
	return doctor.Missing("no version resource")
}
