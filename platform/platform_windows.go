//go:build windows

package platform

import (
	"errors"
	"fmt"
	"strconv"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"instal/doctor"
)

func (System) RegistryDWORD(key, value string) doctor.Result {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, key, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return doctor.Missing("key not found")
		}
		return doctor.FailedWith(errCode(err))
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(value)
	switch {
	case errors.Is(err, registry.ErrNotExist):
		return doctor.Missing("value not found")
	case errors.Is(err, registry.ErrUnexpectedType):
		return doctor.Missing("value is not a DWORD")
	case err != nil:
		return doctor.FailedWith(errCode(err))
	}
	return doctor.Found(strconv.FormatUint(v, 10))
}

// LoadLibrary runs the library's initialization code once and unloads it.
func (System) LoadLibrary(path string) doctor.Result {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		code := errCode(err)
		if code == 0 {
			code = uint32(windows.ERROR_MOD_NOT_FOUND)
		}
		return doctor.FailedWith(code)
	}
	windows.FreeLibrary(h)
	return doctor.Found("")
}

// FileVersion reads the fixed file version from the PE version resource.
func (System) FileVersion(path string) doctor.Result {
	size, err := windows.GetFileVersionInfoSize(path, nil)
	if err != nil {
		if errors.Is(err, windows.ERROR_RESOURCE_TYPE_NOT_FOUND) {
			return doctor.Missing("no version resource")
		}
		return doctor.FailedWith(errCode(err))
	}

	buf := make([]byte, size)
	if err := windows.GetFileVersionInfo(path, 0, size, unsafe.Pointer(&buf[0])); err != nil {
		return doctor.FailedWith(errCode(err))
	}

	var fixed *windows.VS_FIXEDFILEINFO
	var fixedLen uint32
	if err := windows.VerQueryValue(unsafe.Pointer(&buf[0]), `\`, unsafe.Pointer(&fixed), &fixedLen); err != nil {
		return doctor.FailedWith(errCode(err))
	}
	if fixedLen < uint32(unsafe.Sizeof(windows.VS_FIXEDFILEINFO{})) || fixed.Signature != 0xFEEF04BD {
		return doctor.Missing("bad VS_FIXEDFILEINFO")
	}

	return doctor.Found(fmt.Sprintf("%d.%d.%d.%d",
		fixed.FileVersionMS>>16, fixed.FileVersionMS&0xFFFF,
		fixed.FileVersionLS>>16, fixed.FileVersionLS&0xFFFF))
}
