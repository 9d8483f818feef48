package doctor

import (
	"errors"
	"strconv"
)

// errorModNotFound is ERROR_MOD_NOT_FOUND, what the loader reports for a
// missing library.
const errorModNotFound = 126

// FakeSystem is an in-memory System. Paths are compared verbatim.
type FakeSystem struct {
	COMResult uint32
	Temp      string
	Exe       Result
	Cwd       Result
	Env       map[string]string
	Registry  map[string]uint64
	// RegistryCode, when non-zero, makes every registry read fail with it.
	RegistryCode uint32
	Files        map[string]bool
	LoadCodes    map[string]uint32
	Versions     map[string]string

	COMInits   int
	COMUninits int
	Loads      int
}

func NewFake(exeDir string) *FakeSystem {
	return &FakeSystem{
		Exe:       Found(exeDir),
		Cwd:       Found(exeDir),
		Env:       map[string]string{},
		Registry:  map[string]uint64{},
		Files:     map[string]bool{},
		LoadCodes: map[string]uint32{},
		Versions:  map[string]string{},
	}
}

// RegistryPath joins a key and value name the way FakeSystem.Registry is keyed.
func RegistryPath(key, value string) string {
	return key + `\` + value
}

func (f *FakeSystem) InitCOM() uint32 {
	f.COMInits++
	return f.COMResult
}

func (f *FakeSystem) UninitCOM() { f.COMUninits++ }

func (f *FakeSystem) TempDir() (string, error) {
	if f.Temp == "" {
		return "", errors.New("temp dir unavailable")
	}
	return f.Temp, nil
}

func (f *FakeSystem) ExecutableDir() Result { return f.Exe }
func (f *FakeSystem) WorkingDir() Result    { return f.Cwd }

func (f *FakeSystem) LookupEnv(key string) Result {
	v, ok := f.Env[key]
	if !ok {
		return Missing("")
	}
	return Found(v)
}

func (f *FakeSystem) RegistryDWORD(key, value string) Result {
	if f.RegistryCode != 0 {
		return FailedWith(f.RegistryCode)
	}
	v, ok := f.Registry[RegistryPath(key, value)]
	if !ok {
		return Missing("")
	}
	return Found(strconv.FormatUint(v, 10))
}

func (f *FakeSystem) Stat(path string) Result {
	if f.Files[path] {
		return Found("")
	}
	return Missing("")
}

func (f *FakeSystem) LoadLibrary(path string) Result {
	f.Loads++
	if code, ok := f.LoadCodes[path]; ok {
		return FailedWith(code)
	}
	if !f.Files[path] {
		return FailedWith(errorModNotFound)
	}
	return Found("")
}

func (f *FakeSystem) FileVersion(path string) Result {
	if v, ok := f.Versions[path]; ok {
		return Found(v)
	}
	return Missing("")
}
