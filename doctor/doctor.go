package doctor

import (
	"fmt"
	"path/filepath"

	"instal/log"
)

// System is the slice of the operating system the probes look at. Every
// method reports failures as data; none of them may panic or block.
type System interface {
	// InitCOM initializes the COM runtime for the calling thread
	// (apartment-threaded) and returns the raw HRESULT.
	InitCOM() uint32
	UninitCOM()

	TempDir() (string, error)
	ExecutableDir() Result
	WorkingDir() Result
	LookupEnv(key string) Result

	// RegistryDWORD reads a DWORD value under HKEY_LOCAL_MACHINE. Detail
	// holds the decimal value when present.
	RegistryDWORD(key, value string) Result
	Stat(path string) Result

	// LoadLibrary loads the shared library at path and releases it again.
	LoadLibrary(path string) Result
	FileVersion(path string) Result
}

// Probe names one step of the startup sequence.
type Probe string

const (
	ProbeStart         Probe = "start"
	ProbeCOM           Probe = "com"
	ProbeExeDir        Probe = "exe_dir"
	ProbeWorkingDir    Probe = "cwd"
	ProbeSearchPath    Probe = "path"
	ProbeRedist        Probe = "redist"
	ProbeEngineFile    Probe = "engine_file"
	ProbeICUData       Probe = "icu_data"
	ProbeAssets        Probe = "assets"
	ProbeLoadLibrary   Probe = "load_library"
	ProbeEngineVersion Probe = "engine_version"
)

// Finding is one executed probe: its outcome and the line it logged.
type Finding struct {
	Probe  Probe
	Result Result
	Line   string
}

// Options names what the probes look for. Paths are slash-separated and
// relative to the executable's directory.
type Options struct {
	EngineLibrary string
	ICUData       string
	AssetsDir     string
	RedistKey     string
	RedistValue   string
	SearchPathVar string
	LoadLibrary   bool
}

func DefaultOptions() Options {
	return Options{
		EngineLibrary: "flutter_windows.dll",
		ICUData:       "data/icudtl.dat",
		AssetsDir:     "data/flutter_assets",
		RedistKey:     `SOFTWARE\Microsoft\VisualStudio\14.0\VC\Runtimes\x64`,
		RedistValue:   "Installed",
		SearchPathVar: "PATH",
		LoadLibrary:   true,
	}
}

// Reporter runs the startup probe sequence and records one log line per
// probe. It keeps no state between runs.
type Reporter struct {
	log  *log.Log
	sys  System
	opts Options
}

func New(lg *log.Log, sys System, opts Options) *Reporter {
	return &Reporter{log: lg, sys: sys, opts: opts}
}

// Run executes every probe in order. Each line is on disk before the next
// probe starts, so the log of a crashed launch is a valid prefix.
func (r *Reporter) Run() []Finding {
	steps := []struct {
		probe Probe
		run   func() Finding
	}{
		{ProbeStart, r.start},
		{ProbeCOM, r.com},
		{ProbeExeDir, r.exeDir},
		{ProbeWorkingDir, r.workingDir},
		{ProbeSearchPath, r.searchPath},
		{ProbeRedist, r.redist},
		{ProbeEngineFile, func() Finding { return r.sibling(ProbeEngineFile, r.opts.EngineLibrary) }},
		{ProbeICUData, func() Finding { return r.sibling(ProbeICUData, r.opts.ICUData) }},
		{ProbeAssets, func() Finding { return r.sibling(ProbeAssets, r.opts.AssetsDir) }},
		{ProbeLoadLibrary, r.loadLibrary},
		{ProbeEngineVersion, r.engineVersion},
	}

	findings := make([]Finding, 0, len(steps))
	for _, step := range steps {
		f := guard(step.probe, step.run)
		r.log.Line(f.Line)
		findings = append(findings, f)
	}
	return findings
}

// WindowResult records whether the caller managed to create the window.
func (r *Reporter) WindowResult(err error) {
	if err != nil {
		r.log.Line("window.Create failed")
		return
	}
	r.log.Line("window created")
}

// Exit records an orderly shutdown.
func (r *Reporter) Exit() {
	r.log.Line("normal exit")
}

func guard(p Probe, run func() Finding) (f Finding) {
	defer func() {
		if v := recover(); v != nil {
			f = Finding{
				Probe:  p,
				Result: Result{Status: Failed, Detail: fmt.Sprint(v)},
				Line:   fmt.Sprintf("%s probe panicked: %v", p, v),
			}
		}
	}()
	return run()
}

func (r *Reporter) start() Finding {
	return Finding{Probe: ProbeStart, Result: Found(""), Line: "starting"}
}

func (r *Reporter) com() Finding {
	hr := r.sys.InitCOM()
	res := Found(fmt.Sprintf("%x", hr))
	// S_OK and S_FALSE both leave COM usable on this thread.
	if hr&0x80000000 != 0 {
		res = FailedWith(hr)
	}
	return Finding{
		Probe:  ProbeCOM,
		Result: res,
		Line:   fmt.Sprintf("CoInitializeEx result: %x", hr),
	}
}

func (r *Reporter) exeDir() Finding {
	res := r.sys.ExecutableDir()
	return Finding{Probe: ProbeExeDir, Result: res, Line: "exe dir: " + describe(res)}
}

func (r *Reporter) workingDir() Finding {
	res := r.sys.WorkingDir()
	return Finding{Probe: ProbeWorkingDir, Result: res, Line: "cwd: " + describe(res)}
}

// searchPath records the variable's length only.
func (r *Reporter) searchPath() Finding {
	name := r.opts.SearchPathVar
	res := r.sys.LookupEnv(name)
	if !res.OK() {
		return Finding{Probe: ProbeSearchPath, Result: res, Line: name + " not set"}
	}
	n := len(res.Detail)
	return Finding{
		Probe:  ProbeSearchPath,
		Result: Found(fmt.Sprint(n)),
		Line:   fmt.Sprintf("%s length: %d", name, n),
	}
}

func (r *Reporter) redist() Finding {
	res := r.sys.RegistryDWORD(r.opts.RedistKey, r.opts.RedistValue)
	f := Finding{Probe: ProbeRedist}
	switch {
	case res.OK() && res.Detail == "1":
		f.Result = res
		f.Line = "VC++ redist x64: installed"
	case res.Status == Failed:
		f.Result = res
		f.Line = fmt.Sprintf("VC++ redist x64: not installed (error=%d)", res.Code)
	default:
		f.Result = Missing(res.Detail)
		f.Line = "VC++ redist x64: not installed"
	}
	return f
}

func (r *Reporter) sibling(p Probe, rel string) Finding {
	res := r.sys.Stat(r.beside(rel))
	answer := "no"
	if res.OK() {
		answer = "yes"
	}
	return Finding{
		Probe:  p,
		Result: res,
		Line:   fmt.Sprintf("%s exists: %s", filepath.FromSlash(rel), answer),
	}
}

// loadLibrary surfaces a loader failure (missing dependency, wrong
// architecture) now rather than as an opaque crash inside the engine.
func (r *Reporter) loadLibrary() Finding {
	name := filepath.FromSlash(r.opts.EngineLibrary)
	if !r.opts.LoadLibrary {
		return Finding{
			Probe:  ProbeLoadLibrary,
			Result: Missing("disabled"),
			Line:   fmt.Sprintf("LoadLibrary %s: skipped", name),
		}
	}

	res := r.sys.LoadLibrary(r.beside(r.opts.EngineLibrary))
	f := Finding{Probe: ProbeLoadLibrary, Result: res}
	if res.OK() {
		f.Line = fmt.Sprintf("LoadLibrary %s: ok", name)
	} else {
		f.Line = fmt.Sprintf("LoadLibrary %s failed, error=%d", name, res.Code)
	}
	return f
}

func (r *Reporter) engineVersion() Finding {
	res := r.sys.FileVersion(r.beside(r.opts.EngineLibrary))
	version := "unavailable"
	if res.OK() {
		version = res.Detail
	}
	return Finding{
		Probe:  ProbeEngineVersion,
		Result: res,
		Line:   fmt.Sprintf("%s version: %s", filepath.FromSlash(r.opts.EngineLibrary), version),
	}
}

// beside resolves rel against the executable's directory, falling back to
// the working directory when that cannot be determined.
func (r *Reporter) beside(rel string) string {
	rel = filepath.FromSlash(rel)
	dir := r.sys.ExecutableDir()
	if !dir.OK() {
		return rel
	}
	return filepath.Join(dir.Detail, rel)
}

func describe(res Result) string {
	switch res.Status {
	case Present:
		return res.Detail
	case Failed:
		return fmt.Sprintf("unavailable (error=%d)", res.Code)
	}
	return "unavailable"
}
