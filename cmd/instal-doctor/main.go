// instal-doctor runs the launcher's startup probes from a terminal and
// prints a graded summary. It exits 1 when the engine cannot start.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"instal/config"
	"instal/doctor"
	"instal/log"
	"instal/platform"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func init() {
	runtime.LockOSThread()
}

func main() {
	sys := platform.New()
	cfg, err := config.Load(sys.ExecutableDir().Detail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	lg := log.New(log.ResolvePath(cfg.Log.Path, sys.TempDir), nil)
	findings := diagnose(lg, sys, cfg.ProbeOptions())
	os.Exit(report(os.Stdout, findings, lg.Path()))
}

// diagnose runs the probes between its own marker lines so a doctor run
// in the shared log is never mistaken for a launch that died after them.
func diagnose(lg *log.Log, sys doctor.System, opts doctor.Options) []doctor.Finding {
	lg.Line("doctor run")
	findings := doctor.New(lg, sys, opts).Run()
	sys.UninitCOM()
	lg.Line("doctor done")
	return findings
}

func report(w io.Writer, findings []doctor.Finding, logPath string) int {
	fmt.Fprintln(w, "instal doctor - startup diagnostics")
	fmt.Fprintln(w, strings.Repeat("=", 35))

	for i, f := range findings {
		fmt.Fprintf(w, "[%d/%d] %s\n", i+1, len(findings), f.Line)
		fmt.Fprintf(w, "  %s\n", badge(f.Verdict()))
	}

	fmt.Fprintln(w)
	code := doctor.ExitCode(findings)
	if code == 0 {
		fmt.Fprintln(w, "No blocking problems found.")
	} else {
		fmt.Fprintln(w, "The engine will not start. See FAIL lines above.")
	}
	fmt.Fprintln(w, dimStyle.Render("log: "+logPath))
	return code
}

func badge(v doctor.Verdict) string {
	switch v {
	case doctor.Pass:
		return passStyle.Render(v.String())
	case doctor.Warn:
		return warnStyle.Render(v.String())
	}
	return failStyle.Render(v.String())
}
