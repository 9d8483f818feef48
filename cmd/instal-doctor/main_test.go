package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instal/doctor"
	"instal/log"
)

func runFake(t *testing.T, sys *doctor.FakeSystem) []doctor.Finding {
	t.Helper()
	lg := log.New(filepath.Join(t.TempDir(), log.FileName), nil)
	return diagnose(lg, sys, doctor.DefaultOptions())
}

func TestDiagnoseMarksItsBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), log.FileName)
	sys := doctor.NewFake(t.TempDir())

	findings := diagnose(log.New(path, nil), sys, doctor.DefaultOptions())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, len(findings)+2)
	assert.Equal(t, "[launcher] doctor run", lines[0])
	assert.Equal(t, "[launcher] starting", lines[1])
	assert.Equal(t, "[launcher] doctor done", lines[len(lines)-1])
	assert.Equal(t, 1, sys.COMInits)
	assert.Equal(t, 1, sys.COMUninits)
}

func TestReportHealthy(t *testing.T) {
	exeDir := t.TempDir()
	sys := doctor.NewFake(exeDir)
	opts := doctor.DefaultOptions()
	for _, rel := range []string{opts.EngineLibrary, opts.ICUData, opts.AssetsDir} {
		sys.Files[filepath.Join(exeDir, filepath.FromSlash(rel))] = true
	}

	var out bytes.Buffer
	code := report(&out, runFake(t, sys), "InstalLauncher.log")

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "[1/11] starting")
	assert.Contains(t, out.String(), "No blocking problems found.")
	assert.NotContains(t, out.String(), "FAIL")
}

func TestReportMissingEngine(t *testing.T) {
	var out bytes.Buffer
	code := report(&out, runFake(t, doctor.NewFake(t.TempDir())), "InstalLauncher.log")

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "LoadLibrary flutter_windows.dll failed, error=126")
	assert.Contains(t, out.String(), "FAIL")
	assert.Contains(t, out.String(), "The engine will not start.")
}
