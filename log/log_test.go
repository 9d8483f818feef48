package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func assertLines(t *testing.T, path string, want ...string) {
	t.Helper()
	if got := readLines(t, path); !slices.Equal(got, want) {
		t.Errorf("log lines = %q, want %q", got, want)
	}
}

func TestResolvePathOverride(t *testing.T) {
	dir := t.TempDir()
	got := ResolvePath(dir, nil)
	if want := filepath.Join(dir, FileName); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolvePathOverrideRelative(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	got := ResolvePath("logs", nil)
	if want := filepath.Join(wd, "logs", FileName); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolvePathTempDir(t *testing.T) {
	tmp := t.TempDir()
	got := ResolvePath("", func() (string, error) { return tmp, nil })
	if want := filepath.Join(tmp, FileName); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolvePathTempDirFails(t *testing.T) {
	got := ResolvePath("", func() (string, error) { return "", errors.New("no temp") })
	if got != FileName {
		t.Errorf("got %q, want %q", got, FileName)
	}
}

func TestLineAppendsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	lg := New(path, nil)

	lg.Line("starting")
	lg.Linef("PATH length: %d", 42)
	lg.Line("normal exit")

	assertLines(t, path,
		"[launcher] starting",
		"[launcher] PATH length: 42",
		"[launcher] normal exit",
	)
}

func TestLineAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("earlier run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	New(path, nil).Line("starting")

	assertLines(t, path, "earlier run", "[launcher] starting")
}

func TestLineReopensPerWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	lg := New(path, nil)

	lg.Line("first")
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	lg.Line("second")

	assertLines(t, path, "[launcher] second")
}

func TestLineUnopenableIsSilent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", FileName)
	lg := New(path, nil)

	lg.Line("starting")
	lg.Line("normal exit")

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("log file should not exist, stat err = %v", err)
	}
}

func TestLineEcho(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	var echo bytes.Buffer
	lg := New(path, &echo)

	lg.Line("window created")

	if got := echo.String(); got != "[launcher] window created\n" {
		t.Errorf("echo = %q", got)
	}
	assertLines(t, path, "[launcher] window created")
}

func TestNilLog(t *testing.T) {
	var lg *Log
	lg.Line("ignored")
}
