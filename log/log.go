package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// FileName is the launcher log's fixed name inside the resolved directory.
const FileName = "InstalLauncher.log"

// Prefix starts every launcher line.
const Prefix = "[launcher] "

// ResolvePath returns the full path of the launcher log.
//
// Priority: dir (config / INSTAL_LOG_PATH), then the user temp directory
// reported by tempDir. If neither yields a directory the bare file name is
// returned, i.e. the log lands in the working directory.
func ResolvePath(dir string, tempDir func() (string, error)) string {
	if dir != "" {
		if !filepath.IsAbs(dir) {
			if wd, err := os.Getwd(); err == nil {
				dir = filepath.Join(wd, dir)
			}
		}
		return filepath.Join(dir, FileName)
	}

	if tempDir != nil {
		if d, err := tempDir(); err == nil && d != "" {
			return filepath.Join(d, FileName)
		}
	}
	return FileName
}

// appendFile reopens the file for every write so that a crash never loses
// an earlier line. Open and write failures are swallowed.
type appendFile struct {
	path string
}

func (a appendFile) Write(p []byte) (int, error) {
	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return len(p), nil
	}
	defer f.Close()
	f.Write(p)
	return len(p), nil
}

// Log is the launcher's diagnostic log handle. It holds no open file; each
// line is its own open/append/close cycle.
type Log struct {
	path   string
	logger zerolog.Logger
}

// New returns a Log appending to path. When echo is non-nil every line is
// also written there (an attached console, typically).
func New(path string, echo io.Writer) *Log {
	var out io.Writer = appendFile{path: path}
	if echo != nil {
		out = zerolog.MultiLevelWriter(out, echo)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
	}
	return &Log{
		path:   path,
		logger: zerolog.New(consoleWriter),
	}
}

// Path returns the file the log appends to.
func (l *Log) Path() string {
	return l.path
}

// Line appends one "[launcher] ..." line.
func (l *Log) Line(msg string) {
	if l == nil {
		return
	}
	l.logger.Log().Msg(Prefix + msg)
}

func (l *Log) Linef(format string, args ...any) {
	l.Line(fmt.Sprintf(format, args...))
}

// CaptureCrashes routes Go runtime crash output (unrecovered panics, fatal
// errors) to the end of the log file.
func (l *Log) CaptureCrashes() error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open crash output: %w", err)
	}
	defer f.Close()
	if err := debug.SetCrashOutput(f, debug.CrashOptions{}); err != nil {
		return fmt.Errorf("set crash output: %w", err)
	}
	return nil
}
