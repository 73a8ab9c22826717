// Package qkview creates diagnostic snapshot files by invoking the local
// qkview binary.
package qkview

import (
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Extension is the suffix of generated snapshot files.
const Extension = ".qkview"

// timestampLayout produces names like "20241230-1159".
const timestampLayout = "20060102-1504"

// ErrSnapshotFailed is returned when the qkview binary cannot be run or exits
// non-zero.
var ErrSnapshotFailed = errors.New("qkview command failed")

// Filename returns the timestamp-derived snapshot file name for the given time.
func Filename(now time.Time) string {
	return now.Format(timestampLayout) + Extension
}

// Runner runs an external command and returns its combined output.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// Create runs the qkview binary under reduced scheduling priority to produce
// filename, and returns the path the binary wrote it to. The output directory
// is a contract with the binary, not something this program controls; the file
// is never cleaned up here.
func Create(runner Runner, bin, dir, filename string) (string, error) {
	slog.Info("Creating qkview file...", "filename", filename)

	output, err := runner.Run("nice", "-n", "19", bin, "-f", filename)
	if err != nil {
		return "", errors.WithMessagef(ErrSnapshotFailed, "%v: %s", err, strings.TrimSpace(string(output)))
	}

	slog.Info("Qkview file created successfully")
	slog.Debug("qkview command output", "output", string(output))

	return filepath.Join(dir, filename), nil
}
