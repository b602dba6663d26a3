// Package opener reveals directories in the desktop file manager.
package opener

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ErrNotDirectory is returned when the path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Runner starts an external program without waiting for it to exit.
type Runner func(name string, args ...string) error

// Opener launches the platform file manager.
type Opener struct {
	goos string
	run  Runner
}

// New returns an Opener for the host platform.
func New() *Opener {
	return &Opener{goos: runtime.GOOS, run: start}
}

// NewWithRunner returns an Opener that targets goos and launches programs
// through run. It exists for tests and alternative launchers.
func NewWithRunner(goos string, run Runner) *Opener {
	return &Opener{goos: goos, run: run}
}

// Open shows dir in the file manager. dir must be an existing directory.
func (o *Opener) Open(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("open %s: %w", dir, ErrNotDirectory)
	}

	name, args := Command(o.goos, dir)
	if err := o.run(name, args...); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	return nil
}

// Command returns the program and arguments that open dir on goos.
func Command(goos, dir string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{dir}
	case "windows":
		return "explorer", []string{dir}
	default:
		return "xdg-open", []string{dir}
	}
}

func start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
