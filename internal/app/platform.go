package app

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoOpener is returned when no launcher for the default application exists.
var ErrNoOpener = errors.New("no default application available")

// SystemOpener launches the desktop's default application for a file.
type SystemOpener struct {
	command []string
	start   func(name string, args ...string) error
}

// NewSystemOpener detects the platform launcher. The returned opener reports
// ErrNoOpener on every call when none was found.
func NewSystemOpener() *SystemOpener {
	command, _ := detectOpenerCommand(runtime.GOOS, exec.LookPath)
	return &SystemOpener{command: command, start: startDetached}
}

// Available reports whether a launcher was found.
func (o *SystemOpener) Available() bool {
	return len(o.command) > 0
}

// Open starts the launcher for path without waiting for it to exit.
func (o *SystemOpener) Open(path string) error {
	if !o.Available() {
		return ErrNoOpener
	}
	args := append(append([]string(nil), o.command[1:]...), path)
	return o.start(o.command[0], args...)
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child; its exit status is not interesting.
	go func() { _ = cmd.Wait() }()
	return nil
}

func detectOpenerCommand(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	var candidates [][]string
	switch strings.ToLower(goos) {
	case "darwin":
		candidates = [][]string{{"open"}}
	case "windows":
		// The empty argument is start's window title.
		candidates = [][]string{{"cmd", "/c", "start", ""}, {"rundll32", "url.dll,FileProtocolHandler"}}
	default:
		candidates = [][]string{{"xdg-open"}, {"gio", "open"}, {"wslview"}}
	}

	for _, candidate := range candidates {
		if resolved, err := lookPath(candidate[0]); err == nil && resolved != "" {
			return append([]string{resolved}, candidate[1:]...), true
		}
	}
	return nil, false
}
