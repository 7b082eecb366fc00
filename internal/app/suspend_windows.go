//go:build windows

package app

import "os"

// Windows has no SIGTSTP/SIGCONT, so Ctrl+Z does nothing.
func contSignals() []os.Signal {
	return nil
}

func (app *Application) suspendToShell() {
}

func (app *Application) resumeAfterStop() bool {
	return false
}
