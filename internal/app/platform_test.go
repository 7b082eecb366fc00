package app

import (
	"errors"
	"slices"
	"testing"
)

func fakeLookPath(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		if slices.Contains(available, name) {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
}

func TestDetectOpenerCommand(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		available []string
		want      []string
	}{
		{name: "linux xdg-open", goos: "linux", available: []string{"xdg-open", "gio"}, want: []string{"/usr/bin/xdg-open"}},
		{name: "linux gio fallback", goos: "linux", available: []string{"gio"}, want: []string{"/usr/bin/gio", "open"}},
		{name: "darwin", goos: "darwin", available: []string{"open"}, want: []string{"/usr/bin/open"}},
		{name: "windows start", goos: "windows", available: []string{"cmd"}, want: []string{"/usr/bin/cmd", "/c", "start", ""}},
		{name: "nothing installed", goos: "linux", available: nil, want: nil},
	}

	for _, tt := range tests {
		got, ok := detectOpenerCommand(tt.goos, fakeLookPath(tt.available...))
		if ok != (tt.want != nil) {
			t.Fatalf("%s: expected ok=%v, got %v", tt.name, tt.want != nil, ok)
		}
		if !slices.Equal(got, tt.want) {
			t.Fatalf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestSystemOpenerAppendsPath(t *testing.T) {
	var gotName string
	var gotArgs []string
	opener := &SystemOpener{
		command: []string{"/usr/bin/gio", "open"},
		start: func(name string, args ...string) error {
			gotName, gotArgs = name, args
			return nil
		},
	}

	if err := opener.Open("/home/user/notes.txt"); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if gotName != "/usr/bin/gio" || !slices.Equal(gotArgs, []string{"open", "/home/user/notes.txt"}) {
		t.Fatalf("unexpected command %q %q", gotName, gotArgs)
	}
	if !slices.Equal(opener.command, []string{"/usr/bin/gio", "open"}) {
		t.Fatalf("Open must not modify the configured command, got %q", opener.command)
	}
}

func TestSystemOpenerWithoutLauncher(t *testing.T) {
	opener := &SystemOpener{}
	if opener.Available() {
		t.Fatal("expected opener without command to be unavailable")
	}
	if err := opener.Open("/tmp/x"); !errors.Is(err, ErrNoOpener) {
		t.Fatalf("expected ErrNoOpener, got %v", err)
	}
}

func TestSystemOpenerPropagatesStartError(t *testing.T) {
	opener := &SystemOpener{
		command: []string{"/usr/bin/xdg-open"},
		start:   func(string, ...string) error { return errors.New("exec format error") },
	}
	if err := opener.Open("/tmp/x"); err == nil || err.Error() != "exec format error" {
		t.Fatalf("expected start error, got %v", err)
	}
}
