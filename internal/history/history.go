// Package history implements browser-style back/forward navigation as a pure
// transition over immutable states.
package history

import (
	"errors"
	"fmt"
)

var (
	ErrNoHistory = errors.New("beginning of history reached")
	ErrNoFuture  = errors.New("no forward history available")
)

// State is one navigation position. Back and Forward are stacks with the most
// recent location last.
type State struct {
	Current string
	Back    []string
	Forward []string
}

// New returns a state at current with empty stacks.
func New(current string) State {
	return State{Current: current}
}

// CanBack reports whether Back would succeed.
func (s State) CanBack() bool { return len(s.Back) > 0 }

// CanForward reports whether Forward would succeed.
func (s State) CanForward() bool { return len(s.Forward) > 0 }

// Equal compares two states by value.
func (s State) Equal(other State) bool {
	return s.Current == other.Current && equal(s.Back, other.Back) && equal(s.Forward, other.Forward)
}

// Resolver canonicalizes user targets and computes parents.
type Resolver interface {
	Resolve(raw string) (string, error)
	Parent(path string) string
}

// Intent is a requested navigation step.
type Intent interface {
	intent()
}

// Navigate moves to Target, which is resolved first.
type Navigate struct {
	Target string
}

// Back returns to the previous location.
type Back struct{}

// Forward re-enters a location left by Back.
type Forward struct{}

// Up moves to the parent of the current location.
type Up struct{}

func (Navigate) intent() {}
func (Back) intent() {}
func (Forward) intent() {}
func (Up) intent() {}

// Apply computes the state following in. On error the returned state equals s.
func Apply(s State, in Intent, r Resolver) (State, error) {
	switch in := in.(type) {
	case Navigate:
		return NavigateTo(s, in.Target, r)
	case Back:
		return GoBack(s)
	case Forward:
		return GoForward(s)
	case Up:
		return GoUp(s, r)
	default:
		return s, fmt.Errorf("unsupported navigation intent %T", in)
	}
}

// NavigateTo resolves target and drops the forward stack. If target differs
// from the current location, the current location is pushed onto Back.
func NavigateTo(s State, target string, r Resolver) (State, error) {
	resolved, err := r.Resolve(target)
	if err != nil {
		return s, err
	}
	return visit(s, resolved), nil
}

// GoBack pops the back stack.
func GoBack(s State) (State, error) {
	if len(s.Back) == 0 {
		return s, ErrNoHistory
	}
	last := len(s.Back) - 1
	return State{
		Current: s.Back[last],
		Back:    clone(s.Back[:last]),
		Forward: push(s.Forward, s.Current),
	}, nil
}

// GoForward pops the forward stack.
func GoForward(s State) (State, error) {
	if len(s.Forward) == 0 {
		return s, ErrNoFuture
	}
	last := len(s.Forward) - 1
	return State{
		Current: s.Forward[last],
		Back:    push(s.Back, s.Current),
		Forward: clone(s.Forward[:last]),
	}, nil
}

// GoUp navigates to the parent directory. At the root it is a no-op.
func GoUp(s State, r Resolver) (State, error) {
	parent := r.Parent(s.Current)
	if parent == s.Current {
		return s, nil
	}
	return NavigateTo(s, parent, r)
}

func visit(s State, target string) State {
	if target == s.Current {
		return State{Current: s.Current, Back: clone(s.Back)}
	}
	back := clone(s.Back)
	if n := len(back); n == 0 || back[n-1] != s.Current {
		back = append(back, s.Current)
	}
	return State{Current: target, Back: back}
}

func push(stack []string, p string) []string {
	out := make([]string, len(stack), len(stack)+1)
	copy(out, stack)
	return append(out, p)
}

func clone(stack []string) []string {
	if len(stack) == 0 {
		return nil
	}
	out := make([]string, len(stack))
	copy(out, stack)
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
