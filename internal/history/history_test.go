package history

import (
	"errors"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMissing = errors.New("missing")

// fakeResolver accepts the paths in its set and uses slash-separated parents.
type fakeResolver map[string]bool

func (f fakeResolver) Resolve(raw string) (string, error) {
	p := path.Clean(raw)
	if !f[p] {
		return "", errMissing
	}
	return p, nil
}

func (f fakeResolver) Parent(p string) string {
	return path.Dir(p)
}

func newResolver() fakeResolver {
	return fakeResolver{
		"/":                true,
		"/home":            true,
		"/home/user":       true,
		"/home/user/docs":  true,
		"/home/user/pics":  true,
		"/home/user/music": true,
	}
}

func mustApply(t *testing.T, s State, in Intent, r Resolver) State {
	t.Helper()
	next, err := Apply(s, in, r)
	require.NoError(t, err)
	return next
}

func TestBrowsingScenario(t *testing.T) {
	r := newResolver()
	s := New("/home/user")

	s = mustApply(t, s, Navigate{Target: "/home/user/docs"}, r)
	s = mustApply(t, s, Navigate{Target: "/home/user/pics"}, r)

	s = mustApply(t, s, Back{}, r)
	assert.Equal(t, "/home/user/docs", s.Current)
	assert.Equal(t, []string{"/home/user/pics"}, s.Forward)

	s = mustApply(t, s, Back{}, r)
	assert.Equal(t, "/home/user", s.Current)
	assert.Equal(t, []string{"/home/user/pics", "/home/user/docs"}, s.Forward)

	s = mustApply(t, s, Navigate{Target: "/home/user/music"}, r)
	assert.Empty(t, s.Forward)
	require.NotEmpty(t, s.Back)
	assert.Equal(t, "/home/user", s.Back[len(s.Back)-1])
}

func TestNavigateAlwaysClearsForward(t *testing.T) {
	r := newResolver()
	withFuture := State{
		Current: "/home/user",
		Back:    []string{"/home"},
		Forward: []string{"/home/user/pics", "/home/user/docs"},
	}

	tests := []struct {
		name     string
		target   string
		wantBack []string
	}{
		{name: "new location", target: "/home/user/music", wantBack: []string{"/home", "/home/user"}},
		{name: "forward top", target: "/home/user/docs", wantBack: []string{"/home", "/home/user"}},
		{name: "same location", target: "/home/user", wantBack: []string{"/home"}},
		{name: "same location uncleaned", target: "/home/user/", wantBack: []string{"/home"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := mustApply(t, withFuture, Navigate{Target: tt.target}, r)
			assert.Empty(t, next.Forward)
			assert.Equal(t, tt.wantBack, next.Back)
		})
	}
}

func TestNavigateSkipsDuplicateBackTop(t *testing.T) {
	r := newResolver()
	s := State{Current: "/home/user", Back: []string{"/home", "/home/user"}}

	next := mustApply(t, s, Navigate{Target: "/home/user/docs"}, r)
	assert.Equal(t, []string{"/home", "/home/user"}, next.Back)
	assert.Equal(t, "/home/user/docs", next.Current)
}

func TestNavigateInvalidTargetLeavesStateUnchanged(t *testing.T) {
	r := newResolver()
	s := State{Current: "/home/user", Back: []string{"/home"}, Forward: []string{"/home/user/docs"}}

	next, err := Apply(s, Navigate{Target: "/nowhere"}, r)
	require.ErrorIs(t, err, errMissing)
	assert.True(t, next.Equal(s))
}

func TestBackAndForwardOnEmptyStacks(t *testing.T) {
	r := newResolver()
	s := New("/home/user")

	next, err := Apply(s, Back{}, r)
	assert.ErrorIs(t, err, ErrNoHistory)
	assert.True(t, next.Equal(s))

	next, err = Apply(s, Forward{}, r)
	assert.ErrorIs(t, err, ErrNoFuture)
	assert.True(t, next.Equal(s))
}

func TestForwardPushesCurrentOntoBack(t *testing.T) {
	r := newResolver()
	s := State{Current: "/home", Forward: []string{"/home/user/docs", "/home/user"}}

	next := mustApply(t, s, Forward{}, r)
	assert.Equal(t, "/home/user", next.Current)
	assert.Equal(t, []string{"/home"}, next.Back)
	assert.Equal(t, []string{"/home/user/docs"}, next.Forward)
}

func TestUp(t *testing.T) {
	r := newResolver()

	s := mustApply(t, State{Current: "/home/user/docs", Forward: []string{"/x"}}, Up{}, r)
	assert.Equal(t, "/home/user", s.Current)
	assert.Equal(t, []string{"/home/user/docs"}, s.Back)
	assert.Empty(t, s.Forward)

	root := State{Current: "/", Forward: []string{"/home"}}
	next := mustApply(t, root, Up{}, r)
	assert.True(t, next.Equal(root), "up at root is a no-op")
}

func TestUpToMissingParentFails(t *testing.T) {
	r := fakeResolver{"/orphan/child": true}
	s := New("/orphan/child")

	next, err := Apply(s, Up{}, r)
	assert.ErrorIs(t, err, errMissing)
	assert.True(t, next.Equal(s))
}

func TestRoundTripLaw(t *testing.T) {
	r := newResolver()
	steps := []Intent{
		Navigate{Target: "/home/user/docs"},
		Up{},
		Navigate{Target: "/home/user/pics"},
		Navigate{Target: "/"},
		Navigate{Target: "/home/user/music"},
	}

	s := New("/home/user")
	for _, step := range steps {
		before := s
		s = mustApply(t, s, step, r)

		back := mustApply(t, s, Back{}, r)
		assert.Equal(t, before.Current, back.Current, "back undoes %T", step)

		again := mustApply(t, back, Forward{}, r)
		assert.True(t, again.Equal(s), "forward redoes %T: got %+v want %+v", step, again, s)
	}
}

func TestBackForwardIsReversibleAcrossManySteps(t *testing.T) {
	r := newResolver()
	s := New("/")
	for _, target := range []string{"/home", "/home/user", "/home/user/docs", "/home/user/pics"} {
		s = mustApply(t, s, Navigate{Target: target}, r)
	}
	start := s

	for s.CanBack() {
		s = mustApply(t, s, Back{}, r)
	}
	assert.Equal(t, "/", s.Current)
	assert.False(t, s.CanBack())
	assert.Len(t, s.Forward, 4)

	for s.CanForward() {
		s = mustApply(t, s, Forward{}, r)
	}
	assert.True(t, s.Equal(start))
}

func TestTransitionsDoNotAliasInput(t *testing.T) {
	r := newResolver()
	back := make([]string, 1, 8)
	back[0] = "/home"
	forward := make([]string, 2, 8)
	forward[0], forward[1] = "/home/user/pics", "/home/user/docs"
	s := State{Current: "/home/user", Back: back, Forward: forward}
	snapshot := State{
		Current: "/home/user",
		Back:    []string{"/home"},
		Forward: []string{"/home/user/pics", "/home/user/docs"},
	}

	for _, in := range []Intent{Navigate{Target: "/home/user/music"}, Back{}, Forward{}, Up{}} {
		next := mustApply(t, s, in, r)
		if len(next.Back) > 0 {
			next.Back[0] = "mutated"
		}
		if len(next.Forward) > 0 {
			next.Forward[0] = "mutated"
		}
		assert.True(t, s.Equal(snapshot), "%T aliased its input", in)
	}

	// Appending to a result must not write into spare capacity of the input.
	n1 := mustApply(t, s, Back{}, r)
	n2 := mustApply(t, s, Forward{}, r)
	_ = append(n1.Back, "x")
	_ = append(n2.Forward, "y")
	assert.True(t, s.Equal(snapshot))
}

type bogusIntent struct{}

func (bogusIntent) intent() {}

func TestApplyRejectsUnknownIntent(t *testing.T) {
	s := New("/home")
	next, err := Apply(s, bogusIntent{}, newResolver())
	require.Error(t, err)
	assert.True(t, next.Equal(s))
}
