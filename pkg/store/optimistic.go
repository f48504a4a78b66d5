package store

import (
	"context"
	"sync"

	"yaopets-backend/pkg/yaopets"
)

// ToggleState is the viewer-relative slice of an entity a like or save
// toggle mutates: the flag plus its counter.
type ToggleState struct {
	Active bool
	Count  int64
}

// applyToggle is the pure transition behind every optimistic toggle. The
// rollback pre-image is the input value; restoring it is a single assignment.
func applyToggle(s ToggleState) ToggleState {
	if s.Active {
		s.Active = false
		if s.Count > 0 {
			s.Count--
		}
		return s
	}
	s.Active = true
	s.Count++
	return s
}

// ToggleRequest sends the server call matching the desired flag value, e.g.
// LikePost when active and UnlikePost when not.
type ToggleRequest func(ctx context.Context, active bool) (*yaopets.ToggleResult, error)

// Toggler drives one entity's optimistic like/save state. The flag flips
// locally before the request goes out; a failed request restores the exact
// pre-image. While a request is in flight further toggles are refused, so
// two rapid invocations net exactly one state change.
type Toggler struct {
	session   *Session
	notifier  Notifier
	navigator Navigator

	mu       sync.Mutex
	inFlight bool
	state    ToggleState
}

func NewToggler(initial ToggleState, session *Session, notifier Notifier, navigator Navigator) *Toggler {
	return &Toggler{
		session:   session,
		notifier:  notifier,
		navigator: navigator,
		state:     initial,
	}
}

// State returns the current view state.
func (t *Toggler) State() ToggleState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Toggle flips the flag optimistically and confirms it with send. An
// anonymous viewer is pointed at the login route with no state change.
func (t *Toggler) Toggle(ctx context.Context, send ToggleRequest) error {
	if !t.session.Authenticated() {
		t.notifier.Info("sign in to continue")
		t.navigator.NavigateLogin()
		return ErrLoginRequired
	}

	t.mu.Lock()
	if t.inFlight {
		t.mu.Unlock()
		return ErrToggleInFlight
	}
	pre := t.state
	t.state = applyToggle(pre)
	want := t.state.Active
	t.inFlight = true
	t.mu.Unlock()

	res, err := send(ctx, want)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.inFlight = false

	if err != nil {
		t.state = pre
		t.notifier.Error("action failed, try again")
		return err
	}
	if res != nil {
		// server count is authoritative
		t.state.Active = res.Active
		t.state.Count = res.Count
	}
	return nil
}
