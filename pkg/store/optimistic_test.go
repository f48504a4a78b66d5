package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"yaopets-backend/pkg/yaopets"
)

var okToggle ToggleRequest = func(context.Context, bool) (*yaopets.ToggleResult, error) {
	return nil, nil
}

func TestTogglerRoundTrip(t *testing.T) {
	t.Parallel()

	sess := signedInSession(&yaopets.User{ID: "u1"})
	tg := NewToggler(ToggleState{Active: false, Count: 7}, sess, &fakeNotifier{}, &fakeNavigator{})

	require.NoError(t, tg.Toggle(context.Background(), okToggle))
	require.True(t, tg.State().Active)
	require.Equal(t, int64(8), tg.State().Count)

	require.NoError(t, tg.Toggle(context.Background(), okToggle))
	require.False(t, tg.State().Active)
	require.Equal(t, int64(7), tg.State().Count, "like then unlike is count neutral")
}

func TestTogglerRollbackRestoresPreImage(t *testing.T) {
	t.Parallel()

	sess := signedInSession(&yaopets.User{ID: "u1"})
	notifier := &fakeNotifier{}
	before := ToggleState{Active: true, Count: 12}
	tg := NewToggler(before, sess, notifier, &fakeNavigator{})

	err := tg.Toggle(context.Background(), func(context.Context, bool) (*yaopets.ToggleResult, error) {
		return nil, errors.New("network down")
	})
	require.Error(t, err)
	require.Equal(t, before, tg.State(), "failed toggle restores the exact pre-image")
	require.Equal(t, 1, notifier.errorCount())
}

func TestTogglerReconcilesServerCount(t *testing.T) {
	t.Parallel()

	sess := signedInSession(&yaopets.User{ID: "u1"})
	tg := NewToggler(ToggleState{Count: 3}, sess, &fakeNotifier{}, &fakeNavigator{})

	err := tg.Toggle(context.Background(), func(context.Context, bool) (*yaopets.ToggleResult, error) {
		return &yaopets.ToggleResult{Active: true, Count: 41}, nil
	})
	require.NoError(t, err)
	require.Equal(t, ToggleState{Active: true, Count: 41}, tg.State())
}

func TestTogglerRefusesConcurrentToggle(t *testing.T) {
	t.Parallel()

	sess := signedInSession(&yaopets.User{ID: "u1"})
	tg := NewToggler(ToggleState{Count: 5}, sess, &fakeNotifier{}, &fakeNavigator{})

	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := tg.Toggle(context.Background(), func(context.Context, bool) (*yaopets.ToggleResult, error) {
			close(started)
			<-release
			return nil, nil
		})
		require.NoError(t, err)
	}()

	<-started
	err := tg.Toggle(context.Background(), okToggle)
	require.ErrorIs(t, err, ErrToggleInFlight)

	close(release)
	wg.Wait()

	// two rapid invocations net exactly one state change
	require.Equal(t, ToggleState{Active: true, Count: 6}, tg.State())
}

func TestTogglerAnonymousViewer(t *testing.T) {
	t.Parallel()

	nav := &fakeNavigator{}
	before := ToggleState{Active: false, Count: 2}
	tg := NewToggler(before, anonymousSession(), &fakeNotifier{}, nav)

	called := false
	err := tg.Toggle(context.Background(), func(context.Context, bool) (*yaopets.ToggleResult, error) {
		called = true
		return nil, nil
	})
	require.ErrorIs(t, err, ErrLoginRequired)
	require.False(t, called, "no request goes out for an anonymous viewer")
	require.Equal(t, before, tg.State())
	require.Equal(t, 1, nav.login)
}

func TestApplyToggleClampsAtZero(t *testing.T) {
	t.Parallel()

	out := applyToggle(ToggleState{Active: true, Count: 0})
	require.False(t, out.Active)
	require.Equal(t, int64(0), out.Count)
}
