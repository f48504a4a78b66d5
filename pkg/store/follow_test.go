package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"yaopets-backend/pkg/yaopets"
)

type fakeFollowAPI struct {
	mu        sync.Mutex
	follows   int
	unfollows int
	result    *yaopets.ToggleResult
	err       error
	block     chan struct{}
}

func (f *fakeFollowAPI) Follow(context.Context, string) (*yaopets.ToggleResult, error) {
	f.mu.Lock()
	f.follows++
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.result, f.err
}

func (f *fakeFollowAPI) Unfollow(context.Context, string) (*yaopets.ToggleResult, error) {
	f.mu.Lock()
	f.unfollows++
	f.mu.Unlock()
	return f.result, f.err
}

func TestFollowButtonCycle(t *testing.T) {
	t.Parallel()

	api := &fakeFollowAPI{result: &yaopets.ToggleResult{Active: true, Count: 11}}
	sess := signedInSession(&yaopets.User{ID: "u1"})
	btn := NewFollowButton(api, "u2", false, 10, sess, &fakeNotifier{}, &fakeNavigator{})

	require.NoError(t, btn.Toggle(context.Background()))
	require.Equal(t, Following, btn.State())
	require.Equal(t, int64(11), btn.Followers(), "follower count reconciled from the server")
	require.Equal(t, 1, api.follows)

	api.result = &yaopets.ToggleResult{Active: false, Count: 10}
	require.NoError(t, btn.Toggle(context.Background()))
	require.Equal(t, NotFollowing, btn.State())
	require.Equal(t, int64(10), btn.Followers())
	require.Equal(t, 1, api.unfollows)
}

func TestFollowButtonFailureReturnsToPreviousState(t *testing.T) {
	t.Parallel()

	api := &fakeFollowAPI{err: errors.New("boom")}
	sess := signedInSession(&yaopets.User{ID: "u1"})
	notifier := &fakeNotifier{}

	btn := NewFollowButton(api, "u2", false, 3, sess, notifier, &fakeNavigator{})
	require.Error(t, btn.Toggle(context.Background()))
	require.Equal(t, NotFollowing, btn.State())
	require.Equal(t, int64(3), btn.Followers())

	btn = NewFollowButton(api, "u2", true, 3, sess, notifier, &fakeNavigator{})
	require.Error(t, btn.Toggle(context.Background()))
	require.Equal(t, Following, btn.State())
}

func TestFollowButtonPendingBlocksToggle(t *testing.T) {
	t.Parallel()

	api := &fakeFollowAPI{
		result: &yaopets.ToggleResult{Active: true, Count: 1},
		block:  make(chan struct{}),
	}
	sess := signedInSession(&yaopets.User{ID: "u1"})
	btn := NewFollowButton(api, "u2", false, 0, sess, &fakeNotifier{}, &fakeNavigator{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		require.NoError(t, btn.Toggle(context.Background()))
	}()

	require.Eventually(t, func() bool { return btn.State() == Pending }, testWait, testTick)
	require.ErrorIs(t, btn.Toggle(context.Background()), ErrToggleInFlight)

	close(api.block)
	wg.Wait()
	require.Equal(t, Following, btn.State())
	require.Equal(t, 1, api.follows, "the refused toggle never reached the server")
}

func TestFollowButtonAnonymousViewer(t *testing.T) {
	t.Parallel()

	api := &fakeFollowAPI{}
	nav := &fakeNavigator{}
	btn := NewFollowButton(api, "u2", false, 0, anonymousSession(), &fakeNotifier{}, nav)

	require.ErrorIs(t, btn.Toggle(context.Background()), ErrLoginRequired)
	require.Equal(t, NotFollowing, btn.State())
	require.Equal(t, 0, api.follows)
	require.Equal(t, 1, nav.login)
}
