package store

import (
	"context"
	"sync"

	"yaopets-backend/pkg/yaopets"
)

// FollowState is the relationship between the viewer and another user as
// the follow button sees it.
type FollowState int

const (
	NotFollowing FollowState = iota
	Pending
	Following
)

func (s FollowState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Following:
		return "following"
	default:
		return "not-following"
	}
}

// followAPI is the slice of the API client the follow button needs.
// *yaopets.Client satisfies it.
type followAPI interface {
	Follow(ctx context.Context, userID string) (*yaopets.ToggleResult, error)
	Unfollow(ctx context.Context, userID string) (*yaopets.ToggleResult, error)
}

// FollowButton is the follow/unfollow state machine for one target user.
// A toggle moves to pending while the request runs; success lands on the
// opposite side, failure returns to where it started. The trigger is
// refused while pending.
type FollowButton struct {
	api       followAPI
	session   *Session
	notifier  Notifier
	navigator Navigator
	targetID  string

	mu        sync.Mutex
	state     FollowState
	followers int64
}

func NewFollowButton(api followAPI, targetID string, following bool, followers int64, session *Session, notifier Notifier, navigator Navigator) *FollowButton {
	state := NotFollowing
	if following {
		state = Following
	}
	return &FollowButton{
		api:       api,
		session:   session,
		notifier:  notifier,
		navigator: navigator,
		targetID:  targetID,
		state:     state,
		followers: followers,
	}
}

func (b *FollowButton) State() FollowState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Followers returns the target's follower count as last reported by the
// server.
func (b *FollowButton) Followers() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.followers
}

// Toggle follows or unfollows the target depending on the current side.
func (b *FollowButton) Toggle(ctx context.Context) error {
	if !b.session.Authenticated() {
		b.notifier.Info("sign in to follow users")
		b.navigator.NavigateLogin()
		return ErrLoginRequired
	}

	b.mu.Lock()
	if b.state == Pending {
		b.mu.Unlock()
		return ErrToggleInFlight
	}
	prev := b.state
	b.state = Pending
	b.mu.Unlock()

	var (
		res *yaopets.ToggleResult
		err error
	)
	if prev == Following {
		res, err = b.api.Unfollow(ctx, b.targetID)
	} else {
		res, err = b.api.Follow(ctx, b.targetID)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.state = prev
		b.notifier.Error("action failed, try again")
		return err
	}

	if prev == Following {
		b.state = NotFollowing
	} else {
		b.state = Following
	}
	if res != nil {
		b.followers = res.Count
	}
	return nil
}
