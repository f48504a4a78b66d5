package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"yaopets-backend/pkg/yaopets"
)

const (
	profilePostsLimit = 20
	profileEdgesLimit = 50
)

// profileAPI is the slice of the API client the profile page needs.
// *yaopets.Client satisfies it.
type profileAPI interface {
	GetUser(ctx context.Context, id string) (*yaopets.User, error)
	ListUserPosts(ctx context.Context, userID string, limit int, cursor string) (yaopets.Collection[yaopets.Post], error)
	ListFollowers(ctx context.Context, userID string) (yaopets.Collection[yaopets.User], error)
	ListFollowing(ctx context.Context, userID string) (yaopets.Collection[yaopets.User], error)
	ListSavedPosts(ctx context.Context, limit int) (yaopets.Collection[yaopets.Post], error)
}

// ProfileData is everything a profile page renders. Follower and following
// counts come from the collections' pagination totals, never from the page
// length.
type ProfileData struct {
	User      *yaopets.User
	Posts     yaopets.Collection[yaopets.Post]
	Followers yaopets.Collection[yaopets.User]
	Following yaopets.Collection[yaopets.User]
	Saved     yaopets.Collection[yaopets.Post]
}

// ProfileLoader fetches a profile and its satellite collections in parallel.
// Only the profile itself is load-bearing: a failed satellite fetch degrades
// to an empty collection without touching its siblings.
type ProfileLoader struct {
	api       profileAPI
	session   *Session
	notifier  Notifier
	navigator Navigator
	log       zerolog.Logger

	gen atomic.Uint64

	mu      sync.RWMutex
	current *ProfileData
}

func NewProfileLoader(api profileAPI, session *Session, notifier Notifier, navigator Navigator, log zerolog.Logger) *ProfileLoader {
	return &ProfileLoader{
		api:       api,
		session:   session,
		notifier:  notifier,
		navigator: navigator,
		log:       log,
	}
}

// Current returns the last successfully loaded profile, or nil.
func (l *ProfileLoader) Current() *ProfileData {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Load fetches userID's profile page. A profile that no longer exists sends
// the viewer home; any other profile failure is surfaced as retryable. A
// load superseded by a newer call discards its result and returns
// ErrStaleLoad.
func (l *ProfileLoader) Load(ctx context.Context, userID string) (*ProfileData, error) {
	gen := l.gen.Add(1)

	own := false
	if viewer := l.session.Current(); viewer != nil && viewer.ID == userID {
		own = true
	}

	var data ProfileData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := l.api.GetUser(gctx, userID)
		if err != nil {
			return err
		}
		data.User = user
		return nil
	})
	g.Go(func() error {
		data.Posts = collect(l.log, "posts", func() (yaopets.Collection[yaopets.Post], error) {
			return l.api.ListUserPosts(gctx, userID, profilePostsLimit, "")
		})
		return nil
	})
	g.Go(func() error {
		data.Followers = collect(l.log, "followers", func() (yaopets.Collection[yaopets.User], error) {
			return l.api.ListFollowers(gctx, userID)
		})
		return nil
	})
	g.Go(func() error {
		data.Following = collect(l.log, "following", func() (yaopets.Collection[yaopets.User], error) {
			return l.api.ListFollowing(gctx, userID)
		})
		return nil
	})
	if own {
		g.Go(func() error {
			data.Saved = collect(l.log, "saved", func() (yaopets.Collection[yaopets.Post], error) {
				return l.api.ListSavedPosts(gctx, profilePostsLimit)
			})
			return nil
		})
	} else {
		data.Saved = yaopets.Empty[yaopets.Post]()
	}

	err := g.Wait()

	if gen != l.gen.Load() {
		return nil, ErrStaleLoad
	}

	if err != nil {
		if yaopets.IsNotFound(err) {
			l.notifier.Error("profile not found")
			l.navigator.NavigateHome()
			return nil, fmt.Errorf("profile %s: %w", userID, err)
		}
		l.notifier.Error("could not load profile, try again")
		return nil, fmt.Errorf("profile %s: %w", userID, err)
	}

	l.mu.Lock()
	l.current = &data
	l.mu.Unlock()
	return &data, nil
}

// collect runs a satellite fetch, logging and swallowing its failure.
func collect[T any](log zerolog.Logger, name string, fetch func() (yaopets.Collection[T], error)) yaopets.Collection[T] {
	col, err := fetch()
	if err != nil {
		log.Warn().Err(err).Str("fetch", name).Msg("satellite fetch degraded to empty")
		return yaopets.Empty[T]()
	}
	return col
}
