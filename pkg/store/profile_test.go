package store

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"yaopets-backend/pkg/yaopets"
)

type fakeProfileAPI struct {
	mu sync.Mutex

	user    *yaopets.User
	userErr error
	// blockUser, when set, stalls GetUser until closed.
	blockUser chan struct{}

	posts     yaopets.Collection[yaopets.Post]
	followers yaopets.Collection[yaopets.User]
	following yaopets.Collection[yaopets.User]
	saved     yaopets.Collection[yaopets.Post]

	postsErr     error
	followersErr error

	savedCalls int
}

func (f *fakeProfileAPI) GetUser(context.Context, string) (*yaopets.User, error) {
	f.mu.Lock()
	block := f.blockUser
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.user, nil
}

func (f *fakeProfileAPI) ListUserPosts(context.Context, string, int, string) (yaopets.Collection[yaopets.Post], error) {
	if f.postsErr != nil {
		return yaopets.Collection[yaopets.Post]{}, f.postsErr
	}
	return f.posts, nil
}

func (f *fakeProfileAPI) ListFollowers(context.Context, string) (yaopets.Collection[yaopets.User], error) {
	if f.followersErr != nil {
		return yaopets.Collection[yaopets.User]{}, f.followersErr
	}
	return f.followers, nil
}

func (f *fakeProfileAPI) ListFollowing(context.Context, string) (yaopets.Collection[yaopets.User], error) {
	return f.following, nil
}

func (f *fakeProfileAPI) ListSavedPosts(context.Context, int) (yaopets.Collection[yaopets.Post], error) {
	f.mu.Lock()
	f.savedCalls++
	f.mu.Unlock()
	return f.saved, nil
}

func newLoader(api *fakeProfileAPI, sess *Session, notifier *fakeNotifier, nav *fakeNavigator) *ProfileLoader {
	return NewProfileLoader(api, sess, notifier, nav, zerolog.Nop())
}

func TestProfileLoad(t *testing.T) {
	t.Parallel()

	api := &fakeProfileAPI{
		user:      &yaopets.User{ID: "u2", Username: "rex"},
		posts:     yaopets.Collection[yaopets.Post]{Items: []yaopets.Post{{ID: "p1"}}, Total: 1},
		followers: yaopets.Collection[yaopets.User]{Items: []yaopets.User{{ID: "u3"}}, Total: 57},
		following: yaopets.Collection[yaopets.User]{Items: []yaopets.User{{ID: "u4"}}, Total: 9},
	}
	sess := signedInSession(&yaopets.User{ID: "u1"})
	loader := newLoader(api, sess, &fakeNotifier{}, &fakeNavigator{})

	data, err := loader.Load(context.Background(), "u2")
	require.NoError(t, err)
	require.Equal(t, "rex", data.User.Username)
	require.Equal(t, int64(57), data.Followers.Total, "count comes from pagination total, not page length")
	require.Len(t, data.Followers.Items, 1)
	require.Equal(t, int64(9), data.Following.Total)
	require.Equal(t, 0, api.savedCalls, "saved posts are only fetched for the viewer's own profile")
	require.Same(t, data, loader.Current())
}

func TestProfileLoadOwnFetchesSaved(t *testing.T) {
	t.Parallel()

	api := &fakeProfileAPI{
		user:  &yaopets.User{ID: "u1"},
		saved: yaopets.Collection[yaopets.Post]{Items: []yaopets.Post{{ID: "p8"}}, Total: 1},
	}
	sess := signedInSession(&yaopets.User{ID: "u1"})
	loader := newLoader(api, sess, &fakeNotifier{}, &fakeNavigator{})

	data, err := loader.Load(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, 1, api.savedCalls)
	require.Len(t, data.Saved.Items, 1)
}

func TestProfileLoadNotFoundNavigatesHome(t *testing.T) {
	t.Parallel()

	api := &fakeProfileAPI{userErr: &yaopets.APIError{Status: http.StatusNotFound, Message: "user not found"}}
	notifier := &fakeNotifier{}
	nav := &fakeNavigator{}
	loader := newLoader(api, anonymousSession(), notifier, nav)

	_, err := loader.Load(context.Background(), "gone")
	require.True(t, yaopets.IsNotFound(err))
	require.Equal(t, 1, nav.home)
	require.Equal(t, 1, notifier.errorCount())
	require.Nil(t, loader.Current())
}

func TestProfileLoadGenericFailureStaysOnPage(t *testing.T) {
	t.Parallel()

	api := &fakeProfileAPI{userErr: errors.New("connection reset")}
	notifier := &fakeNotifier{}
	nav := &fakeNavigator{}
	loader := newLoader(api, anonymousSession(), notifier, nav)

	_, err := loader.Load(context.Background(), "u2")
	require.Error(t, err)
	require.False(t, yaopets.IsNotFound(err))
	require.Equal(t, 0, nav.home, "retryable failures do not navigate away")
	require.Equal(t, 1, notifier.errorCount())
}

func TestProfileLoadSecondaryFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	api := &fakeProfileAPI{
		user:         &yaopets.User{ID: "u2"},
		postsErr:     errors.New("posts down"),
		followersErr: errors.New("followers down"),
		following:    yaopets.Collection[yaopets.User]{Items: []yaopets.User{{ID: "u4"}}, Total: 1},
	}
	notifier := &fakeNotifier{}
	loader := newLoader(api, anonymousSession(), notifier, &fakeNavigator{})

	data, err := loader.Load(context.Background(), "u2")
	require.NoError(t, err, "satellite failures never fail the load")
	require.Empty(t, data.Posts.Items)
	require.Empty(t, data.Followers.Items)
	require.Len(t, data.Following.Items, 1, "healthy siblings are unaffected")
	require.Equal(t, 0, notifier.errorCount(), "satellite failures are silent")
}

func TestProfileLoadStaleResultDiscarded(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	api := &fakeProfileAPI{user: &yaopets.User{ID: "u2", Username: "old"}, blockUser: block}
	loader := newLoader(api, anonymousSession(), &fakeNotifier{}, &fakeNavigator{})

	firstDone := make(chan error, 1)
	go func() {
		_, err := loader.Load(context.Background(), "u2")
		firstDone <- err
	}()

	require.Eventually(t, func() bool { return loader.gen.Load() == 1 }, testWait, testTick)

	api.mu.Lock()
	api.blockUser = nil
	api.user = &yaopets.User{ID: "u3", Username: "new"}
	api.mu.Unlock()

	data, err := loader.Load(context.Background(), "u3")
	require.NoError(t, err)
	require.Equal(t, "new", data.User.Username)

	close(block)
	require.ErrorIs(t, <-firstDone, ErrStaleLoad)
	require.Equal(t, "new", loader.Current().User.Username, "superseded load never overwrites state")
}
