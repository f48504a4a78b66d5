package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"yaopets-backend/pkg/yaopets"
)

type fakeCommentAPI struct {
	mu      sync.Mutex
	calls   int
	created *yaopets.Comment
	err     error
}

func (f *fakeCommentAPI) AddComment(_ context.Context, postID, content string) (*yaopets.Comment, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	c := *f.created
	c.PostID = postID
	c.Content = content
	return &c, nil
}

func TestComposerEmptyDraftIsNoOp(t *testing.T) {
	t.Parallel()

	api := &fakeCommentAPI{}
	sess := signedInSession(&yaopets.User{ID: "u1"})
	existing := []yaopets.Comment{{ID: "c1", Content: "first"}}

	for _, draft := range []string{"", "   ", "\n\t "} {
		cp := NewComposer(api, "p1", existing, 1, sess, &fakeNotifier{}, &fakeNavigator{}, nil)
		cp.SetDraft(draft)
		require.NoError(t, cp.Submit(context.Background()))
	}
	require.Equal(t, 0, api.calls, "blank drafts never hit the server")
}

func TestComposerSuccess(t *testing.T) {
	t.Parallel()

	api := &fakeCommentAPI{created: &yaopets.Comment{ID: "c9", UserID: "u1"}}
	sess := signedInSession(&yaopets.User{ID: "u1"})

	scrolled := 0
	existing := []yaopets.Comment{{ID: "c1", Content: "older"}}
	cp := NewComposer(api, "p1", existing, 1, sess, &fakeNotifier{}, &fakeNavigator{}, func() { scrolled++ })

	cp.SetDraft("  so cute!  ")
	require.NoError(t, cp.Submit(context.Background()))

	list := cp.Comments()
	require.Len(t, list, 2)
	require.Equal(t, "c9", list[0].ID, "new comment is prepended newest-first")
	require.Equal(t, "so cute!", list[0].Content, "content is trimmed before sending")
	require.Equal(t, int64(2), cp.Count())
	require.Empty(t, cp.Draft(), "draft cleared after success")
	require.Equal(t, 1, scrolled)
}

func TestComposerFailureKeepsDraft(t *testing.T) {
	t.Parallel()

	api := &fakeCommentAPI{err: errors.New("boom")}
	sess := signedInSession(&yaopets.User{ID: "u1"})
	notifier := &fakeNotifier{}
	cp := NewComposer(api, "p1", nil, 0, sess, notifier, &fakeNavigator{}, nil)

	cp.SetDraft("try again later")
	require.Error(t, cp.Submit(context.Background()))
	require.Equal(t, "try again later", cp.Draft(), "failed submit leaves the draft intact")
	require.Empty(t, cp.Comments())
	require.Equal(t, int64(0), cp.Count())
	require.Equal(t, 1, notifier.errorCount())
}

func TestComposerAnonymousViewer(t *testing.T) {
	t.Parallel()

	api := &fakeCommentAPI{}
	nav := &fakeNavigator{}
	cp := NewComposer(api, "p1", nil, 0, anonymousSession(), &fakeNotifier{}, nav, nil)

	cp.SetDraft("hello")
	require.ErrorIs(t, cp.Submit(context.Background()), ErrLoginRequired)
	require.Equal(t, 0, api.calls)
	require.Equal(t, "hello", cp.Draft())
	require.Equal(t, 1, nav.login)
}
