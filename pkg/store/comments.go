package store

import (
	"context"
	"strings"
	"sync"

	"yaopets-backend/pkg/yaopets"
)

// commentAPI is the slice of the API client the comment composer needs.
// *yaopets.Client satisfies it.
type commentAPI interface {
	AddComment(ctx context.Context, postID, content string) (*yaopets.Comment, error)
}

// Composer manages one post's comment list and the viewer's draft.
// Submission waits for the server's created record, so new comments always
// carry a real identifier; only then is the list updated.
type Composer struct {
	api       commentAPI
	session   *Session
	notifier  Notifier
	navigator Navigator
	postID    string

	// onScrollTop fires after a comment lands, so the view can show it.
	onScrollTop func()

	mu       sync.Mutex
	draft    string
	comments []yaopets.Comment
	count    int64
}

func NewComposer(api commentAPI, postID string, comments []yaopets.Comment, count int64, session *Session, notifier Notifier, navigator Navigator, onScrollTop func()) *Composer {
	if onScrollTop == nil {
		onScrollTop = func() {}
	}
	return &Composer{
		api:         api,
		session:     session,
		notifier:    notifier,
		navigator:   navigator,
		postID:      postID,
		onScrollTop: onScrollTop,
		comments:    comments,
		count:       count,
	}
}

func (cp *Composer) SetDraft(text string) {
	cp.mu.Lock()
	cp.draft = text
	cp.mu.Unlock()
}

func (cp *Composer) Draft() string {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return cp.draft
}

// Comments returns the list newest-first.
func (cp *Composer) Comments() []yaopets.Comment {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	out := make([]yaopets.Comment, len(cp.comments))
	copy(out, cp.comments)
	return out
}

func (cp *Composer) Count() int64 {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return cp.count
}

// Submit sends the draft. A blank draft is a no-op with no request. On
// success the created comment is prepended, the count bumped, and the draft
// cleared; on failure the draft stays so the viewer can retry.
func (cp *Composer) Submit(ctx context.Context) error {
	cp.mu.Lock()
	content := strings.TrimSpace(cp.draft)
	cp.mu.Unlock()
	if content == "" {
		return nil
	}

	if !cp.session.Authenticated() {
		cp.notifier.Info("sign in to comment")
		cp.navigator.NavigateLogin()
		return ErrLoginRequired
	}

	created, err := cp.api.AddComment(ctx, cp.postID, content)
	if err != nil {
		cp.notifier.Error("could not post comment, try again")
		return err
	}

	cp.mu.Lock()
	cp.comments = append([]yaopets.Comment{*created}, cp.comments...)
	cp.count++
	cp.draft = ""
	cp.mu.Unlock()

	cp.onScrollTop()
	return nil
}
