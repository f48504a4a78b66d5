package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"yaopets-backend/pkg/yaopets"
)

const (
	testWait = 2 * time.Second
	testTick = 5 * time.Millisecond
)

type fakeNotifier struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (n *fakeNotifier) Info(msg string) {
	n.mu.Lock()
	n.infos = append(n.infos, msg)
	n.mu.Unlock()
}

func (n *fakeNotifier) Error(msg string) {
	n.mu.Lock()
	n.errors = append(n.errors, msg)
	n.mu.Unlock()
}

func (n *fakeNotifier) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errors)
}

type fakeNavigator struct {
	mu    sync.Mutex
	home  int
	login int
}

func (n *fakeNavigator) NavigateHome() {
	n.mu.Lock()
	n.home++
	n.mu.Unlock()
}

func (n *fakeNavigator) NavigateLogin() {
	n.mu.Lock()
	n.login++
	n.mu.Unlock()
}

type memTokens struct {
	mu    sync.Mutex
	token string
}

func (m *memTokens) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memTokens) Store(token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *memTokens) Clear() error {
	return m.Store("")
}

type fakeAuthAPI struct {
	mu    sync.Mutex
	token string
	user  *yaopets.User
	err   error
}

func (a *fakeAuthAPI) SetToken(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
}

func (a *fakeAuthAPI) ClearToken() { a.SetToken("") }

func (a *fakeAuthAPI) Me(context.Context) (*yaopets.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return nil, a.err
	}
	return a.user, nil
}

// signedInSession builds a session already holding a viewer, the common
// starting point for mutation tests.
func signedInSession(user *yaopets.User) *Session {
	s := NewSession(&fakeAuthAPI{}, &memTokens{}, zerolog.Nop())
	s.SetSession(&yaopets.Session{User: user, AccessToken: "tok"})
	return s
}

func anonymousSession() *Session {
	return NewSession(&fakeAuthAPI{}, &memTokens{}, zerolog.Nop())
}
