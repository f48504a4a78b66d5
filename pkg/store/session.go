package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"yaopets-backend/pkg/yaopets"
)

// authAPI is the slice of the API client the session store needs.
// *yaopets.Client satisfies it.
type authAPI interface {
	SetToken(token string)
	ClearToken()
	Me(ctx context.Context) (*yaopets.User, error)
}

// Session is the process-scoped store for the current viewer. All access is
// serialized; subscribers are told about every change.
type Session struct {
	api    authAPI
	tokens TokenStorage
	log    zerolog.Logger

	mu    sync.RWMutex
	user  *yaopets.User
	token string
	subs  []func(*yaopets.User)
}

func NewSession(api authAPI, tokens TokenStorage, log zerolog.Logger) *Session {
	return &Session{api: api, tokens: tokens, log: log}
}

// Hydrate restores a session from a persisted token. An invalid or expired
// token is wiped so the next start comes up anonymous without a round trip.
func (s *Session) Hydrate(ctx context.Context) error {
	token, err := s.tokens.Load()
	if err != nil || token == "" {
		return nil
	}

	s.api.SetToken(token)
	user, err := s.api.Me(ctx)
	if err != nil {
		s.api.ClearToken()
		if yaopets.IsUnauthorized(err) {
			s.log.Debug().Msg("persisted token rejected, clearing")
			if cerr := s.tokens.Clear(); cerr != nil {
				s.log.Warn().Err(cerr).Msg("clear token storage")
			}
			return nil
		}
		return err
	}

	s.set(user, token)
	return nil
}

// SetSession installs a freshly authenticated viewer.
func (s *Session) SetSession(sess *yaopets.Session) {
	s.api.SetToken(sess.AccessToken)
	if err := s.tokens.Store(sess.AccessToken); err != nil {
		s.log.Warn().Err(err).Msg("persist token")
	}
	s.set(sess.User, sess.AccessToken)
}

// UpdateUser replaces the stored viewer after a profile edit, keeping the
// token as is.
func (s *Session) UpdateUser(user *yaopets.User) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	s.set(user, token)
}

// Clear logs the viewer out.
func (s *Session) Clear() {
	s.api.ClearToken()
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("clear token storage")
	}
	s.set(nil, "")
}

// Current returns the signed-in viewer, or nil when anonymous.
func (s *Session) Current() *yaopets.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether a viewer is signed in.
func (s *Session) Authenticated() bool {
	return s.Current() != nil
}

// Subscribe registers a callback run on every session change. Callbacks run
// synchronously on the mutating call.
func (s *Session) Subscribe(fn func(*yaopets.User)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Session) set(user *yaopets.User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	subs := make([]func(*yaopets.User), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
}
