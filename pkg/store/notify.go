// Package store holds the client-side application state: the current
// session, page data loaded from the API, and the optimistic mutation
// machinery that keeps view state responsive while requests are in flight.
package store

import "errors"

var (
	// ErrLoginRequired is returned when an action needs an authenticated
	// viewer. The navigator has already been pointed at the login route.
	ErrLoginRequired = errors.New("login required")

	// ErrToggleInFlight is returned when a toggle is invoked while a prior
	// one on the same entity has not settled yet.
	ErrToggleInFlight = errors.New("toggle already in flight")

	// ErrStaleLoad marks a load whose result was superseded by a newer one
	// and therefore discarded.
	ErrStaleLoad = errors.New("stale load discarded")
)

// Notifier shows non-blocking messages to the user. The embedding app
// implements it; failures in this layer are never fatal.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// Navigator moves the user between routes.
type Navigator interface {
	NavigateHome()
	NavigateLogin()
}

// TokenStorage persists the bearer token across sessions.
type TokenStorage interface {
	Load() (string, error)
	Store(token string) error
	Clear() error
}

// NopNotifier discards all messages.
type NopNotifier struct{}

func (NopNotifier) Info(string)  {}
func (NopNotifier) Error(string) {}

// NopNavigator ignores navigation requests.
type NopNavigator struct{}

func (NopNavigator) NavigateHome()  {}
func (NopNavigator) NavigateLogin() {}
