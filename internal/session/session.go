// Package session persists the client's bearer token in the OS keyring so
// that separate client invocations share one login.
package session

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// keyringUser is the account name the token is stored under.
const keyringUser = "session-token"

var (
	// ErrNoSession is returned when no token is stored.
	ErrNoSession = errors.New("no stored session")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be used.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

//go:generate mockgen -source=session.go -destination=../mock/session_mock.go -package=mock

// TokenStore keeps one raw bearer token.
type TokenStore interface {
	Save(token string) error
	// Load returns ErrNoSession when nothing is stored.
	Load() (string, error)
	// Delete removes the token; a missing token is not an error.
	Delete() error
}

type keyringStore struct {
	service string
}

// NewKeyringStore returns a TokenStore backed by the OS keyring under the
// given service name.
func NewKeyringStore(service string) TokenStore {
	return &keyringStore{service: service}
}

func (k *keyringStore) Save(token string) error {
	if token == "" {
		return errors.New("session token cannot be empty")
	}
	if err := keyring.Set(k.service, keyringUser, token); err != nil {
		return fmt.Errorf("%w: %w", ErrKeyringUnavailable, err)
	}

	return nil
}

func (k *keyringStore) Load() (string, error) {
	token, err := keyring.Get(k.service, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrKeyringUnavailable, err)
	}

	return token, nil
}

func (k *keyringStore) Delete() error {
	err := keyring.Delete(k.service, keyringUser)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrKeyringUnavailable, err)
	}

	return nil
}
