package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/internal/session"
	"github.com/MKhiriev/go-pocket-money/internal/utils"
	"github.com/MKhiriev/go-pocket-money/models"
)

type clientAuthService struct {
	tokens  session.TokenStore
	adapter adapter.ServerAdapter
}

func NewClientAuthService(tokens session.TokenStore, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{tokens: tokens, adapter: serverAdapter}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	token, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return "", mapAdapterError(err)
	}

	if err = a.tokens.Save(token.SignedString); err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}

	return token.Username, nil
}

// Restore does not contact the server; an expired token surfaces as
// ErrTokenIsExpiredOrInvalid on the first authenticated call.
func (a *clientAuthService) Restore(ctx context.Context) (string, error) {
	token, err := a.tokens.Load()
	if errors.Is(err, session.ErrNoSession) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", fmt.Errorf("loading session: %w", err)
	}

	username, err := utils.ParseUsernameFromJWT(token)
	if err != nil {
		// an unreadable token is as good as none
		_ = a.tokens.Delete()
		return "", ErrNotLoggedIn
	}

	a.adapter.SetToken(token)
	return username, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	return a.tokens.Delete()
}
