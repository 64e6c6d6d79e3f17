package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/internal/app"
	"github.com/MKhiriev/go-pocket-money/internal/mock"
	"github.com/MKhiriev/go-pocket-money/internal/session"
	"github.com/MKhiriev/go-pocket-money/internal/utils"
	"github.com/MKhiriev/go-pocket-money/models"
)

// newTestClientAuth is a helper creating clientAuthService with mocks
func newTestClientAuth(t *testing.T, ctrl *gomock.Controller) (ClientAuthService, *mock.MockServerAdapter, *mock.MockTokenStore) {
	t.Helper()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	tokens := mock.NewMockTokenStore(ctrl)
	return NewClientAuthService(tokens, serverAdapter), serverAdapter, tokens
}

func TestClientAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, tokens := newTestClientAuth(t, ctrl)
	ctx := context.Background()
	creds := models.Credentials{Name: "mia", Secret: "1234"}

	serverAdapter.EXPECT().Login(ctx, creds).Return(models.Token{SignedString: "jwt", Username: "mia"}, nil)
	tokens.EXPECT().Save("jwt").Return(nil)

	username, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "mia", username)
}

func TestClientAuthService_Login_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestClientAuth(t, ctrl)

	serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgWrongSecret))

	_, err := svc.Login(context.Background(), models.Credentials{Name: "mia", Secret: "0000"})
	assert.ErrorIs(t, err, ErrWrongSecret)
}

func TestClientAuthService_Login_SaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, tokens := newTestClientAuth(t, ctrl)

	serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "jwt", Username: "mia"}, nil)
	tokens.EXPECT().Save("jwt").Return(session.ErrKeyringUnavailable)

	_, err := svc.Login(context.Background(), models.Credentials{Name: "mia", Secret: "1234"})
	assert.ErrorIs(t, err, session.ErrKeyringUnavailable)
}

func TestClientAuthService_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, tokens := newTestClientAuth(t, ctrl)

	token, err := utils.GenerateJWTToken("issuer", "mia", time.Hour, "key")
	require.NoError(t, err)

	tokens.EXPECT().Load().Return(token.SignedString, nil)
	serverAdapter.EXPECT().SetToken(token.SignedString)

	username, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mia", username)
}

func TestClientAuthService_Restore_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestClientAuth(t, ctrl)

	tokens.EXPECT().Load().Return("", session.ErrNoSession)

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAuthService_Restore_GarbageToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestClientAuth(t, ctrl)

	tokens.EXPECT().Load().Return("garbage", nil)
	tokens.EXPECT().Delete().Return(nil)

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAuthService_Restore_KeyringError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestClientAuth(t, ctrl)

	keyringErr := errors.New("locked")
	tokens.EXPECT().Load().Return("", keyringErr)

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, keyringErr)
}

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, tokens := newTestClientAuth(t, ctrl)

	serverAdapter.EXPECT().SetToken("")
	tokens.EXPECT().Delete().Return(nil)

	assert.NoError(t, svc.Logout(context.Background()))
}
