package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/internal/app"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/internal/store"
	"github.com/MKhiriev/go-pocket-money/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInput:            http.StatusBadRequest,
	service.ErrWrongSecret:             http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrNoWishlistImage:         http.StatusNotFound,
	service.ErrUnsupportedImage:        http.StatusUnprocessableEntity,

	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrWishlistNotFound:  http.StatusNotFound,
	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrProgressConflict:  http.StatusConflict,

	adapter.ErrChatAuth:      http.StatusBadRequest,
	adapter.ErrEmptyResponse: http.StatusBadGateway,

	context.DeadlineExceeded: http.StatusGatewayTimeout,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrWrongSecret:             app.MsgWrongSecret,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrTokenCreationFailed:     app.MsgLoginFailed,
	service.ErrNoWishlistImage:         app.MsgNoWishlistImage,
	service.ErrUnsupportedImage:        app.MsgUnsupportedImage,
	store.ErrNoUserWasFound:            app.MsgUserNotFound,
	store.ErrWishlistNotFound:          app.MsgWishlistNotFound,
	store.ErrProgressConflict:          app.MsgConflict,
	adapter.ErrChatAuth:                app.MsgChatCredentialMissing,
	adapter.ErrEmptyResponse:           app.MsgChatEmptyReply,
	context.DeadlineExceeded:           app.MsgTimeout,
}

func statusFromError(err error) int {
	var upstream *adapter.UpstreamError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text written into the "error" field of the
// response body. Internal failures never leak their cause.
func messageFromError(err error, status int) string {
	var upstream *adapter.UpstreamError
	if errors.As(err, &upstream) {
		return app.MsgChatUpstreamFailed + ": " + string(upstream.Category)
	}

	if errors.Is(err, service.ErrInvalidInput) {
		cause := strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
		return app.MsgInvalidDataProvided + ": " + cause
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}

	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return http.StatusText(status)
}

// writeServiceError classifies err, logs it and writes the JSON error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, status), status)
}
