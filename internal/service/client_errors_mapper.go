// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/internal/app"
	"github.com/MKhiriev/go-pocket-money/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgChatCredentialMissing {
			return adapter.ErrChatAuth
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgWrongSecret:
			return ErrWrongSecret
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgWishlistNotFound:
			return store.ErrWishlistNotFound
		case app.MsgNoWishlistImage:
			return ErrNoWishlistImage
		case app.MsgUserNotFound:
			return store.ErrNoUserWasFound
		}

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrProgressConflict

	case errors.Is(err, adapter.ErrBadGateway):
		if msg == app.MsgChatEmptyReply {
			return adapter.ErrEmptyResponse
		}

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgLoginFailed {
			return ErrTokenCreationFailed
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
