// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// go-pocket-money server handlers and by the client when it interprets the
// server's answers.
//
// All Msg* constants are the human-readable strings written into the
// "error" field of HTTP error bodies. Keeping them in one place lets the
// client map a response back to a typed error.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgWrongSecret is returned when the name exists and the secret does
	// not match it.
	MsgWrongSecret = "wrong name or secret"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgLoginFailed is returned when the login handler cannot issue a
	// session token.
	MsgLoginFailed = "login failed"

	// MsgUserNotFound is returned when the authenticated user has no record.
	MsgUserNotFound = "user not found"

	// MsgWishlistNotFound is returned when the user has no wishlist goal.
	MsgWishlistNotFound = "wishlist goal not found"

	// MsgNoWishlistImage is returned for a thumbnail of a goal without an
	// image.
	MsgNoWishlistImage = "wishlist goal has no image"

	// MsgUnsupportedImage is returned when the stored image cannot be
	// decoded into a thumbnail.
	MsgUnsupportedImage = "wishlist image format is not supported"

	// MsgChatCredentialMissing is returned when neither the request nor the
	// server carries a chat API key.
	MsgChatCredentialMissing = "chat api key is missing"

	// MsgChatEmptyReply is returned when the model answered without text.
	MsgChatEmptyReply = "chat model returned no text"

	// MsgChatUpstreamFailed prefixes errors reported by the chat provider.
	MsgChatUpstreamFailed = "chat provider error"

	// MsgConflict is returned when a concurrent update could not be applied.
	MsgConflict = "concurrent update, please retry"

	// MsgTimeout is returned when the request or an outbound call ran out
	// of time.
	MsgTimeout = "request timed out"
)
