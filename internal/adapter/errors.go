package adapter

import (
	"errors"
	"fmt"
)

// Errors mapped from the go-pocket-money server's HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrGatewayTimeout      = errors.New("gateway timeout")
	ErrInternalServerError = errors.New("internal server error")
)

// Errors of the generative-language adapter.
var (
	// ErrChatAuth is returned before any call is made when no credential is
	// available.
	ErrChatAuth = errors.New("chat API key is missing")

	// ErrEmptyResponse is returned when the API answers successfully but the
	// first candidate carries no text.
	ErrEmptyResponse = errors.New("chat API returned an empty response")
)

// UpstreamCategory classifies a failed generative-language call.
type UpstreamCategory string

const (
	CategoryModelNotFound UpstreamCategory = "model-not-found"
	CategoryUnauthorized  UpstreamCategory = "unauthorized"
	CategoryRateLimited   UpstreamCategory = "rate-limited"
	CategoryOther         UpstreamCategory = "other"
)

// maxUpstreamBody bounds the part of an error body kept in [UpstreamError].
const maxUpstreamBody = 512

// UpstreamError describes a non-2xx answer or a transport failure of the
// generative-language API. Status is zero for transport failures.
type UpstreamError struct {
	Status   int
	Category UpstreamCategory
	Body     string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("chat upstream %s: %s", e.Category, e.Body)
	}
	return fmt.Sprintf("chat upstream %s (http %d): %s", e.Category, e.Status, e.Body)
}

// IsModelNotFound reports whether err is an [UpstreamError] saying the
// requested model does not exist.
func IsModelNotFound(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream) && upstream.Category == CategoryModelNotFound
}
