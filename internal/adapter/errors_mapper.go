package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pocket-money/internal/utils"
)

// mapHTTPError converts a non-2xx answer of the go-pocket-money server into
// one of the sentinel errors, keeping the server's message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := serverMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrGatewayTimeout, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// serverMessage extracts the "error" field of a JSON error body and falls
// back to the raw text.
func serverMessage(raw []byte) string {
	var body utils.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}

type geminiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// classifyUpstream builds the [UpstreamError] of a failed generate call.
func classifyUpstream(status int, raw []byte) *UpstreamError {
	var body geminiErrorBody
	_ = json.Unmarshal(raw, &body)

	category := CategoryOther
	switch {
	case status == http.StatusNotFound,
		status == http.StatusBadRequest && body.Error.Status == "NOT_FOUND":
		category = CategoryModelNotFound
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		category = CategoryUnauthorized
	case status == http.StatusTooManyRequests:
		category = CategoryRateLimited
	}

	return &UpstreamError{
		Status:   status,
		Category: category,
		Body:     truncate(strings.TrimSpace(string(raw)), maxUpstreamBody),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
