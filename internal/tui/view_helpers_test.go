package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pocket-money/internal/service"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1 000"},
		{1234567, "1 234 567"},
		{-25000, "-25 000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.in), tt.in)
	}
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[░░░░]", progressBar(0, 4))
	assert.Equal(t, "[██░░]", progressBar(50, 4))
	assert.Equal(t, "[████]", progressBar(250, 4))
	assert.Equal(t, "[░░░░]", progressBar(-3, 4))
	assert.Empty(t, progressBar(50, 0))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "long te...", fitText("long text here", 10))
	assert.Equal(t, "lo", fitText("long", 2))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, isDigits("0123"))
	assert.False(t, isDigits(""))
	assert.False(t, isDigits("12 3"))
	assert.False(t, isDigits("١٢٣"))
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Empty(t, humanizeServerUnavailableError(nil))
	assert.Equal(t, "No network or the server is unavailable",
		humanizeServerUnavailableError(errors.New("Post \"http://x\": dial tcp: connection refused")))
	assert.Equal(t, "Session expired, please log in again",
		humanizeServerUnavailableError(fmt.Errorf("summary: %w", service.ErrTokenIsExpiredOrInvalid)))
	assert.Equal(t, "boom", humanizeServerUnavailableError(errors.New("boom")))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "line one\nline two", "esc: back")

	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "  line one\n  line two\n")
	assert.Contains(t, page, "esc: back")
	assert.Contains(t, page, "ctrl+c: quit")
	assert.Contains(t, renderPage("EMPTY", " ", ""), "  -\n")
}
