package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pocket-money/internal/app"
	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/internal/store"
	"github.com/MKhiriev/go-pocket-money/models"
)

func TestGetWishlist(t *testing.T) {
	h, m := newTestHandler(t)
	m.wishlist.EXPECT().Get(gomock.Any(), "mia").
		Return(models.WishlistGoal{ItemLabel: "bike", TargetAmount: 12000}, nil)

	rec := httptest.NewRecorder()
	h.getWishlist(rec, userRequest(http.MethodGet, "/api/wishlist/", "mia", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"item_label":"bike","target_amount":12000}`, rec.Body.String())
}

func TestGetWishlist_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	m.wishlist.EXPECT().Get(gomock.Any(), "mia").Return(models.WishlistGoal{}, store.ErrWishlistNotFound)

	rec := httptest.NewRecorder()
	h.getWishlist(rec, userRequest(http.MethodGet, "/api/wishlist/", "mia", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgWishlistNotFound, decodeError(t, rec))
}

func TestReplaceWishlist(t *testing.T) {
	h, m := newTestHandler(t)
	image := []byte("\x89PNG\r\n\x1a\n")
	m.wishlist.EXPECT().Replace(gomock.Any(), "mia", models.WishlistGoal{
		ItemLabel:    "bike",
		TargetAmount: 12000,
		Image:        image,
	}).Return(nil)

	body := jsonBody(t, models.WishlistGoal{ItemLabel: "bike", TargetAmount: 12000, Image: image})
	rec := httptest.NewRecorder()
	h.replaceWishlist(rec, userRequest(http.MethodPut, "/api/wishlist/", "mia", body))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestReplaceWishlist_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.replaceWishlist(rec, userRequest(http.MethodPut, "/api/wishlist/", "mia", strings.NewReader(`{"image":"%%%"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReplaceWishlist_Invalid(t *testing.T) {
	h, m := newTestHandler(t)
	m.wishlist.EXPECT().Replace(gomock.Any(), "mia", gomock.Any()).
		Return(fmt.Errorf("%w: target amount must be greater than zero", service.ErrInvalidInput))

	rec := httptest.NewRecorder()
	h.replaceWishlist(rec, userRequest(http.MethodPut, "/api/wishlist/", "mia", strings.NewReader(`{"item_label":"bike"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided+": target amount must be greater than zero", decodeError(t, rec))
}

func TestClearWishlist(t *testing.T) {
	h, m := newTestHandler(t)
	m.wishlist.EXPECT().Clear(gomock.Any(), "mia").Return(nil)

	rec := httptest.NewRecorder()
	h.clearWishlist(rec, userRequest(http.MethodDelete, "/api/wishlist/", "mia", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWishlistThumbnail(t *testing.T) {
	h, m := newTestHandler(t)
	thumb := []byte("\x89PNG\r\n\x1a\nthumb")
	m.wishlist.EXPECT().Thumbnail(gomock.Any(), "mia", 64).Return(thumb, nil)

	rec := httptest.NewRecorder()
	h.wishlistThumbnail(rec, userRequest(http.MethodGet, "/api/wishlist/thumbnail?size=64", "mia", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, thumb, rec.Body.Bytes())
}

func TestWishlistThumbnail_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"no goal", store.ErrWishlistNotFound, http.StatusNotFound, app.MsgWishlistNotFound},
		{"no image", service.ErrNoWishlistImage, http.StatusNotFound, app.MsgNoWishlistImage},
		{
			"undecodable image",
			fmt.Errorf("%w: %w", service.ErrUnsupportedImage, fmt.Errorf("image: unknown format")),
			http.StatusUnprocessableEntity,
			app.MsgUnsupportedImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.wishlist.EXPECT().Thumbnail(gomock.Any(), "mia", 0).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			h.wishlistThumbnail(rec, userRequest(http.MethodGet, "/api/wishlist/thumbnail", "mia", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestWishlistThumbnail_InvalidSize(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.wishlistThumbnail(rec, userRequest(http.MethodGet, "/api/wishlist/thumbnail?size=big", "mia", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
