package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pocket-money/internal/app"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/utils"
	"github.com/MKhiriev/go-pocket-money/models"
)

func (h *Handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	goal, err := h.services.WishlistService.Get(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getWishlist")
		return
	}

	utils.WriteJSON(w, goal, http.StatusOK)
}

// replaceWishlist swaps the goal for the one in the body. The image is sent
// base64 encoded in the "image" field.
func (h *Handler) replaceWishlist(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	var goal models.WishlistGoal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.replaceWishlist").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.WishlistService.Replace(r.Context(), username, goal); err != nil {
		writeServiceError(w, r, err, "*Handler.replaceWishlist")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearWishlist(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.services.WishlistService.Clear(r.Context(), username); err != nil {
		writeServiceError(w, r, err, "*Handler.clearWishlist")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// wishlistThumbnail answers with a PNG fitted into ?size=N pixels.
func (h *Handler) wishlistThumbnail(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	size, ok := intQueryParam(w, r, "size")
	if !ok {
		return
	}

	thumb, err := h.services.WishlistService.Thumbnail(r.Context(), username, size)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.wishlistThumbnail")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(thumb)
}
