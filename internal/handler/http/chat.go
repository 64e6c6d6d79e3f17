package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pocket-money/internal/app"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/utils"
	"github.com/MKhiriev/go-pocket-money/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeChatRequest(w, r)
	if !ok {
		return
	}

	reply, err := h.services.ChatService.Ask(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.chat")
		return
	}

	utils.WriteJSON(w, reply, http.StatusOK)
}

// chatPing tests the credential and model; the body may be empty.
func (h *Handler) chatPing(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if r.ContentLength != 0 {
		var ok bool
		if req, ok = decodeChatRequest(w, r); !ok {
			return
		}
	}

	reply, err := h.services.ChatService.Ping(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.chatPing")
		return
	}

	utils.WriteJSON(w, reply, http.StatusOK)
}

func (h *Handler) chatModels(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.ChatService.Models(), http.StatusOK)
}

func decodeChatRequest(w http.ResponseWriter, r *http.Request) (models.ChatRequest, bool) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return models.ChatRequest{}, false
	}

	return req, true
}
