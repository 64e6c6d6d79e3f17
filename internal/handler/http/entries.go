package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pocket-money/internal/app"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/utils"
	"github.com/MKhiriev/go-pocket-money/models"
)

// recordEntry appends an expense or an income entry of the authenticated
// user. The owner always comes from the token, never from the body.
func (h *Handler) recordEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	var entry models.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Str("func", "*Handler.recordEntry").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	entry.Username = username

	saved, err := h.services.LedgerService.Record(r.Context(), entry)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.recordEntry")
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	kind := models.EntryKind(chi.URLParam(r, "kind"))
	entries, err := h.services.LedgerService.EntriesFor(r.Context(), username, kind)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listEntries")
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// dailyTotal sums one kind of entries on ?date=YYYY-MM-DD, today by default.
func (h *Handler) dailyTotal(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	kind := models.EntryKind(chi.URLParam(r, "kind"))

	date := models.NewDate(time.Now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("date", raw).Msg("invalid date parameter")
			utils.WriteError(w, app.MsgInvalidDataProvided+": date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	total, err := h.services.LedgerService.DailyTotal(r.Context(), username, kind, date)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.dailyTotal")
		return
	}

	utils.WriteJSON(w, models.DailyTotal{Kind: kind, Date: date, Total: total}, http.StatusOK)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.LedgerService.Categories(r.Context()), http.StatusOK)
}

// requireUser reads the authenticated user name and answers 401 when it is
// missing.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := currentUser(r)
	if !ok {
		logger.FromRequest(r).Err(errNoUserInContext).Send()
		utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return "", false
	}

	return username, true
}
