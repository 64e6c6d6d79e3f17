package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pocket-money/internal/app"
	"github.com/MKhiriev/go-pocket-money/internal/utils"
)

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	summary, err := h.services.LedgerService.Summary(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.summary")
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) progress(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	report, err := h.services.ProgressionService.Report(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.progress")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) feedback(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	report, err := h.services.FeedbackService.Evaluate(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.feedback")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

// leaderboard ranks users; ?limit=N is optional and clamped by the service.
func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := intQueryParam(w, r, "limit")
	if !ok {
		return
	}

	rows, err := h.services.LeaderboardService.TopN(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.leaderboard")
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

// intQueryParam parses an optional integer query parameter; absent means 0.
func intQueryParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		utils.WriteError(w, app.MsgInvalidDataProvided+": "+name+" must be an integer", http.StatusBadRequest)
		return 0, false
	}

	return value, true
}
