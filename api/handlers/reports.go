package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aria-lang/alnstats-go/internal/reportstore"
	"github.com/aria-lang/alnstats-go/internal/stats"
)

var errNoStore = errors.New("report store is not configured")

func reportRecord(r *stats.Report) *reportstore.Record {
	return reportstore.NewRecord(r)
}

// ReportListResponse lists stored report ids.
type ReportListResponse struct {
	IDs []string `json:"ids"`
}

// ListReports handles GET /api/reports.
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: errNoStore.Error()})
		return
	}
	ids, err := h.Store.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ReportListResponse{IDs: ids})
}

// GetReport handles GET /api/reports/{id}. The id "latest" returns the
// most recently stored report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: errNoStore.Error()})
		return
	}

	id := chi.URLParam(r, "id")
	var (
		rec *reportstore.Record
		err error
	)
	if id == "latest" {
		rec, err = h.Store.Latest()
	} else {
		rec, err = h.Store.Get(id)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
