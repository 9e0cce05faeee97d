package http

import (
	"log/slog"
	"net/http"

	"wallet/internal/ledger"
)

type summaryResponse struct {
	Month string `json:"month"`
	ledger.Summary
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET")
		return
	}

	month, err := monthParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_month", "month must be formatted as YYYY-MM")
		return
	}

	txs, err := s.ledger.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions for summary", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to compute summary")
		return
	}

	summary := ledger.Summarize(txs, month)
	writeJSON(w, http.StatusOK, summaryResponse{Month: month.String(), Summary: summary})
}

func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET")
		return
	}

	txs, err := s.ledger.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions for report", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to compute report")
		return
	}

	dist := ledger.Distribute(txs)
	if dist == nil {
		dist = []ledger.CategoryAmount{}
	}
	writeJSON(w, http.StatusOK, dist)
}
