package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"wallet/internal/core"
)

const maxBodyBytes = 1 << 20

// createTransactionRequest is the wire shape of a new transaction. Amount is
// raw JSON so both 12.34 and "12.34" reach validation unmodified.
type createTransactionRequest struct {
	Title       string          `json:"title"`
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
}

func (req createTransactionRequest) toInput() core.TransactionInput {
	amount := strings.TrimSpace(string(req.Amount))
	amount = strings.Trim(amount, `"`)
	return core.TransactionInput{
		Title:       req.Title,
		Amount:      amount,
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
		Type:        req.Type,
	}
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r)
	case http.MethodPost:
		s.createTransaction(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET or POST")
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.ledger.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to list transactions")
		return
	}
	if txs == nil {
		txs = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "failed to read request body")
		return
	}

	var req createTransactionRequest
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "request body is not valid JSON: "+err.Error())
		return
	}

	tx, err := core.ValidateInput(req.toInput())
	if err != nil {
		slog.WarnContext(r.Context(), "Rejected transaction", "error", err, "title", req.Title)
		writeValidationError(w, err)
		return
	}

	stored, err := s.ledger.Append(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to store transaction", "error", err, "title", tx.Title)
		writeError(w, http.StatusInternalServerError, "internal", "failed to store transaction")
		return
	}

	slog.InfoContext(r.Context(), "Transaction created",
		"id", stored.ID,
		"title", stored.Title,
		"amount_cents", stored.Amount.Cents,
		"tx_type", string(stored.Type))
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleExpenseByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use DELETE")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/expenses/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "bad_id", "transaction id must be a positive integer")
		return
	}

	removed, err := s.ledger.Remove(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to remove transaction", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal", "failed to remove transaction")
		return
	}

	// Deleting an absent transaction is not an error; the outcome is the
	// same either way.
	if removed {
		slog.InfoContext(r.Context(), "Transaction removed", "id", id)
	}
	w.WriteHeader(http.StatusNoContent)
}
