package http

import (
	"encoding/json"
	"net/http"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/service"
)

type LedgerHandler struct {
	ledgerSvc service.LedgerService
}

func NewLedgerHandler(ledgerSvc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	entries, total, err := h.ledgerSvc.ListEntries(r.Context(),
		queryInt32(r, "property_id", 0),
		r.URL.Query().Get("type"),
		page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, paginated{Items: entries, Total: total})
}

func (h *LedgerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	summary, err := h.ledgerSvc.GetSummary(r.Context(),
		queryInt32(r, "property_id", 0),
		q.Get("from"), q.Get("to"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var entry domain.LedgerEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.ledgerSvc.CreateEntry(r.Context(), &entry); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}
