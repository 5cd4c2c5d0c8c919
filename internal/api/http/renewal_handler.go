package http

import (
	"encoding/json"
	"net/http"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/service"
	"propdesk-backend/internal/utils"
)

type RenewalHandler struct {
	renewalSvc service.RenewalService
}

func NewRenewalHandler(renewalSvc service.RenewalService) *RenewalHandler {
	return &RenewalHandler{renewalSvc: renewalSvc}
}

func (h *RenewalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.RenewalFilter{
		Bucket:    utils.UrgencyBucket(q.Get("bucket")),
		OwnerID:   queryInt32(r, "owner_id", 0),
		LeaseFrom: q.Get("lease_from"),
		LeaseTo:   q.Get("lease_to"),
		Query:     q.Get("q"),
	}

	renewals, err := h.renewalSvc.ListRenewals(r.Context(), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, renewals)
}

type updateNegotiationRequest struct {
	Status domain.NegotiationStatus `json:"status"`
	Note   string                   `json:"note"`
}

func (h *RenewalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid tenant id")
		return
	}

	var req updateNegotiationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := userFromContext(r.Context())
	if err := h.renewalSvc.UpdateNegotiationStatus(r.Context(), id, req.Status, req.Note, actor.ID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type closeNegotiationRequest struct {
	NewValueCents    int32  `json:"new_value_cents"`
	NewStart         string `json:"new_start"`
	NewEnd           string `json:"new_end"`
	ContractDocName  string `json:"contract_doc_name"`
	ContractFilePath string `json:"contract_file_path"`
	ContractMimeType string `json:"contract_mime_type"`
	Note             string `json:"note"`
}

func (h *RenewalHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid tenant id")
		return
	}

	var req closeNegotiationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := userFromContext(r.Context())
	tenant, err := h.renewalSvc.CloseNegotiation(r.Context(), id, service.CloseNegotiationInput{
		NewValueCents:    req.NewValueCents,
		NewStart:         req.NewStart,
		NewEnd:           req.NewEnd,
		ContractDocName:  req.ContractDocName,
		ContractFilePath: req.ContractFilePath,
		ContractMimeType: req.ContractMimeType,
		Note:             req.Note,
		ActorID:          actor.ID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tenant)
}
