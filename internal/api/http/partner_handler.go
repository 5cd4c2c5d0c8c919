package http

import (
	"encoding/json"
	"net/http"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/service"
)

type PartnerHandler struct {
	partnerSvc service.PartnerService
}

func NewPartnerHandler(partnerSvc service.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerSvc: partnerSvc}
}

func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	partners, err := h.partnerSvc.ListPartners(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, partners)
}

func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid partner id")
		return
	}
	partner, err := h.partnerSvc.GetPartner(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, partner)
}

func (h *PartnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var partner domain.Partner
	if err := json.NewDecoder(r.Body).Decode(&partner); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.partnerSvc.CreatePartner(r.Context(), &partner); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, partner)
}

func (h *PartnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid partner id")
		return
	}

	var partner domain.Partner
	if err := json.NewDecoder(r.Body).Decode(&partner); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	partner.ID = id

	if err := h.partnerSvc.UpdatePartner(r.Context(), &partner); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, partner)
}

func (h *PartnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid partner id")
		return
	}
	if err := h.partnerSvc.DeletePartner(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
