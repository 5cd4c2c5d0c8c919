package http

import (
	"encoding/json"
	"net/http"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/service"
)

type SettingsHandler struct {
	settingsSvc service.SettingsService
}

func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

func (h *SettingsHandler) GetFinancial(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsSvc.GetFinancialSettings(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateFinancial(w http.ResponseWriter, r *http.Request) {
	var settings domain.FinancialSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.settingsSvc.UpdateFinancialSettings(r.Context(), &settings); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.settingsSvc.ListServiceRates(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rates)
}

// serviceRateRequest keeps the pm value as a pointer so the handler can
// distinguish "left blank, suggest one" from "typed zero on purpose".
type serviceRateRequest struct {
	Name                string          `json:"name"`
	Type                domain.TaskType `json:"type"`
	ServicePriceCents   int32           `json:"service_price_cents"`
	PartnerPaymentCents int32           `json:"partner_payment_cents"`
	PMValueCents        *int32          `json:"pm_value_cents"`
}

func (req *serviceRateRequest) toRate(id int32) (*domain.ServiceRate, bool) {
	rate := &domain.ServiceRate{
		ID:                  id,
		Name:                req.Name,
		Type:                req.Type,
		ServicePriceCents:   req.ServicePriceCents,
		PartnerPaymentCents: req.PartnerPaymentCents,
	}
	if req.PMValueCents != nil {
		rate.PMValueCents = *req.PMValueCents
		return rate, true
	}
	return rate, false
}

func (h *SettingsHandler) CreateRate(w http.ResponseWriter, r *http.Request) {
	var req serviceRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rate, pmValueSet := req.toRate(0)
	if err := h.settingsSvc.CreateServiceRate(r.Context(), rate, pmValueSet); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rate)
}

func (h *SettingsHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid rate id")
		return
	}

	var req serviceRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rate, pmValueSet := req.toRate(id)
	if err := h.settingsSvc.UpdateServiceRate(r.Context(), rate, pmValueSet); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rate)
}
