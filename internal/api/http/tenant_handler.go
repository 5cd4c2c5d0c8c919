package http

import (
	"encoding/json"
	"net/http"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/service"
)

type TenantHandler struct {
	tenantSvc service.TenantService
}

func NewTenantHandler(tenantSvc service.TenantService) *TenantHandler {
	return &TenantHandler{tenantSvc: tenantSvc}
}

func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	tenants, total, err := h.tenantSvc.ListTenants(r.Context(), r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, paginated{Items: tenants, Total: total})
}

func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid tenant id")
		return
	}
	tenant, err := h.tenantSvc.GetTenant(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var tenant domain.Tenant
	if err := json.NewDecoder(r.Body).Decode(&tenant); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.tenantSvc.CreateTenant(r.Context(), &tenant); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, tenant)
}

func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid tenant id")
		return
	}

	var tenant domain.Tenant
	if err := json.NewDecoder(r.Body).Decode(&tenant); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tenant.ID = id

	if err := h.tenantSvc.UpdateTenant(r.Context(), &tenant); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) Documents(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid tenant id")
		return
	}
	docs, err := h.tenantSvc.ListDocuments(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, docs)
}
