package http

import (
	"encoding/json"
	"net/http"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/service"
)

type PropertyHandler struct {
	propertySvc service.PropertyService
}

func NewPropertyHandler(propertySvc service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertySvc: propertySvc}
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	user := userFromContext(r.Context())
	properties, total, err := h.propertySvc.ListProperties(r.Context(), user, r.URL.Query().Get("profile_type"), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, paginated{Items: properties, Total: total})
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	property, err := h.propertySvc.GetProperty(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var property domain.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.propertySvc.CreateProperty(r.Context(), &property); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	var property domain.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	property.ID = id

	if err := h.propertySvc.UpdateProperty(r.Context(), &property); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	if err := h.propertySvc.DeleteProperty(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *PropertyHandler) ListCondominiums(w http.ResponseWriter, r *http.Request) {
	condos, err := h.propertySvc.ListCondominiums(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, condos)
}

func (h *PropertyHandler) GetCondominium(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid condominium id")
		return
	}
	condo, err := h.propertySvc.GetCondominium(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, condo)
}

func (h *PropertyHandler) CreateCondominium(w http.ResponseWriter, r *http.Request) {
	var condo domain.Condominium
	if err := json.NewDecoder(r.Body).Decode(&condo); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.propertySvc.CreateCondominium(r.Context(), &condo); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, condo)
}

func (h *PropertyHandler) UpdateCondominium(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid condominium id")
		return
	}

	var condo domain.Condominium
	if err := json.NewDecoder(r.Body).Decode(&condo); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	condo.ID = id

	if err := h.propertySvc.UpdateCondominium(r.Context(), &condo); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, condo)
}

func (h *PropertyHandler) DeleteCondominium(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid condominium id")
		return
	}
	if err := h.propertySvc.DeleteCondominium(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
