package http

import (
	"encoding/json"
	"net/http"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/service"
)

type MessageHandler struct {
	messageSvc service.MessageService
	noteSvc    service.NotificationService
}

func NewMessageHandler(messageSvc service.MessageService, noteSvc service.NotificationService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc, noteSvc: noteSvc}
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	user := userFromContext(r.Context())
	messages, total, err := h.messageSvc.ListMessages(r.Context(), user.ID, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, paginated{Items: messages, Total: total})
}

type sendMessageRequest struct {
	RecipientID int32  `json:"recipient_id"`
	ThreadID    string `json:"thread_id"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := userFromContext(r.Context())
	msg := &domain.Message{
		ThreadID:    req.ThreadID,
		SenderID:    user.ID,
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        req.Body,
	}
	if err := h.messageSvc.SendMessage(r.Context(), msg); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid message id")
		return
	}
	user := userFromContext(r.Context())
	if err := h.messageSvc.MarkAsRead(r.Context(), id, user.ID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *MessageHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	user := userFromContext(r.Context())
	notes, total, err := h.noteSvc.GetNotifications(r.Context(), user.ID, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, paginated{Items: notes, Total: total})
}

func (h *MessageHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	user := userFromContext(r.Context())
	if err := h.noteSvc.MarkAsRead(r.Context(), user.ID, id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
