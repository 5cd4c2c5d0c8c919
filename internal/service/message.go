package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, noteRepo repository.NotificationRepository) MessageService {
	return &messageService{messageRepo: messageRepo, userRepo: userRepo, noteRepo: noteRepo}
}

func (s *messageService) SendMessage(ctx context.Context, msg *domain.Message) error {
	var fields []FieldError
	if msg.RecipientID == 0 {
		fields = append(fields, FieldError{Field: "recipient_id", Message: "recipient is required"})
	}
	if msg.Body == "" {
		fields = append(fields, FieldError{Field: "body", Message: "body is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	if _, err := s.userRepo.GetByID(ctx, msg.RecipientID); err != nil {
		return err
	}

	if msg.ThreadID == "" {
		msg.ThreadID = uuid.New().String()
	}
	msg.CreatedOn = time.Now()
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return err
	}

	sender, err := s.userRepo.GetByID(ctx, msg.SenderID)
	senderName := "Someone"
	if err == nil {
		senderName = sender.Name
	}
	notif := &domain.Notification{
		UserID:  msg.RecipientID,
		Title:   "New Message",
		Message: senderName + ": " + msg.Subject,
		Attributes: map[string]string{
			"type":      "NEW_MESSAGE",
			"thread_id": msg.ThreadID,
		},
	}
	_ = s.noteRepo.Create(ctx, notif)
	return nil
}

func (s *messageService) ListMessages(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Message, int32, error) {
	return s.messageRepo.ListByUser(ctx, userID, page, pageSize)
}

func (s *messageService) MarkAsRead(ctx context.Context, id, userID int32) error {
	return s.messageRepo.MarkAsRead(ctx, id, userID)
}
