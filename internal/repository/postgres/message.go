package postgres

import (
	"context"
	"database/sql"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (thread_id, sender_id, recipient_id, subject, body, read, created_on)
	          VALUES ($1, $2, $3, $4, $5, false, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.ThreadID, m.SenderID, m.RecipientID, m.Subject, m.Body, time.Now()).Scan(&m.ID)
}

func (r *messageRepository) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Message, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM messages WHERE recipient_id = $1 OR sender_id = $1`, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, thread_id, sender_id, recipient_id, subject, body, read, created_on
	          FROM messages WHERE recipient_id = $1 OR sender_id = $1
	          ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.ThreadID, &m.SenderID, &m.RecipientID, &m.Subject, &m.Body, &m.Read, &m.CreatedOn); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	return messages, count, rows.Err()
}

func (r *messageRepository) MarkAsRead(ctx context.Context, id, userID int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE messages SET read = true WHERE id = $1 AND recipient_id = $2`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
