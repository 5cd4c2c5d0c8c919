package postgres

import (
	"database/sql"

	"propdesk-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.PropertyRepository
	repository.CondominiumRepository
	repository.TenantRepository
	repository.TaskRepository
	repository.PartnerRepository
	repository.LedgerRepository
	repository.SettingsRepository
	repository.MessageRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		PropertyRepository:     NewPropertyRepository(db),
		CondominiumRepository:  NewCondominiumRepository(db),
		TenantRepository:       NewTenantRepository(db),
		TaskRepository:         NewTaskRepository(db),
		PartnerRepository:      NewPartnerRepository(db),
		LedgerRepository:       NewLedgerRepository(db),
		SettingsRepository:     NewSettingsRepository(db),
		MessageRepository:      NewMessageRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
