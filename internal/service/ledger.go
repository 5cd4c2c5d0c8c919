package service

import (
	"context"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type ledgerService struct {
	ledgerRepo repository.LedgerRepository
}

func NewLedgerService(ledgerRepo repository.LedgerRepository) LedgerService {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

func (s *ledgerService) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	var fields []FieldError
	if entry.AmountCents == 0 {
		fields = append(fields, FieldError{Field: "amount_cents", Message: "amount cannot be zero"})
	}
	if entry.Type == "" {
		fields = append(fields, FieldError{Field: "type", Message: "entry type is required"})
	}
	if entry.EntryDate == "" {
		entry.EntryDate = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", entry.EntryDate); err != nil {
		fields = append(fields, FieldError{Field: "entry_date", Message: "entry date must be yyyy-mm-dd"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return s.ledgerRepo.CreateEntry(ctx, entry)
}

func (s *ledgerService) ListEntries(ctx context.Context, propertyID int32, entryType string, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	return s.ledgerRepo.List(ctx, propertyID, entryType, page, pageSize)
}

func (s *ledgerService) GetSummary(ctx context.Context, propertyID int32, from, to string) (*domain.LedgerSummary, error) {
	return s.ledgerRepo.GetSummary(ctx, propertyID, from, to)
}
