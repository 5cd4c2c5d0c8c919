package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateEntry(ctx context.Context, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (property_id, tenant_id, task_id, amount_cents, type, description, entry_date, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.PropertyID, e.TenantID, e.TaskID,
		e.AmountCents, e.Type, e.Description, e.EntryDate, time.Now()).Scan(&e.ID)
}

func (r *ledgerRepository) List(ctx context.Context, propertyID int32, entryType string, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, property_id, tenant_id, task_id, amount_cents, type, description, entry_date, created_on FROM ledger_entries WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if propertyID != 0 {
		query += fmt.Sprintf(" AND property_id = $%d", argIdx)
		args = append(args, propertyID)
		argIdx++
	}
	if entryType != "" {
		query += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, entryType)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY entry_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.PropertyID, &e.TenantID, &e.TaskID, &e.AmountCents,
			&e.Type, &e.Description, &e.EntryDate, &e.CreatedOn); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, count, rows.Err()
}

func (r *ledgerRepository) GetSummary(ctx context.Context, propertyID int32, from, to string) (*domain.LedgerSummary, error) {
	query := `SELECT COALESCE(SUM(CASE WHEN amount_cents > 0 THEN amount_cents ELSE 0 END), 0),
	                 COALESCE(SUM(CASE WHEN amount_cents < 0 THEN -amount_cents ELSE 0 END), 0)
	          FROM ledger_entries WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if propertyID != 0 {
		query += fmt.Sprintf(" AND property_id = $%d", argIdx)
		args = append(args, propertyID)
		argIdx++
	}
	if from != "" {
		query += fmt.Sprintf(" AND entry_date >= $%d", argIdx)
		args = append(args, from)
		argIdx++
	}
	if to != "" {
		query += fmt.Sprintf(" AND entry_date <= $%d", argIdx)
		args = append(args, to)
		argIdx++
	}

	s := &domain.LedgerSummary{}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.IncomeCents, &s.ExpenseCents); err != nil {
		return nil, err
	}
	s.NetCents = s.IncomeCents - s.ExpenseCents
	return s, nil
}
