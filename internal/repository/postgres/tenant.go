package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

const tenantColumns = `id, property_id, user_id, name, email, phone_number, lease_start, lease_end, rent_value_cents, status, negotiation_status, suggested_renewal_price_cents, created_on, updated_on`

func scanTenant(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	err := row.Scan(&t.ID, &t.PropertyID, &t.UserID, &t.Name, &t.Email, &t.PhoneNumber,
		&t.LeaseStart, &t.LeaseEnd, &t.RentValueCents, &t.Status, &t.NegotiationStatus,
		&t.SuggestedRenewalPriceCents, &t.CreatedOn, &t.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *tenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	if t.NegotiationStatus == "" {
		t.NegotiationStatus = domain.NegotiationStatusNegotiating
	}
	query := `INSERT INTO tenants (property_id, user_id, name, email, phone_number, lease_start, lease_end, rent_value_cents, status, negotiation_status, suggested_renewal_price_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, t.PropertyID, t.UserID, t.Name, t.Email, t.PhoneNumber,
		t.LeaseStart, t.LeaseEnd, t.RentValueCents, t.Status, t.NegotiationStatus,
		t.SuggestedRenewalPriceCents, now, now).Scan(&t.ID)
}

func (r *tenantRepository) GetByID(ctx context.Context, id int32) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	return scanTenant(r.db.QueryRowContext(ctx, query, id))
}

func (r *tenantRepository) Update(ctx context.Context, t *domain.Tenant) error {
	query := `UPDATE tenants SET property_id=$1, name=$2, email=$3, phone_number=$4, lease_start=$5, lease_end=$6, rent_value_cents=$7, status=$8, negotiation_status=$9, suggested_renewal_price_cents=$10, updated_on=$11 WHERE id=$12`
	_, err := r.db.ExecContext(ctx, query, t.PropertyID, t.Name, t.Email, t.PhoneNumber,
		t.LeaseStart, t.LeaseEnd, t.RentValueCents, t.Status, t.NegotiationStatus,
		t.SuggestedRenewalPriceCents, time.Now().Format("2006-01-02"), t.ID)
	return err
}

func (r *tenantRepository) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE property_id = $1 ORDER BY lease_end ASC`
	rows, err := r.db.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []domain.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, *t)
	}
	return tenants, rows.Err()
}

func (r *tenantRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Tenant, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + tenantColumns + ` FROM tenants`
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY lease_end ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tenants []domain.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, 0, err
		}
		tenants = append(tenants, *t)
	}
	return tenants, count, rows.Err()
}

// ListRenewalCandidates returns active (or closed, kept for history) tenants
// of long-term properties joined with their property and owner. Short-term
// rentals never appear here.
func (r *tenantRepository) ListRenewalCandidates(ctx context.Context) ([]domain.RenewalCandidate, error) {
	query := `SELECT t.id, t.property_id, t.user_id, t.name, t.email, t.phone_number, t.lease_start, t.lease_end, t.rent_value_cents, t.status, t.negotiation_status, t.suggested_renewal_price_cents, t.created_on, t.updated_on,
	                 p.id, p.name, p.profile_type, u.id, u.name
	          FROM tenants t
	          JOIN properties p ON p.id = t.property_id
	          JOIN users u ON u.id = p.owner_id
	          WHERE p.profile_type = 'long_term'
	            AND (t.status = 'active' OR t.negotiation_status = 'closed')
	          ORDER BY t.lease_end ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.RenewalCandidate
	for rows.Next() {
		var c domain.RenewalCandidate
		t := &c.Tenant
		err := rows.Scan(&t.ID, &t.PropertyID, &t.UserID, &t.Name, &t.Email, &t.PhoneNumber,
			&t.LeaseStart, &t.LeaseEnd, &t.RentValueCents, &t.Status, &t.NegotiationStatus,
			&t.SuggestedRenewalPriceCents, &t.CreatedOn, &t.UpdatedOn,
			&c.PropertyID, &c.PropertyName, &c.ProfileType, &c.OwnerID, &c.OwnerName)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *tenantRepository) UpdateNegotiationStatus(ctx context.Context, tenantID int32, status domain.NegotiationStatus, log *domain.NegotiationLog) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE tenants SET negotiation_status=$1, updated_on=$2 WHERE id=$3`,
		status, time.Now().Format("2006-01-02"), tenantID)
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

	if log != nil {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO negotiation_logs (tenant_id, status, note, created_by, created_on) VALUES ($1, $2, $3, $4, $5)`,
			tenantID, log.Status, log.Note, log.CreatedBy, time.Now())
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// CloseNegotiation rewrites the lease terms, marks the negotiation closed,
// stores the contract document and appends the log entry, all in one
// transaction. Any failure rolls back and leaves the tenant untouched.
func (r *tenantRepository) CloseNegotiation(ctx context.Context, tenantID int32, newValueCents int32, newStart, newEnd string, doc *domain.Document, log *domain.NegotiationLog) (*domain.Tenant, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `UPDATE tenants
	          SET lease_start=$1, lease_end=$2, rent_value_cents=$3, negotiation_status=$4, updated_on=$5
	          WHERE id=$6
	          RETURNING ` + tenantColumns
	row := tx.QueryRowContext(ctx, query, newStart, newEnd, newValueCents,
		domain.NegotiationStatusClosed, time.Now().Format("2006-01-02"), tenantID)

	tenant, err := scanTenant(row)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, tenant_id, name, file_path, mime_type, uploaded_by, created_on) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		doc.ID, tenantID, doc.Name, doc.FilePath, doc.MimeType, doc.UploadedBy, time.Now())
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO negotiation_logs (tenant_id, status, note, created_by, created_on) VALUES ($1, $2, $3, $4, $5)`,
		tenantID, log.Status, log.Note, log.CreatedBy, time.Now())
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (r *tenantRepository) ListDocuments(ctx context.Context, tenantID int32) ([]domain.Document, error) {
	query := `SELECT id, tenant_id, name, file_path, mime_type, uploaded_by, created_on FROM documents WHERE tenant_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.TenantID, &d.Name, &d.FilePath, &d.MimeType, &d.UploadedBy, &d.CreatedOn); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *tenantRepository) ListNegotiationLogs(ctx context.Context, tenantID int32) ([]domain.NegotiationLog, error) {
	query := `SELECT id, tenant_id, status, note, created_by, created_on FROM negotiation_logs WHERE tenant_id = $1 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.NegotiationLog
	for rows.Next() {
		var l domain.NegotiationLog
		if err := rows.Scan(&l.ID, &l.TenantID, &l.Status, &l.Note, &l.CreatedBy, &l.CreatedOn); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
