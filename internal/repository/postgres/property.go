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

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `id, owner_id, name, address, city, profile_type, status, condominium_id, rent_value_cents, created_on, updated_on`

func scanProperty(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Property, error) {
	p := &domain.Property{}
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.City, &p.ProfileType, &p.Status,
		&p.CondominiumID, &p.RentValueCents, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `INSERT INTO properties (owner_id, name, address, city, profile_type, status, condominium_id, rent_value_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, p.OwnerID, p.Name, p.Address, p.City, p.ProfileType,
		p.Status, p.CondominiumID, p.RentValueCents, now, now).Scan(&p.ID)
}

func (r *propertyRepository) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	return scanProperty(r.db.QueryRowContext(ctx, query, id))
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	query := `UPDATE properties SET owner_id=$1, name=$2, address=$3, city=$4, profile_type=$5, status=$6, condominium_id=$7, rent_value_cents=$8, updated_on=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, p.OwnerID, p.Name, p.Address, p.City, p.ProfileType,
		p.Status, p.CondominiumID, p.RentValueCents, time.Now().Format("2006-01-02"), p.ID)
	return err
}

func (r *propertyRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	return err
}

func (r *propertyRepository) List(ctx context.Context, profileType string, page, pageSize int32) ([]domain.Property, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + propertyColumns + ` FROM properties`
	args := []interface{}{}
	argIdx := 1
	if profileType != "" {
		query += fmt.Sprintf(" WHERE profile_type = $%d", argIdx)
		args = append(args, profileType)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, err
		}
		properties = append(properties, *p)
	}
	return properties, count, rows.Err()
}

func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE owner_id = $1 ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}
	return properties, rows.Err()
}
