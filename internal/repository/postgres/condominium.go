package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type condominiumRepository struct {
	db *sql.DB
}

func NewCondominiumRepository(db *sql.DB) repository.CondominiumRepository {
	return &condominiumRepository{db: db}
}

func (r *condominiumRepository) Create(ctx context.Context, c *domain.Condominium) error {
	query := `INSERT INTO condominiums (name, address, city, admin_name, admin_fee_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, c.Name, c.Address, c.City, c.AdminName, c.AdminFee, now, now).Scan(&c.ID)
}

func (r *condominiumRepository) GetByID(ctx context.Context, id int32) (*domain.Condominium, error) {
	c := &domain.Condominium{}
	query := `SELECT id, name, address, city, admin_name, admin_fee_cents, created_on, updated_on FROM condominiums WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Address, &c.City, &c.AdminName, &c.AdminFee, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *condominiumRepository) Update(ctx context.Context, c *domain.Condominium) error {
	query := `UPDATE condominiums SET name=$1, address=$2, city=$3, admin_name=$4, admin_fee_cents=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Address, c.City, c.AdminName, c.AdminFee, time.Now().Format("2006-01-02"), c.ID)
	return err
}

func (r *condominiumRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM condominiums WHERE id = $1`, id)
	return err
}

func (r *condominiumRepository) List(ctx context.Context) ([]domain.Condominium, error) {
	query := `SELECT id, name, address, city, admin_name, admin_fee_cents, created_on, updated_on FROM condominiums ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var condos []domain.Condominium
	for rows.Next() {
		var c domain.Condominium
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.City, &c.AdminName, &c.AdminFee, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		condos = append(condos, c)
	}
	return condos, rows.Err()
}
