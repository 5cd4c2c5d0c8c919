package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type partnerRepository struct {
	db *sql.DB
}

func NewPartnerRepository(db *sql.DB) repository.PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) Create(ctx context.Context, p *domain.Partner) error {
	query := `INSERT INTO partners (user_id, name, email, phone_number, services, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, p.UserID, p.Name, p.Email, p.PhoneNumber,
		pq.Array(p.Services), p.Status, now, now).Scan(&p.ID)
}

func (r *partnerRepository) GetByID(ctx context.Context, id int32) (*domain.Partner, error) {
	p := &domain.Partner{}
	query := `SELECT id, user_id, name, email, phone_number, services, status, created_on, updated_on FROM partners WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.UserID, &p.Name, &p.Email,
		&p.PhoneNumber, pq.Array(&p.Services), &p.Status, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *partnerRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Partner, error) {
	p := &domain.Partner{}
	query := `SELECT id, user_id, name, email, phone_number, services, status, created_on, updated_on FROM partners WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.ID, &p.UserID, &p.Name, &p.Email,
		&p.PhoneNumber, pq.Array(&p.Services), &p.Status, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *partnerRepository) Update(ctx context.Context, p *domain.Partner) error {
	query := `UPDATE partners SET user_id=$1, name=$2, email=$3, phone_number=$4, services=$5, status=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, p.UserID, p.Name, p.Email, p.PhoneNumber,
		pq.Array(p.Services), p.Status, time.Now().Format("2006-01-02"), p.ID)
	return err
}

func (r *partnerRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM partners WHERE id = $1`, id)
	return err
}

func (r *partnerRepository) List(ctx context.Context) ([]domain.Partner, error) {
	query := `SELECT id, user_id, name, email, phone_number, services, status, created_on, updated_on FROM partners ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Email, &p.PhoneNumber,
			pq.Array(&p.Services), &p.Status, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}
