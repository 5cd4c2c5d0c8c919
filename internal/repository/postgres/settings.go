package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// The financial_settings table holds a single row.
func (r *settingsRepository) GetFinancialSettings(ctx context.Context) (*domain.FinancialSettings, error) {
	s := &domain.FinancialSettings{}
	query := `SELECT labor_margin_pct, material_margin_pct, price_review_threshold_pct, updated_on FROM financial_settings LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&s.LaborMarginPct, &s.MaterialMarginPct, &s.PriceReviewThresholdPct, &s.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *settingsRepository) UpdateFinancialSettings(ctx context.Context, s *domain.FinancialSettings) error {
	query := `UPDATE financial_settings SET labor_margin_pct=$1, material_margin_pct=$2, price_review_threshold_pct=$3, updated_on=$4`
	_, err := r.db.ExecContext(ctx, query, s.LaborMarginPct, s.MaterialMarginPct, s.PriceReviewThresholdPct, time.Now().Format("2006-01-02"))
	return err
}

func (r *settingsRepository) ListServiceRates(ctx context.Context) ([]domain.ServiceRate, error) {
	query := `SELECT id, name, type, service_price_cents, partner_payment_cents, pm_value_cents, created_on, updated_on FROM service_rates ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []domain.ServiceRate
	for rows.Next() {
		var sr domain.ServiceRate
		if err := rows.Scan(&sr.ID, &sr.Name, &sr.Type, &sr.ServicePriceCents,
			&sr.PartnerPaymentCents, &sr.PMValueCents, &sr.CreatedOn, &sr.UpdatedOn); err != nil {
			return nil, err
		}
		rates = append(rates, sr)
	}
	return rates, rows.Err()
}

func (r *settingsRepository) GetServiceRate(ctx context.Context, id int32) (*domain.ServiceRate, error) {
	sr := &domain.ServiceRate{}
	query := `SELECT id, name, type, service_price_cents, partner_payment_cents, pm_value_cents, created_on, updated_on FROM service_rates WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&sr.ID, &sr.Name, &sr.Type,
		&sr.ServicePriceCents, &sr.PartnerPaymentCents, &sr.PMValueCents, &sr.CreatedOn, &sr.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return sr, nil
}

func (r *settingsRepository) CreateServiceRate(ctx context.Context, sr *domain.ServiceRate) error {
	query := `INSERT INTO service_rates (name, type, service_price_cents, partner_payment_cents, pm_value_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, sr.Name, sr.Type, sr.ServicePriceCents,
		sr.PartnerPaymentCents, sr.PMValueCents, now, now).Scan(&sr.ID)
}

func (r *settingsRepository) UpdateServiceRate(ctx context.Context, sr *domain.ServiceRate) error {
	query := `UPDATE service_rates SET name=$1, type=$2, service_price_cents=$3, partner_payment_cents=$4, pm_value_cents=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, sr.Name, sr.Type, sr.ServicePriceCents,
		sr.PartnerPaymentCents, sr.PMValueCents, time.Now().Format("2006-01-02"), sr.ID)
	return err
}
