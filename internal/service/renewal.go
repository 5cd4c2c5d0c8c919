package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/logger"
	"propdesk-backend/internal/repository"
	"propdesk-backend/internal/utils"
)

type renewalService struct {
	tenantRepo repository.TenantRepository
	now        func() time.Time
}

// NewRenewalService builds the renewals board service. now is injectable so
// urgency buckets can be tested against a fixed date; pass nil for the real
// clock.
func NewRenewalService(tenantRepo repository.TenantRepository, now func() time.Time) RenewalService {
	if now == nil {
		now = time.Now
	}
	return &renewalService{tenantRepo: tenantRepo, now: now}
}

func matchesFilter(r Renewal, f RenewalFilter) bool {
	if f.Bucket != "" && r.Urgency.Bucket != f.Bucket {
		return false
	}
	if f.OwnerID != 0 && r.OwnerID != f.OwnerID {
		return false
	}
	if f.LeaseFrom != "" && r.Tenant.LeaseEnd < f.LeaseFrom {
		return false
	}
	if f.LeaseTo != "" && r.Tenant.LeaseEnd > f.LeaseTo {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(r.PropertyName), q) &&
			!strings.Contains(strings.ToLower(r.Tenant.Name), q) &&
			!strings.Contains(strings.ToLower(r.OwnerName), q) {
			return false
		}
	}
	return true
}

// ListRenewals classifies every eligible tenant and applies the filter.
// Rows come back most urgent first; invalid-date rows sit at the end with
// the sentinel daysLeft.
func (s *renewalService) ListRenewals(ctx context.Context, filter RenewalFilter) ([]Renewal, error) {
	candidates, err := s.tenantRepo.ListRenewalCandidates(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	renewals := make([]Renewal, 0, len(candidates))
	for _, c := range candidates {
		r := Renewal{
			RenewalCandidate: c,
			Urgency:          utils.ClassifyRenewalUrgency(c.Tenant.LeaseEnd, c.Tenant.NegotiationStatus, today),
		}
		if matchesFilter(r, filter) {
			renewals = append(renewals, r)
		}
	}

	sort.SliceStable(renewals, func(i, j int) bool {
		return renewals[i].Urgency.DaysLeft < renewals[j].Urgency.DaysLeft
	})
	return renewals, nil
}

func (s *renewalService) UpdateNegotiationStatus(ctx context.Context, tenantID int32, status domain.NegotiationStatus, note string, actorID int32) error {
	if !status.Valid() {
		return &ValidationError{Fields: []FieldError{
			{Field: "negotiation_status", Message: fmt.Sprintf("unknown status %q", status)},
		}}
	}
	// Closing requires the new lease terms and the signed contract, which
	// only CloseNegotiation collects.
	if status == domain.NegotiationStatusClosed {
		return &ValidationError{Fields: []FieldError{
			{Field: "negotiation_status", Message: "use the close endpoint to finish a negotiation"},
		}}
	}

	log := &domain.NegotiationLog{
		TenantID:  tenantID,
		Status:    status,
		Note:      note,
		CreatedBy: actorID,
		CreatedOn: s.now(),
	}
	if err := s.tenantRepo.UpdateNegotiationStatus(ctx, tenantID, status, log); err != nil {
		return err
	}

	logger.Info("Negotiation status updated",
		"tenant_id", tenantID,
		"status", string(status),
		"actor_id", actorID)
	return nil
}

func validateCloseInput(input CloseNegotiationInput) *ValidationError {
	var fields []FieldError
	if input.NewValueCents <= 0 {
		fields = append(fields, FieldError{Field: "new_value_cents", Message: "renewed rent value must be positive"})
	}
	start, errStart := time.Parse("2006-01-02", input.NewStart)
	if errStart != nil {
		fields = append(fields, FieldError{Field: "new_start", Message: "new lease start must be yyyy-mm-dd"})
	}
	end, errEnd := time.Parse("2006-01-02", input.NewEnd)
	if errEnd != nil {
		fields = append(fields, FieldError{Field: "new_end", Message: "new lease end must be yyyy-mm-dd"})
	}
	if errStart == nil && errEnd == nil && !end.After(start) {
		fields = append(fields, FieldError{Field: "new_end", Message: "new lease end must be after the start"})
	}
	if input.ContractDocName == "" {
		fields = append(fields, FieldError{Field: "contract_doc_name", Message: "contract document is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CloseNegotiation replaces the lease terms, stores the signed contract and
// appends a closing log entry as one atomic operation. The new terms always
// win, whatever values the tenant carried before; existing documents and
// logs are never touched, only appended to.
func (s *renewalService) CloseNegotiation(ctx context.Context, tenantID int32, input CloseNegotiationInput) (*domain.Tenant, error) {
	if verr := validateCloseInput(input); verr != nil {
		return nil, verr
	}

	if _, err := s.tenantRepo.GetByID(ctx, tenantID); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		Name:       input.ContractDocName,
		FilePath:   input.ContractFilePath,
		MimeType:   input.ContractMimeType,
		UploadedBy: input.ActorID,
		CreatedOn:  s.now(),
	}
	note := input.Note
	if note == "" {
		note = fmt.Sprintf("Negotiation closed. New lease %s to %s.", input.NewStart, input.NewEnd)
	}
	log := &domain.NegotiationLog{
		TenantID:  tenantID,
		Status:    domain.NegotiationStatusClosed,
		Note:      note,
		CreatedBy: input.ActorID,
		CreatedOn: s.now(),
	}

	tenant, err := s.tenantRepo.CloseNegotiation(ctx, tenantID, input.NewValueCents, input.NewStart, input.NewEnd, doc, log)
	if err != nil {
		return nil, err
	}

	logger.Info("Negotiation closed",
		"tenant_id", tenantID,
		"new_value_cents", input.NewValueCents,
		"new_end", input.NewEnd,
		"actor_id", input.ActorID)
	return tenant, nil
}

func (s *renewalService) GetNegotiationHistory(ctx context.Context, tenantID int32) ([]domain.NegotiationLog, []domain.Document, error) {
	if _, err := s.tenantRepo.GetByID(ctx, tenantID); err != nil {
		return nil, nil, err
	}
	logs, err := s.tenantRepo.ListNegotiationLogs(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	docs, err := s.tenantRepo.ListDocuments(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	return logs, docs, nil
}
