package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
	"propdesk-backend/internal/utils"
)

var ErrInvalidTransition = errors.New("invalid task status transition")

// ReviewPolicy decides which pre-completion review state a task must take.
// It is configuration supplied by the caller, not a hardcoded rule: with a
// zero threshold both review states are free caller choices.
type ReviewPolicy struct {
	// Tasks whose billable amount reaches the threshold must go through
	// pending_approval rather than approved.
	ApprovalThresholdCents int32
}

type taskService struct {
	taskRepo     repository.TaskRepository
	propertyRepo repository.PropertyRepository
	partnerRepo  repository.PartnerRepository
	settingsRepo repository.SettingsRepository
	ledgerRepo   repository.LedgerRepository
	emailSvc     EmailService
	noteRepo     repository.NotificationRepository
	policy       ReviewPolicy
}

func NewTaskService(
	taskRepo repository.TaskRepository,
	propertyRepo repository.PropertyRepository,
	partnerRepo repository.PartnerRepository,
	settingsRepo repository.SettingsRepository,
	ledgerRepo repository.LedgerRepository,
	emailSvc EmailService,
	noteRepo repository.NotificationRepository,
	policy ReviewPolicy,
) TaskService {
	return &taskService{
		taskRepo:     taskRepo,
		propertyRepo: propertyRepo,
		partnerRepo:  partnerRepo,
		settingsRepo: settingsRepo,
		ledgerRepo:   ledgerRepo,
		emailSvc:     emailSvc,
		noteRepo:     noteRepo,
		policy:       policy,
	}
}

func validateTask(t *domain.Task) *ValidationError {
	var fields []FieldError
	if t.Title == "" {
		fields = append(fields, FieldError{Field: "title", Message: "title is required"})
	}
	if t.PropertyID == 0 {
		fields = append(fields, FieldError{Field: "property_id", Message: "property is required"})
	}
	if t.AssigneeID == 0 {
		fields = append(fields, FieldError{Field: "assignee_id", Message: "assignee is required"})
	}
	if t.Date == "" {
		fields = append(fields, FieldError{Field: "date", Message: "date is required"})
	} else if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		fields = append(fields, FieldError{Field: "date", Message: "date must be yyyy-mm-dd"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// deriveBillable snapshots the billable amount from the current financial
// settings. Runs on create and whenever a cost field is edited; the stored
// amount is plain state afterwards.
func (s *taskService) deriveBillable(ctx context.Context, t *domain.Task) error {
	settings, err := s.settingsRepo.GetFinancialSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load financial settings: %w", err)
	}
	t.BillableAmountCents = utils.DeriveBillableCents(
		t.LaborCostCents, t.MaterialCostCents,
		settings.LaborMarginPct, settings.MaterialMarginPct)
	return nil
}

func (s *taskService) CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if verr := validateTask(t); verr != nil {
		return nil, verr
	}

	if t.Status == "" {
		t.Status = domain.TaskStatusPending
	}
	if t.Priority == "" {
		t.Priority = domain.TaskPriorityMedium
	}
	if t.Recurrence == "" {
		t.Recurrence = domain.TaskRecurrenceNone
	}

	if err := s.deriveBillable(ctx, t); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	// Notify the assigned partner
	partner, _ := s.partnerRepo.GetByID(ctx, t.AssigneeID)
	property, _ := s.propertyRepo.GetByID(ctx, t.PropertyID)
	if partner != nil && property != nil {
		_ = s.emailSvc.SendTaskAssignmentNotification(ctx, partner.Email, partner.Name, t.Title, property.Name, t.Date)
		if partner.UserID != nil {
			notif := &domain.Notification{
				UserID:  *partner.UserID,
				Title:   "New Task Assigned",
				Message: fmt.Sprintf("%s at %s on %s", t.Title, property.Name, t.Date),
				Attributes: map[string]string{
					"type":    "TASK_ASSIGNED",
					"task_id": fmt.Sprintf("%d", t.ID),
				},
			}
			_ = s.noteRepo.Create(ctx, notif)
		}
	}

	return t, nil
}

func (s *taskService) GetTask(ctx context.Context, id int32) (*domain.Task, []domain.TaskImage, error) {
	t, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	images, err := s.taskRepo.ListImages(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return t, images, nil
}

// UpdateTask saves field edits. The billable amount is re-derived only when
// a cost field actually changed; otherwise the stored snapshot stands even
// if margins moved since the last save.
func (s *taskService) UpdateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if verr := validateTask(t); verr != nil {
		return nil, verr
	}

	current, err := s.taskRepo.GetByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	if t.LaborCostCents != current.LaborCostCents || t.MaterialCostCents != current.MaterialCostCents {
		if err := s.deriveBillable(ctx, t); err != nil {
			return nil, err
		}
	} else {
		t.BillableAmountCents = current.BillableAmountCents
	}

	// Status is owned by the transition methods, not the edit form.
	t.Status = current.Status
	t.CompletedOn = current.CompletedOn

	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int32) error {
	if _, err := s.taskRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, id)
}

func (s *taskService) ListTasks(ctx context.Context, user *domain.User, propertyID, assigneeID int32, status string, page, pageSize int32) ([]domain.Task, int32, error) {
	// Partner portal accounts only ever see their own company's tasks,
	// whatever filter the request carried. The partners table links the
	// company's primary account directly; employees reach it through
	// ParentID.
	if user != nil && (user.Role == domain.UserRolePartner || user.Role == domain.UserRolePartnerEmployee) {
		companyUserID := user.ID
		if user.Role == domain.UserRolePartnerEmployee {
			if user.ParentID == nil {
				return []domain.Task{}, 0, nil
			}
			companyUserID = *user.ParentID
		}
		partner, err := s.partnerRepo.GetByUserID(ctx, companyUserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return []domain.Task{}, 0, nil
			}
			return nil, 0, err
		}
		assigneeID = partner.ID
	}
	return s.taskRepo.List(ctx, propertyID, assigneeID, status, page, pageSize)
}

func (s *taskService) StartTask(ctx context.Context, taskID int32) (*domain.Task, error) {
	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t.Status != domain.TaskStatusPending {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, domain.TaskStatusInProgress)
	}

	t.Status = domain.TaskStatusInProgress
	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ReviewTask moves an in-progress task into one of the two pre-completion
// review states. The two are mutually exclusive and caller-selected, except
// where the review policy forces sign-off.
func (s *taskService) ReviewTask(ctx context.Context, taskID int32, target domain.TaskStatus) (*domain.Task, error) {
	if target != domain.TaskStatusApproved && target != domain.TaskStatusPendingApproval {
		return nil, fmt.Errorf("%w: review target must be approved or pending_approval", ErrInvalidTransition)
	}

	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t.Status != domain.TaskStatusInProgress {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, target)
	}

	if target == domain.TaskStatusApproved &&
		s.policy.ApprovalThresholdCents > 0 &&
		t.BillableAmountCents >= s.policy.ApprovalThresholdCents {
		return nil, fmt.Errorf("%w: billable amount requires sign-off via pending_approval", ErrInvalidTransition)
	}

	t.Status = target
	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// CompleteTask is terminal. Completion posts the billable amount as income
// and the partner payout as an expense, which is what makes the task
// eligible for invoicing and for partner-portal revenue aggregation.
func (s *taskService) CompleteTask(ctx context.Context, taskID int32) (*domain.Task, error) {
	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t.Status != domain.TaskStatusApproved && t.Status != domain.TaskStatusPendingApproval {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, domain.TaskStatusCompleted)
	}

	now := time.Now().Format("2006-01-02")
	t.Status = domain.TaskStatusCompleted
	t.CompletedOn = &now
	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	income := &domain.LedgerEntry{
		PropertyID:  &t.PropertyID,
		TaskID:      &t.ID,
		AmountCents: t.BillableAmountCents,
		Type:        domain.EntryTypeTaskBilling,
		Description: fmt.Sprintf("Billing for task %q", t.Title),
		EntryDate:   now,
	}
	if err := s.ledgerRepo.CreateEntry(ctx, income); err != nil {
		return nil, err
	}

	payout := t.LaborCostCents + t.MaterialCostCents
	if payout > 0 {
		expense := &domain.LedgerEntry{
			PropertyID:  &t.PropertyID,
			TaskID:      &t.ID,
			AmountCents: -payout,
			Type:        domain.EntryTypePartnerPayout,
			Description: fmt.Sprintf("Partner payout for task %q", t.Title),
			EntryDate:   now,
		}
		if err := s.ledgerRepo.CreateEntry(ctx, expense); err != nil {
			return nil, err
		}
	}

	partner, _ := s.partnerRepo.GetByID(ctx, t.AssigneeID)
	if partner != nil {
		_ = s.emailSvc.SendTaskCompletionNotification(ctx, partner.Email, t.Title, t.BillableAmountCents)
	}

	return t, nil
}

// AttachImage appends evidence to a task. The list is append-only and valid
// in every status.
func (s *taskService) AttachImage(ctx context.Context, taskID, uploadedBy int32, fileName, mimeType string) (*domain.TaskImage, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	img := &domain.TaskImage{
		ID:         uuid.New().String(),
		TaskID:     taskID,
		FileName:   fileName,
		FilePath:   fmt.Sprintf("tasks/%d/%s", taskID, fileName),
		MimeType:   mimeType,
		UploadedBy: uploadedBy,
		CreatedOn:  time.Now(),
	}
	if err := s.taskRepo.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}
