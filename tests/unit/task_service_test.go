package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
	"propdesk-backend/internal/service"
)

func newTaskService(policy service.ReviewPolicy) (service.TaskService, *MockTaskRepo, *MockPropertyRepo, *MockPartnerRepo, *MockSettingsRepo, *MockLedgerRepo, *MockEmailService, *MockNotificationRepo) {
	taskRepo := new(MockTaskRepo)
	propertyRepo := new(MockPropertyRepo)
	partnerRepo := new(MockPartnerRepo)
	settingsRepo := new(MockSettingsRepo)
	ledgerRepo := new(MockLedgerRepo)
	emailSvc := new(MockEmailService)
	noteRepo := new(MockNotificationRepo)
	svc := service.NewTaskService(taskRepo, propertyRepo, partnerRepo, settingsRepo, ledgerRepo, emailSvc, noteRepo, policy)
	return svc, taskRepo, propertyRepo, partnerRepo, settingsRepo, ledgerRepo, emailSvc, noteRepo
}

func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Success with billable snapshot", func(t *testing.T) {
		svc, taskRepo, propertyRepo, partnerRepo, settingsRepo, _, emailSvc, noteRepo := newTaskService(service.ReviewPolicy{})

		settingsRepo.On("GetFinancialSettings", ctx).Return(&domain.FinancialSettings{
			LaborMarginPct:    20,
			MaterialMarginPct: 10,
		}, nil)
		taskRepo.On("Create", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)
		partnerUserID := int32(42)
		partnerRepo.On("GetByID", ctx, int32(5)).Return(&domain.Partner{ID: 5, UserID: &partnerUserID, Name: "CleanCo", Email: "clean@test.com"}, nil)
		propertyRepo.On("GetByID", ctx, int32(7)).Return(&domain.Property{ID: 7, Name: "Sea View"}, nil)
		emailSvc.On("SendTaskAssignmentNotification", ctx, "clean@test.com", "CleanCo", "Deep clean", "Sea View", "2026-09-01").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		task := &domain.Task{
			PropertyID:        7,
			Title:             "Deep clean",
			Type:              domain.TaskTypeCleaning,
			AssigneeID:        5,
			Date:              "2026-09-01",
			LaborCostCents:    10000,
			MaterialCostCents: 5000,
		}
		created, err := svc.CreateTask(ctx, task)
		assert.NoError(t, err)
		assert.NotNil(t, created)
		// 10000*1.20 + 5000*1.10
		assert.Equal(t, int32(17500), created.BillableAmountCents)
		assert.Equal(t, domain.TaskStatusPending, created.Status)
	})

	t.Run("Missing fields rejected field by field", func(t *testing.T) {
		svc, _, _, _, _, _, _, _ := newTaskService(service.ReviewPolicy{})

		_, err := svc.CreateTask(ctx, &domain.Task{})
		assert.Error(t, err)
		verr, ok := err.(*service.ValidationError)
		assert.True(t, ok)

		fields := make(map[string]bool)
		for _, f := range verr.Fields {
			fields[f.Field] = true
		}
		assert.True(t, fields["title"])
		assert.True(t, fields["property_id"])
		assert.True(t, fields["assignee_id"])
		assert.True(t, fields["date"])
	})

	t.Run("Bad date rejected", func(t *testing.T) {
		svc, _, _, _, _, _, _, _ := newTaskService(service.ReviewPolicy{})

		_, err := svc.CreateTask(ctx, &domain.Task{
			PropertyID: 1, Title: "x", AssigneeID: 1, Date: "01/09/2026",
		})
		assert.Error(t, err)
		verr, ok := err.(*service.ValidationError)
		assert.True(t, ok)
		assert.Equal(t, "date", verr.Fields[0].Field)
	})
}

func TestTaskService_UpdateTask_BillableRederivedOnlyOnCostChange(t *testing.T) {
	ctx := context.Background()

	current := &domain.Task{
		ID: 1, PropertyID: 7, Title: "Fix sink", AssigneeID: 5, Date: "2026-09-01",
		Status:              domain.TaskStatusPending,
		LaborCostCents:      10000,
		MaterialCostCents:   5000,
		BillableAmountCents: 17500,
	}

	t.Run("Cost change triggers new snapshot", func(t *testing.T) {
		svc, taskRepo, _, _, settingsRepo, _, _, _ := newTaskService(service.ReviewPolicy{})
		taskRepo.On("GetByID", ctx, int32(1)).Return(current, nil)
		// Margins moved since the task was created.
		settingsRepo.On("GetFinancialSettings", ctx).Return(&domain.FinancialSettings{
			LaborMarginPct:    15,
			MaterialMarginPct: 0,
		}, nil)
		taskRepo.On("Update", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)

		edit := *current
		edit.LaborCostCents = 20000
		edit.MaterialCostCents = 0
		updated, err := svc.UpdateTask(ctx, &edit)
		assert.NoError(t, err)
		assert.Equal(t, int32(23000), updated.BillableAmountCents)
	})

	t.Run("Non-cost edit keeps stored snapshot", func(t *testing.T) {
		svc, taskRepo, _, _, settingsRepo, _, _, _ := newTaskService(service.ReviewPolicy{})
		taskRepo.On("GetByID", ctx, int32(1)).Return(current, nil)
		taskRepo.On("Update", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)

		edit := *current
		edit.Title = "Fix kitchen sink"
		updated, err := svc.UpdateTask(ctx, &edit)
		assert.NoError(t, err)
		assert.Equal(t, int32(17500), updated.BillableAmountCents)
		settingsRepo.AssertNotCalled(t, "GetFinancialSettings", ctx)
	})
}

func TestTaskService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Start moves pending to in_progress", func(t *testing.T) {
		svc, taskRepo, _, _, _, _, _, _ := newTaskService(service.ReviewPolicy{})
		taskRepo.On("GetByID", ctx, int32(1)).Return(&domain.Task{ID: 1, Status: domain.TaskStatusPending}, nil)
		taskRepo.On("Update", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)

		task, err := svc.StartTask(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusInProgress, task.Status)
	})

	t.Run("Start rejects non-pending", func(t *testing.T) {
		svc, taskRepo, _, _, _, _, _, _ := newTaskService(service.ReviewPolicy{})
		taskRepo.On("GetByID", ctx, int32(1)).Return(&domain.Task{ID: 1, Status: domain.TaskStatusCompleted}, nil)

		_, err := svc.StartTask(ctx, 1)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("Review accepts both targets", func(t *testing.T) {
		for _, target := range []domain.TaskStatus{domain.TaskStatusApproved, domain.TaskStatusPendingApproval} {
			svc, taskRepo, _, _, _, _, _, _ := newTaskService(service.ReviewPolicy{})
			taskRepo.On("GetByID", ctx, int32(1)).Return(&domain.Task{ID: 1, Status: domain.TaskStatusInProgress}, nil)
			taskRepo.On("Update", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)

			task, err := svc.ReviewTask(ctx, 1, target)
			assert.NoError(t, err)
			assert.Equal(t, target, task.Status)
		}
	})

	t.Run("Review rejects other targets", func(t *testing.T) {
		svc, taskRepo, _, _, _, _, _, _ := newTaskService(service.ReviewPolicy{})
		taskRepo.On("GetByID", ctx, int32(1)).Return(&domain.Task{ID: 1, Status: domain.TaskStatusInProgress}, nil)

		_, err := svc.ReviewTask(ctx, 1, domain.TaskStatusCompleted)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("Review threshold forces pending_approval", func(t *testing.T) {
		svc, taskRepo, _, _, _, _, _, _ := newTaskService(service.ReviewPolicy{ApprovalThresholdCents: 10000})
		taskRepo.On("GetByID", ctx, int32(1)).Return(&domain.Task{
			ID: 1, Status: domain.TaskStatusInProgress, BillableAmountCents: 15000,
		}, nil)
		taskRepo.On("Update", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)

		_, err := svc.ReviewTask(ctx, 1, domain.TaskStatusApproved)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)

		task, err := svc.ReviewTask(ctx, 1, domain.TaskStatusPendingApproval)
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusPendingApproval, task.Status)
	})

	t.Run("Complete posts ledger entries", func(t *testing.T) {
		svc, taskRepo, _, partnerRepo, _, ledgerRepo, emailSvc, _ := newTaskService(service.ReviewPolicy{})
		taskRepo.On("GetByID", ctx, int32(1)).Return(&domain.Task{
			ID: 1, PropertyID: 7, Title: "Deep clean", AssigneeID: 5,
			Status:              domain.TaskStatusApproved,
			LaborCostCents:      10000,
			MaterialCostCents:   5000,
			BillableAmountCents: 17500,
		}, nil)
		taskRepo.On("Update", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)
		ledgerRepo.On("CreateEntry", ctx, mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e.Type == domain.EntryTypeTaskBilling && e.AmountCents == 17500
		})).Return(nil)
		ledgerRepo.On("CreateEntry", ctx, mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e.Type == domain.EntryTypePartnerPayout && e.AmountCents == -15000
		})).Return(nil)
		partnerRepo.On("GetByID", ctx, int32(5)).Return(&domain.Partner{ID: 5, Email: "clean@test.com"}, nil)
		emailSvc.On("SendTaskCompletionNotification", ctx, "clean@test.com", "Deep clean", int32(17500)).Return(nil)

		task, err := svc.CompleteTask(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCompleted, task.Status)
		assert.NotNil(t, task.CompletedOn)
		ledgerRepo.AssertNumberOfCalls(t, "CreateEntry", 2)
	})

	t.Run("Complete rejects pending and in_progress", func(t *testing.T) {
		for _, status := range []domain.TaskStatus{domain.TaskStatusPending, domain.TaskStatusInProgress} {
			svc, taskRepo, _, _, _, _, _, _ := newTaskService(service.ReviewPolicy{})
			taskRepo.On("GetByID", ctx, int32(1)).Return(&domain.Task{ID: 1, Status: status}, nil)

			_, err := svc.CompleteTask(ctx, 1)
			assert.ErrorIs(t, err, service.ErrInvalidTransition)
		}
	})
}

func TestTaskService_ListTasks_PartnerScoping(t *testing.T) {
	ctx := context.Background()

	t.Run("Partner account is pinned to its own company", func(t *testing.T) {
		svc, taskRepo, _, partnerRepo, _, _, _, _ := newTaskService(service.ReviewPolicy{})

		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(&domain.Partner{ID: 5, Name: "CleanCo"}, nil)
		taskRepo.On("List", ctx, int32(0), int32(5), "", int32(1), int32(20)).
			Return([]domain.Task{{ID: 1, AssigneeID: 5}}, int32(1), nil)

		user := &domain.User{ID: 42, Role: domain.UserRolePartner}
		// The request asked for another assignee; the scope wins.
		tasks, total, err := svc.ListTasks(ctx, user, 0, 99, "", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, tasks, 1)
		taskRepo.AssertExpectations(t)
	})

	t.Run("Employee account resolves the company through its parent", func(t *testing.T) {
		svc, taskRepo, _, partnerRepo, _, _, _, _ := newTaskService(service.ReviewPolicy{})

		companyUserID := int32(7)
		partnerRepo.On("GetByUserID", ctx, companyUserID).Return(&domain.Partner{ID: 5, UserID: &companyUserID, Name: "CleanCo"}, nil)
		taskRepo.On("List", ctx, int32(0), int32(5), "", int32(1), int32(20)).
			Return([]domain.Task{{ID: 2, AssigneeID: 5}}, int32(1), nil)

		user := &domain.User{ID: 42, Role: domain.UserRolePartnerEmployee, ParentID: &companyUserID}
		tasks, total, err := svc.ListTasks(ctx, user, 0, 0, "", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, tasks, 1)
		taskRepo.AssertExpectations(t)
	})

	t.Run("Partner account with no company sees nothing", func(t *testing.T) {
		svc, taskRepo, _, partnerRepo, _, _, _, _ := newTaskService(service.ReviewPolicy{})

		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(nil, repository.ErrNotFound)

		user := &domain.User{ID: 42, Role: domain.UserRolePartner}
		tasks, total, err := svc.ListTasks(ctx, user, 0, 0, "", 1, 20)
		assert.NoError(t, err)
		assert.Empty(t, tasks)
		assert.Equal(t, int32(0), total)
		taskRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Employee account with no parent sees nothing", func(t *testing.T) {
		svc, taskRepo, _, partnerRepo, _, _, _, _ := newTaskService(service.ReviewPolicy{})

		user := &domain.User{ID: 42, Role: domain.UserRolePartnerEmployee}
		tasks, total, err := svc.ListTasks(ctx, user, 0, 0, "", 1, 20)
		assert.NoError(t, err)
		assert.Empty(t, tasks)
		assert.Equal(t, int32(0), total)
		partnerRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
		taskRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Staff roles keep the requested filters", func(t *testing.T) {
		svc, taskRepo, _, partnerRepo, _, _, _, _ := newTaskService(service.ReviewPolicy{})

		taskRepo.On("List", ctx, int32(7), int32(0), "pending", int32(1), int32(20)).
			Return([]domain.Task{}, int32(0), nil)

		user := &domain.User{ID: 1, Role: domain.UserRoleInternalUser}
		_, _, err := svc.ListTasks(ctx, user, 7, 0, "pending", 1, 20)
		assert.NoError(t, err)
		partnerRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})
}

func TestTaskService_AttachImage(t *testing.T) {
	ctx := context.Background()
	svc, taskRepo, _, _, _, _, _, _ := newTaskService(service.ReviewPolicy{})
	taskRepo.On("GetByID", ctx, int32(1)).Return(&domain.Task{ID: 1, Status: domain.TaskStatusCompleted}, nil)
	taskRepo.On("AddImage", ctx, mock.AnythingOfType("*domain.TaskImage")).Return(nil)

	img, err := svc.AttachImage(ctx, 1, 9, "before.jpg", "image/jpeg")
	assert.NoError(t, err)
	assert.NotEmpty(t, img.ID)
	assert.Equal(t, int32(1), img.TaskID)
	assert.Equal(t, int32(9), img.UploadedBy)
}
