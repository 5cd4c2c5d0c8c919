package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending         TaskStatus = "pending"
	TaskStatusInProgress      TaskStatus = "in_progress"
	TaskStatusApproved        TaskStatus = "approved"
	TaskStatusPendingApproval TaskStatus = "pending_approval"
	TaskStatusCompleted       TaskStatus = "completed"
)

type TaskType string

const (
	TaskTypeCleaning    TaskType = "cleaning"
	TaskTypeMaintenance TaskType = "maintenance"
	TaskTypeInspection  TaskType = "inspection"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type TaskRecurrence string

const (
	TaskRecurrenceNone    TaskRecurrence = "none"
	TaskRecurrenceWeekly  TaskRecurrence = "weekly"
	TaskRecurrenceMonthly TaskRecurrence = "monthly"
)

type Task struct {
	ID                int32          `json:"id"`
	PropertyID        int32          `json:"property_id"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Type              TaskType       `json:"type"`
	AssigneeID        int32          `json:"assignee_id"` // partner company
	PartnerEmployeeID *int32         `json:"partner_employee_id,omitempty"`
	Status            TaskStatus     `json:"status"`
	Priority          TaskPriority   `json:"priority"`
	Date              string         `json:"date"` // yyyy-mm-dd
	// Cost snapshot fields. BillableAmountCents is derived from the labor and
	// material costs plus the margins in effect at the time those fields were
	// last edited; changing global margins later does not rewrite it.
	LaborCostCents        int32          `json:"labor_cost_cents"`
	MaterialCostCents     int32          `json:"material_cost_cents"`
	TeamMemberPayoutCents *int32         `json:"team_member_payout_cents,omitempty"`
	BillableAmountCents   int32          `json:"billable_amount_cents"`
	Recurrence            TaskRecurrence `json:"recurrence"`
	CompletedOn           *string        `json:"completed_on,omitempty"`
	CreatedOn             string         `json:"created_on"`
	UpdatedOn             string         `json:"updated_on"`
}

// TaskImage is evidence attached to a task. The list is append-only and
// accumulates regardless of status.
type TaskImage struct {
	ID         string    `json:"id"`
	TaskID     int32     `json:"task_id"`
	FileName   string    `json:"file_name"`
	FilePath   string    `json:"file_path"`
	MimeType   string    `json:"mime_type"`
	UploadedBy int32     `json:"uploaded_by"`
	CreatedOn  time.Time `json:"created_on"`
}
