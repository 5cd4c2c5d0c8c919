package jobs

import (
	"context"
	"fmt"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/logger"
)

type overdueTask struct {
	ID         int32
	PropertyID int32
	AssigneeID int32
	Title      string
	Date       string
}

// MarkOverdueTasks raises the priority of open tasks whose scheduled date has
// passed, so they float to the top of the board, and drops a notification on
// the assigned partner's portal account.
func (jr *JobRunner) MarkOverdueTasks() {
	jr.runWithRecovery("MarkOverdueTasks", func() {
		ctx := context.Background()

		query := `
			UPDATE tasks
			SET priority = 'high',
			    updated_on = NOW()
			WHERE status IN ('pending', 'in_progress')
			  AND priority <> 'high'
			  AND date < $1
			RETURNING id, property_id, assignee_id, title, date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to mark overdue tasks", "error", err)
			return
		}
		defer rows.Close()

		var escalated []overdueTask
		for rows.Next() {
			var t overdueTask
			if err := rows.Scan(&t.ID, &t.PropertyID, &t.AssigneeID, &t.Title, &t.Date); err != nil {
				logger.Error("Failed to scan overdue task", "error", err)
				continue
			}
			escalated = append(escalated, t)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue tasks", "error", err)
			return
		}

		notified := 0
		for _, t := range escalated {
			partner, err := jr.store.PartnerRepository.GetByID(ctx, t.AssigneeID)
			if err != nil || partner.UserID == nil {
				continue
			}
			notif := &domain.Notification{
				UserID:  *partner.UserID,
				Title:   "Task Overdue",
				Message: fmt.Sprintf("%s was due on %s", t.Title, t.Date),
				Attributes: map[string]string{
					"type":    "TASK_OVERDUE",
					"task_id": fmt.Sprintf("%d", t.ID),
				},
			}
			if err := jr.store.NotificationRepository.Create(ctx, notif); err != nil {
				logger.Error("Failed to notify overdue task", "task_id", t.ID, "error", err)
				continue
			}
			notified++
		}

		logger.Info("Escalated overdue tasks", "count", len(escalated), "notified", notified)
	})
}

func nextOccurrence(date string, recurrence domain.TaskRecurrence) (string, bool) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", false
	}
	switch recurrence {
	case domain.TaskRecurrenceWeekly:
		return d.AddDate(0, 0, 7).Format("2006-01-02"), true
	case domain.TaskRecurrenceMonthly:
		return d.AddDate(0, 1, 0).Format("2006-01-02"), true
	}
	return "", false
}

// MaterializeRecurringTasks creates the next occurrence for every recurring
// task completed since the last run. The new task starts over as pending
// with costs carried forward; the billable amount is re-derived at creation
// time so margin changes apply to the new occurrence.
func (jr *JobRunner) MaterializeRecurringTasks() {
	jr.runWithRecovery("MaterializeRecurringTasks", func() {
		ctx := context.Background()

		completed, err := jr.store.TaskRepository.ListRecurringCompleted(ctx, time.Now().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to list completed recurring tasks", "error", err)
			return
		}

		created := 0
		for _, t := range completed {
			date, ok := nextOccurrence(t.Date, t.Recurrence)
			if !ok {
				logger.Warn("Skipping recurring task with bad date",
					"task_id", t.ID, "date", t.Date)
				continue
			}

			next := &domain.Task{
				PropertyID:        t.PropertyID,
				Title:             t.Title,
				Description:       t.Description,
				Type:              t.Type,
				AssigneeID:        t.AssigneeID,
				PartnerEmployeeID: t.PartnerEmployeeID,
				Priority:          t.Priority,
				Date:              date,
				LaborCostCents:    t.LaborCostCents,
				MaterialCostCents: t.MaterialCostCents,
				Recurrence:        t.Recurrence,
			}
			if _, err := jr.services.Task.CreateTask(ctx, next); err != nil {
				logger.Error("Failed to materialize recurring task",
					"source_task_id", t.ID, "error", err)
				continue
			}
			created++
		}

		logger.Info("Materialized recurring tasks", "completed", len(completed), "created", created)
	})
}
