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

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, property_id, title, description, type, assignee_id, partner_employee_id, status, priority, date, labor_cost_cents, material_cost_cents, team_member_payout_cents, billable_amount_cents, recurrence, completed_on, created_on, updated_on`

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	t := &domain.Task{}
	err := row.Scan(&t.ID, &t.PropertyID, &t.Title, &t.Description, &t.Type, &t.AssigneeID,
		&t.PartnerEmployeeID, &t.Status, &t.Priority, &t.Date, &t.LaborCostCents,
		&t.MaterialCostCents, &t.TeamMemberPayoutCents, &t.BillableAmountCents,
		&t.Recurrence, &t.CompletedOn, &t.CreatedOn, &t.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (property_id, title, description, type, assignee_id, partner_employee_id, status, priority, date, labor_cost_cents, material_cost_cents, team_member_payout_cents, billable_amount_cents, recurrence, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, t.PropertyID, t.Title, t.Description, t.Type,
		t.AssigneeID, t.PartnerEmployeeID, t.Status, t.Priority, t.Date, t.LaborCostCents,
		t.MaterialCostCents, t.TeamMemberPayoutCents, t.BillableAmountCents, t.Recurrence, now, now).Scan(&t.ID)
}

func (r *taskRepository) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	return scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *taskRepository) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET property_id=$1, title=$2, description=$3, type=$4, assignee_id=$5, partner_employee_id=$6, status=$7, priority=$8, date=$9, labor_cost_cents=$10, material_cost_cents=$11, team_member_payout_cents=$12, billable_amount_cents=$13, recurrence=$14, completed_on=$15, updated_on=$16 WHERE id=$17`
	_, err := r.db.ExecContext(ctx, query, t.PropertyID, t.Title, t.Description, t.Type,
		t.AssigneeID, t.PartnerEmployeeID, t.Status, t.Priority, t.Date, t.LaborCostCents,
		t.MaterialCostCents, t.TeamMemberPayoutCents, t.BillableAmountCents, t.Recurrence,
		t.CompletedOn, time.Now().Format("2006-01-02"), t.ID)
	return err
}

func (r *taskRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func (r *taskRepository) List(ctx context.Context, propertyID, assigneeID int32, status string, page, pageSize int32) ([]domain.Task, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if propertyID != 0 {
		query += fmt.Sprintf(" AND property_id = $%d", argIdx)
		args = append(args, propertyID)
		argIdx++
	}
	if assigneeID != 0 {
		query += fmt.Sprintf(" AND assignee_id = $%d", argIdx)
		args = append(args, assigneeID)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY date ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, count, rows.Err()
}

// ListRecurringCompleted finds completed recurring tasks whose date has
// passed, so the recurring-task job can materialize the next occurrence.
func (r *taskRepository) ListRecurringCompleted(ctx context.Context, asOfDate string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
	          WHERE recurrence <> 'none' AND status = 'completed' AND date <= $1
	            AND NOT EXISTS (
	              SELECT 1 FROM tasks next
	              WHERE next.property_id = tasks.property_id
	                AND next.title = tasks.title
	                AND next.recurrence = tasks.recurrence
	                AND next.date > tasks.date
	            )`
	rows, err := r.db.QueryContext(ctx, query, asOfDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) AddImage(ctx context.Context, img *domain.TaskImage) error {
	query := `INSERT INTO task_images (id, task_id, file_name, file_path, mime_type, uploaded_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, img.ID, img.TaskID, img.FileName, img.FilePath, img.MimeType, img.UploadedBy, time.Now())
	return err
}

func (r *taskRepository) ListImages(ctx context.Context, taskID int32) ([]domain.TaskImage, error) {
	query := `SELECT id, task_id, file_name, file_path, mime_type, uploaded_by, created_on FROM task_images WHERE task_id = $1 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.TaskImage
	for rows.Next() {
		var img domain.TaskImage
		if err := rows.Scan(&img.ID, &img.TaskID, &img.FileName, &img.FilePath, &img.MimeType, &img.UploadedBy, &img.CreatedOn); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
