package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/logger"
	"propdesk-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, phone_number, password_hash, name, avatar_url, role, status, mirror_admin, allowed_profile_types, parent_id, blocked_on, blocked_reason, created_on, updated_on`

func (r *userRepository) scanUser(row interface {
	Scan(dest ...interface{}) error
}) (*domain.User, error) {
	u := &domain.User{}
	var profileTypes pq.StringArray
	err := row.Scan(&u.ID, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.Name, &u.AvatarURL,
		&u.Role, &u.Status, &u.MirrorAdmin, &profileTypes, &u.ParentID,
		&u.BlockedOn, &u.BlockedReason, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	for _, pt := range profileTypes {
		u.AllowedProfileTypes = append(u.AllowedProfileTypes, domain.ProfileType(pt))
	}
	return u, nil
}

func profileTypesToStrings(types []domain.ProfileType) pq.StringArray {
	out := make(pq.StringArray, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, phone_number, password_hash, name, avatar_url, role, status, mirror_admin, allowed_profile_types, parent_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, u.Email, u.PhoneNumber, u.PasswordHash, u.Name, u.AvatarURL,
		u.Role, u.Status, u.MirrorAdmin, profileTypesToStrings(u.AllowedProfileTypes), u.ParentID, now, now).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	grants, err := r.GetPermissions(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Permissions = grants
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, err
	}
	grants, err := r.GetPermissions(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Permissions = grants
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, phone_number=$2, name=$3, avatar_url=$4, role=$5, status=$6, mirror_admin=$7, allowed_profile_types=$8, parent_id=$9, blocked_on=$10, blocked_reason=$11, updated_on=$12 WHERE id=$13`
	_, err := r.db.ExecContext(ctx, query, u.Email, u.PhoneNumber, u.Name, u.AvatarURL, u.Role, u.Status,
		u.MirrorAdmin, profileTypesToStrings(u.AllowedProfileTypes), u.ParentID, u.BlockedOn, u.BlockedReason,
		time.Now().Format("2006-01-02"), u.ID)
	return err
}

func (r *userRepository) List(ctx context.Context, role string, page, pageSize int32) ([]domain.User, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + userColumns + ` FROM users`
	args := []interface{}{}
	argIdx := 1
	if role != "" {
		query += fmt.Sprintf(" WHERE role = $%d", argIdx)
		args = append(args, role)
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

	var users []domain.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, count, rows.Err()
}

func (r *userRepository) Search(ctx context.Context, search string) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE name ILIKE $1 OR email ILIKE $1 ORDER BY name ASC LIMIT 50`
	logger.DatabaseCall("SELECT", "users", "search", search)
	rows, err := r.db.QueryContext(ctx, query, "%"+search+"%")
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "search", search)
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			logger.DatabaseResult("SELECT", int64(len(users)), err, "search", search)
			return nil, err
		}
		users = append(users, *u)
	}
	logger.DatabaseResult("SELECT", int64(len(users)), nil, "search", search)
	return users, rows.Err()
}

func (r *userRepository) GetPermissions(ctx context.Context, userID int32) ([]domain.PermissionGrant, error) {
	query := `SELECT resource, actions FROM user_permissions WHERE user_id = $1 ORDER BY resource`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []domain.PermissionGrant
	for rows.Next() {
		var resource string
		var actions pq.StringArray
		if err := rows.Scan(&resource, &actions); err != nil {
			return nil, err
		}
		g := domain.PermissionGrant{Resource: domain.Resource(resource)}
		for _, a := range actions {
			g.Actions = append(g.Actions, domain.Action(a))
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}

// SetPermissions replaces all grants for the user in one transaction. The
// primary key (user_id, resource) keeps one entry per resource.
func (r *userRepository) SetPermissions(ctx context.Context, userID int32, grants []domain.PermissionGrant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_permissions WHERE user_id = $1`, userID); err != nil {
		return err
	}

	for _, g := range grants {
		actions := make(pq.StringArray, 0, len(g.Actions))
		for _, a := range g.Actions {
			actions = append(actions, string(a))
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO user_permissions (user_id, resource, actions) VALUES ($1, $2, $3)`,
			userID, string(g.Resource), actions)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
