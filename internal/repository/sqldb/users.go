package sqldb

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
)

// CreateUser inserts a user and returns the stored row
func (r *SQLRepository) CreateUser(ctx context.Context, email string, name *string) (*User, error) {
	query := `INSERT INTO users (email, name) VALUES (?, ?) RETURNING id, email, name`
	return ScanUser(r.db.QueryRowContext(ctx, r.rebind(query), email, name))
}

// GetUserByID returns the user, or nil without error when no row matches
func (r *SQLRepository) GetUserByID(ctx context.Context, id int64) (*User, error) {
	query := `SELECT id, email, name FROM users WHERE id = ?`
	user, err := ScanUser(r.db.QueryRowContext(ctx, r.rebind(query), id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

// ListUsers returns every user ordered by id
func (r *SQLRepository) ListUsers(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, email, name FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAll(rows, ScanUser)
}

// UpdateUser changes the supplied columns and returns the stored row
func (r *SQLRepository) UpdateUser(ctx context.Context, id int64, patch UserPatch) (*User, error) {
	var (
		sets []string
		args []interface{}
	)
	if patch.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if len(sets) == 0 {
		return r.requireUser(ctx, id)
	}

	query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ? RETURNING id, email, name"
	args = append(args, id)
	user, err := ScanUser(r.db.QueryRowContext(ctx, r.rebind(query), args...))
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return user, nil
}

// DeleteUser removes a user; posts written by it lose their author
func (r *SQLRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "users", id)
}

func (r *SQLRepository) requireUser(ctx context.Context, id int64) (*User, error) {
	user, err := r.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, sql.ErrNoRows)
	}
	return user, nil
}

// deleteByID deletes one row from table, reporting sql.ErrNoRows when absent
func (r *SQLRepository) deleteByID(ctx context.Context, table string, id int64) error {
	result, err := r.db.ExecContext(ctx, r.rebind("DELETE FROM "+table+" WHERE id = ?"), id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("delete from %s id %d: %w", table, id, sql.ErrNoRows)
	}
	return nil
}
