// Package tasks provides the PostgreSQL-backed repository for per-owner task
// persistence. The owner id is part of every WHERE clause, so ownership is
// enforced by the query itself rather than checked by callers.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskdeck/internal/common"
	"taskdeck/internal/dbx"
	"taskdeck/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := `
		INSERT INTO tasks (id, owner_id, title, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.OwnerID, task.Title, task.Description, task.Status).
		Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

// ListByOwner returns the owner's tasks, oldest first. The result is an empty
// slice (not nil) when the owner has no tasks.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error) {
	query := `
		SELECT id, owner_id, title, description, status, created_at, updated_at FROM tasks
		WHERE owner_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Task{}
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(
			&item.ID, &item.OwnerID, &item.Title, &item.Description, &item.Status,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, ownerID string, taskID string) (*models.Task, error) {
	query := `
		SELECT id, owner_id, title, description, status, created_at, updated_at FROM tasks
		WHERE id = $1 AND owner_id = $2
	`
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, taskID, ownerID).Scan(
		&task.ID, &task.OwnerID, &task.Title, &task.Description, &task.Status,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

// Update rewrites the mutable fields of the task identified by task.ID and
// task.OwnerID. A row owned by someone else matches nothing and returns
// common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := `
		UPDATE tasks SET title = $1, description = $2, status = $3, updated_at = now()
		WHERE id = $4 AND owner_id = $5
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Status, task.ID, task.OwnerID).
		Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID string, taskID string) error {
	query := `
		DELETE FROM tasks
		WHERE id = $1 AND owner_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
