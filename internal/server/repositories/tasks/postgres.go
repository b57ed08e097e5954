// Package tasks provides the PostgreSQL-backed repository for task records.
// All queries filter on user_id, so a caller can only ever see or change
// its own rows; a miss on a foreign row is indistinguishable from a miss
// on a nonexistent one.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskify/internal/common"
	"github.com/dmitrijs2005/taskify/internal/dbx"
	"github.com/dmitrijs2005/taskify/internal/server/models"
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

	query :=
		`INSERT INTO tasks (id, user_id, title, description, category)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, task.Category).Scan(&task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// ListByOwner returns the user's tasks newest first. An empty category
// returns all of them.
func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string, category string) ([]*models.Task, error) {
	query :=
		`SELECT id, user_id, title, description, category, is_done, created_at FROM tasks
		 WHERE user_id = $1 AND ($2 = '' OR category = $2)
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, category)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Task{}
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Description,
			&item.Category, &item.Done, &item.CreatedAt,
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

// Update applies the non-nil patch fields to the user's task. COALESCE keeps
// the stored value where the patch passes NULL. Returns common.ErrorNotFound
// when no row matches both id and owner.
func (r *PostgresRepository) Update(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error) {
	query :=
		`UPDATE tasks SET
		   title = COALESCE($3, title),
		   description = COALESCE($4, description),
		   category = COALESCE($5, category),
		   is_done = COALESCE($6, is_done)
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, description, category, is_done, created_at
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query,
		taskID, userID, patch.Title, patch.Description, patch.Category, patch.Done).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Category, &task.Done, &task.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Delete removes the user's task. Returns common.ErrorNotFound when no row
// matches both id and owner.
func (r *PostgresRepository) Delete(ctx context.Context, userID, taskID string) error {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
