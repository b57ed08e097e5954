package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskify/internal/server/models"
)

// Repository is owner-scoped by construction: every read and write takes
// the owning user id, and a row belonging to another user is never
// returned or touched.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByOwner(ctx context.Context, userID string, category string) ([]*models.Task, error)
	Update(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}
