package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskify/internal/common"
	"github.com/dmitrijs2005/taskify/internal/server/models"
	"github.com/dmitrijs2005/taskify/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TaskService implements task CRUD. Every operation takes the caller's
// verified user id and passes it down to the owner-scoped repository, so a
// task belonging to someone else behaves exactly like a missing one.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{
		db:          db,
		repomanager: m,
	}
}

// List returns the user's tasks newest first, optionally restricted to one
// category. An empty category means all.
func (s *TaskService) List(ctx context.Context, userID string, category string) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	items, err := repo.ListByOwner(ctx, userID, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	return items, nil
}

// Create stores a new task owned by userID. The title is required; an
// omitted category falls back to models.DefaultCategory, but any other
// label is stored as given (clients constrain the choices, the API does
// not).
func (s *TaskService) Create(ctx context.Context, userID, title, description, category string) (*models.Task, error) {

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = models.DefaultCategory
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Category:    category,
	}

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

// Update applies the supplied fields to the user's task; unset fields keep
// their stored value and the owner is never touched. Returns
// common.ErrorNotFound whether the task is missing or owned by someone else.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error) {

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", common.ErrValidation)
	}

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Update(ctx, userID, taskID, patch)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes the user's task, with the same ownership-blind NotFound
// semantics as Update.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	repo := s.repomanager.Tasks(s.db)
	return repo.Delete(ctx, userID, taskID)
}
