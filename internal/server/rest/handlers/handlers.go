// Package handlers registers the REST routes and implements one handler
// constructor per operation.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskify/internal/common"
	"github.com/dmitrijs2005/taskify/internal/logging"
	"github.com/dmitrijs2005/taskify/internal/server/models"
	"github.com/dmitrijs2005/taskify/internal/server/rest"
	"github.com/dmitrijs2005/taskify/internal/server/rest/middleware"
)

// UserService is the account surface the handlers need.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// TaskService is the task CRUD surface the handlers need. Every method is
// scoped by the verified user id placed on the context by the auth gateway.
type TaskService interface {
	List(ctx context.Context, userID string, category string) ([]*models.Task, error)
	Create(ctx context.Context, userID, title, description, category string) (*models.Task, error)
	Update(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

// Deps bundles what the route table needs.
type Deps struct {
	Users  UserService
	Tasks  TaskService
	Tokens middleware.TokenVerifier
}

// Register wires all routes onto mux. Task routes sit behind the auth
// gateway; auth routes do not. Unknown paths get a JSON 404 instead of the
// default text page.
func Register(mux *http.ServeMux, log logging.Logger, deps Deps, ew rest.ErrorWriter, timeout time.Duration) {
	mux.Handle("POST /api/v1/auth/register", NewRegisterHandler(log, deps.Users, ew, timeout))
	mux.Handle("POST /api/v1/auth/login", NewLoginHandler(log, deps.Users, ew, timeout))

	authed := func(h http.Handler) http.Handler {
		return middleware.Authorizing(h, deps.Tokens, deps.Users, ew, log)
	}

	mux.Handle("GET /api/v1/tasks", authed(NewListTasksHandler(log, deps.Tasks, ew, timeout)))
	mux.Handle("POST /api/v1/tasks", authed(NewCreateTaskHandler(log, deps.Tasks, ew, timeout)))
	mux.Handle("PATCH /api/v1/tasks/{id}", authed(NewPatchTaskHandler(log, deps.Tasks, ew, timeout)))
	mux.Handle("DELETE /api/v1/tasks/{id}", authed(NewDeleteTaskHandler(log, deps.Tasks, ew, timeout)))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		rest.Error(w, "cannot find "+r.URL.Path+" on this server", http.StatusNotFound)
	})
}

// writeErr sends the error to the client and keeps the detail of
// internal failures in the server log.
func writeErr(ctx context.Context, log logging.Logger, ew rest.ErrorWriter, w http.ResponseWriter, err error) {
	if !isClientError(err) {
		log.Error(ctx, "request failed", "error", err)
	}
	ew.WriteErr(w, err)
}

func isClientError(err error) bool {
	for _, target := range []error{
		common.ErrValidation,
		common.ErrDuplicateEmail,
		common.ErrorUnauthorized,
		common.ErrMissingToken,
		common.ErrInvalidToken,
		common.ErrTokenExpired,
		common.ErrorNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
