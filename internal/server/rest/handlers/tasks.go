package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskify/internal/common"
	"github.com/dmitrijs2005/taskify/internal/logging"
	"github.com/dmitrijs2005/taskify/internal/server/rest"
	"github.com/dmitrijs2005/taskify/internal/server/rest/middleware"
)

func NewListTasksHandler(log logging.Logger, svc TaskService, ew rest.ErrorWriter, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			ew.WriteErr(w, common.ErrMissingToken)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.List(ctx, userID, r.URL.Query().Get("category"))
		if err != nil {
			writeErr(r.Context(), log, ew, w, err)
			return
		}
		rest.Json(w, items, http.StatusOK)
	}
}

func NewCreateTaskHandler(log logging.Logger, svc TaskService, ew rest.ErrorWriter, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			ew.WriteErr(w, common.ErrMissingToken)
			return
		}

		var in rest.CreateTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			rest.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		task, err := svc.Create(ctx, userID, in.Title, in.Description, in.Category)
		if err != nil {
			writeErr(r.Context(), log, ew, w, err)
			return
		}
		rest.Json(w, task, http.StatusCreated)
	}
}

func NewPatchTaskHandler(log logging.Logger, svc TaskService, ew rest.ErrorWriter, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			ew.WriteErr(w, common.ErrMissingToken)
			return
		}

		taskID := r.PathValue("id")
		if taskID == "" {
			rest.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.PatchTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			rest.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		task, err := svc.Update(ctx, userID, taskID, in.Patch())
		if err != nil {
			writeErr(r.Context(), log, ew, w, err)
			return
		}
		rest.Json(w, task, http.StatusOK)
	}
}

func NewDeleteTaskHandler(log logging.Logger, svc TaskService, ew rest.ErrorWriter, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			ew.WriteErr(w, common.ErrMissingToken)
			return
		}

		taskID := r.PathValue("id")
		if taskID == "" {
			rest.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := svc.Delete(ctx, userID, taskID); err != nil {
			writeErr(r.Context(), log, ew, w, err)
			return
		}
		rest.Json(w, map[string]string{"message": "deleted"}, http.StatusOK)
	}
}
