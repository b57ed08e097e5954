package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskify/internal/logging"
	"github.com/dmitrijs2005/taskify/internal/server/rest"
)

func NewRegisterHandler(log logging.Logger, svc UserService, ew rest.ErrorWriter, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.RegisterIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			rest.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		user, token, err := svc.Register(ctx, in.Name, in.Email, in.Password)
		if err != nil {
			writeErr(r.Context(), log, ew, w, err)
			return
		}
		rest.Json(w, rest.AuthOut{User: user.Public(), Token: token}, http.StatusCreated)
	}
}

func NewLoginHandler(log logging.Logger, svc UserService, ew rest.ErrorWriter, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.LoginIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			rest.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		user, token, err := svc.Login(ctx, in.Email, in.Password)
		if err != nil {
			writeErr(r.Context(), log, ew, w, err)
			return
		}
		rest.Json(w, rest.AuthOut{User: user.Public(), Token: token}, http.StatusOK)
	}
}
