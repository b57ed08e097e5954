package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/taskify/internal/common"
	"github.com/dmitrijs2005/taskify/internal/logging"
	"github.com/dmitrijs2005/taskify/internal/server/models"
	"github.com/dmitrijs2005/taskify/internal/server/rest"
)

// TokenVerifier validates a session token and returns its subject user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserResolver confirms a token subject still maps to an account.
type UserResolver interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Authorizing is the auth gateway in front of every task route. It reads
// the bearer token from the Authorization header, verifies it, confirms the
// subject resolves to an existing user, and forwards the request with the
// user id on its context. Any failure short-circuits with 401 before the
// handler runs.
func Authorizing(next http.Handler, tokens TokenVerifier, users UserResolver, ew rest.ErrorWriter, log logging.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthHeaderName)
		if header == "" {
			ew.WriteErr(w, common.ErrMissingToken)
			return
		}

		token, ok := strings.CutPrefix(header, common.AuthScheme+" ")
		if !ok || token == "" {
			ew.WriteErr(w, common.ErrInvalidToken)
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			ew.WriteErr(w, err)
			return
		}

		if _, err := users.GetByID(r.Context(), userID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				ew.WriteErr(w, common.ErrInvalidToken)
				return
			}
			log.Error(r.Context(), "resolving token subject", "error", err)
			ew.WriteErr(w, common.ErrorInternal)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}
