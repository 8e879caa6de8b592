package middleware

import (
	"net/http"

	"github.com/IGN03/TMC/api/responses"
	"github.com/IGN03/TMC/pkg/db/models"
	pkgerrors "github.com/IGN03/TMC/pkg/errors"
	"github.com/IGN03/TMC/pkg/logger"
)

// RequireAccessLevel rejects callers whose access level is below the minimum.
func RequireAccessLevel(min int, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if AccessLevelFromContext(r.Context()) < min {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "staff access required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireStaff gates routes reserved for staff accounts.
func RequireStaff(logg *logger.Logger) func(http.Handler) http.Handler {
	return RequireAccessLevel(models.AccessLevelStaff, logg)
}
