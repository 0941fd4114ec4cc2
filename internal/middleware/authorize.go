package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MichaelTeekey/job-finder/internal/model"
	"github.com/MichaelTeekey/job-finder/internal/policy"
	"github.com/MichaelTeekey/job-finder/internal/utilities"
)

// Authorize will protect an endpoint by consulting the policy gate for the
// given resource and action. Routes that allow anonymous access can use it
// without a preceding RequireAuth.
func Authorize(resource policy.Resource, action policy.Action) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var actor *model.User
		if user, err := utilities.ExtractUser(ctx); err == nil {
			actor = &user
		}

		if err := policy.Authorize(actor, resource, action); err != nil {
			if errors.Is(err, policy.ErrUnauthenticated) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "Authentication required",
				})
				return
			}
			ctx.AbortWithStatusJSON(http.StatusForbidden, utilities.ErrorResponse{
				Error: "User doesn't have permission to access",
			})
		}
	}
}
