package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
	"github.com/reqtrackhq/reqtrack-api/pkg/response"
)

type roleChecker interface {
	IsAdmin(ctx context.Context) (bool, error)
}

// RequireAdmin returns middleware that rejects requests while the shared
// session role flag is off. There are no users or tokens behind it; the flag
// is the whole access model.
func RequireAdmin(session roleChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := session.IsAdmin(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if !admin {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
