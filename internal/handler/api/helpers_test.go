//go:build unit

package api_test

import (
	"net/http"

	"rental-core/internal/domain/user"
	"rental-core/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bearer = "bearer-token"

// fakeAuth stands in for RequireAuth: requests without an Authorization
// header are rejected, everything else runs as actor.
func fakeAuth(actor *shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", actor.ID)
		c.Set("user_role", actor.Role)
		c.Next()
	}
}

func customer() shared.Actor {
	return shared.Actor{ID: uuid.New(), Role: user.RoleCustomer}
}

func vendor() shared.Actor {
	return shared.Actor{ID: uuid.New(), Role: user.RoleVendor}
}
