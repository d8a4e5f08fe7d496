package api

import (
	"net/http"

	"rental-core/internal/handler/httperr"
	"rental-core/internal/handler/middleware"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errUnauthenticated       = errs.New("missing authenticated user")
	errInvalidIdempotencyKey = errs.Validation("Idempotency-Key must be a UUID")
)

// requireActor aborts with 401 when the auth middleware did not run.
func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return actor, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// idempotencyKey returns nil when the header is absent.
func idempotencyKey(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.GetHeader(middleware.IdempotencyKeyHeader)
	if raw == "" {
		return nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidIdempotencyKey, "Idempotency-Key must be a UUID", nil)
		return nil, false
	}
	return &key, true
}
