package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"rental-core/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader carries the client key of a payment request.
const IdempotencyKeyHeader = "Idempotency-Key"

// NewCORSMiddleware builds the CORS policy from config. Payment clients
// send IdempotencyKeyHeader, so it is allowed even when the configured
// header list omits it.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	headers := slices.Clone(cfg.AllowHeaders)
	if !slices.ContainsFunc(headers, func(h string) bool { return strings.EqualFold(h, IdempotencyKeyHeader) }) {
		headers = append(headers, IdempotencyKeyHeader)
	}
	methods := cfg.AllowMethods
	if len(methods) == 0 {
		methods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_headers", headers)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     methods,
		AllowHeaders:     headers,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
