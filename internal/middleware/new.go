package middleware

import (
	"agency-content-ops/config"
	pkgLog "agency-content-ops/pkg/log"
)

// Middleware bundles the HTTP middleware handlers and their dependencies.
type Middleware struct {
	l           pkgLog.Logger
	accessToken string
	limiter     *clientRateLimiter
}

// New creates the middleware set from config.
func New(l pkgLog.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		accessToken: cfg.Auth.AccessToken,
		limiter:     newClientRateLimiter(cfg.Imports.RateLimitPerMin),
	}
}
