package http

import (
	"github.com/gin-gonic/gin"

	"agency-content-ops/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Import
// endpoints are rate limited per client in addition to auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	imports := rg.Group("/imports")
	{
		imports.POST("", mw.Auth(), mw.RateLimit(), h.Confirm)
		imports.POST("/preview", mw.Auth(), mw.RateLimit(), h.Preview)
	}
}
