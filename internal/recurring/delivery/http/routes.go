package http

import (
	"github.com/gin-gonic/gin"

	"agency-content-ops/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. All routes
// are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	recurring := rg.Group("/recurring")
	{
		recurring.GET("", mw.Auth(), h.List)
		recurring.POST("/preview", mw.Auth(), h.Preview)
		recurring.GET("/:id", mw.Auth(), h.Detail)
		recurring.PATCH("/:id", mw.Auth(), h.Update)
	}
}
