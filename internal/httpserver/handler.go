package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	bulkImportHTTP "agency-content-ops/internal/bulkimport/delivery/http"
	"agency-content-ops/internal/model"
	recurringHTTP "agency-content-ops/internal/recurring/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	api := srv.gin.Group("/api/v1")

	recurringHTTP.RegisterRoutes(api, recurringHTTP.New(srv.l, srv.recurringUC), srv.middleware)
	bulkImportHTTP.RegisterRoutes(api, bulkImportHTTP.New(srv.l, srv.bulkImportUC), srv.middleware)

	return nil
}
