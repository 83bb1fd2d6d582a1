package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"agency-content-ops/internal/bulkimport"
	"agency-content-ops/internal/middleware"
	"agency-content-ops/internal/recurring"
	pkgLog "agency-content-ops/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	middleware   middleware.Middleware
	recurringUC  recurring.UseCase
	bulkImportUC bulkimport.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware   middleware.Middleware
	RecurringUC  recurring.UseCase
	BulkImportUC bulkimport.UseCase
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		middleware:   cfg.Middleware,
		recurringUC:  cfg.RecurringUC,
		bulkImportUC: cfg.BulkImportUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.recurringUC == nil {
		return errors.New("recurring usecase is required")
	}
	if srv.bulkImportUC == nil {
		return errors.New("bulk import usecase is required")
	}
	return nil
}
