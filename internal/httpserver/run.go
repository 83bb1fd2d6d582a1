package httpserver

import (
	"context"
	"fmt"
)

// Run maps handlers and starts serving on the configured port. It blocks
// until the listener fails.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.l.Errorf(ctx, "httpserver.Run.mapHandlers: %v", err)
		return err
	}

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(ctx, "HTTP server listening on %s", addr)

	if err := srv.gin.Run(addr); err != nil {
		srv.l.Errorf(ctx, "httpserver.Run: %v", err)
		return err
	}

	return nil
}
