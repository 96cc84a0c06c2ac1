// Package web serves the portfolio demos over HTTP.
//
// Routes:
//
//	GET  /healthz          liveness probe
//	GET  /metrics          Prometheus exposition
//	GET  /api/crops        crop labels the advisor can return
//	POST /api/crop         crop recommendation (JSON or form body)
//	POST /api/edges        side-by-side original preview and edge image (JSON)
//	POST /api/edges.png    edge image as a raw PNG body
//
// Image uploads use the multipart field "image".
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kavya-marri/portfolio-demos/internal/config"
	"github.com/kavya-marri/portfolio-demos/internal/logger"
	"github.com/kavya-marri/portfolio-demos/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// Server wraps the gin engine in an http.Server with graceful shutdown.
type Server struct {
	addr   string
	engine *gin.Engine
}

// NewServer builds the engine from cfg. m may be nil to disable metrics.
func NewServer(cfg config.Config, m *metrics.Metrics) *Server {
	return &Server{addr: cfg.HTTPAddr, engine: NewEngine(cfg, m)}
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// NewEngine wires middleware and routes.
func NewEngine(cfg config.Config, m *metrics.Metrics) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	// Multipart parts beyond this spill to temp files.
	engine.MaxMultipartMemory = cfg.MaxUploadBytes
	engine.Use(gin.Recovery(), requestLog(m))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if m != nil {
		engine.GET("/metrics", gin.WrapH(m.Handler()))
	}

	demos := &DemoRouter{
		MaxUploadBytes: cfg.MaxUploadBytes,
		PreviewMaxDim:  cfg.PreviewMaxDim,
		Metrics:        m,
	}
	demos.Register(engine.Group("/api"))
	return engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("http server listening on %s", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Infof("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLog logs each request and feeds the request metrics.
func requestLog(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := c.Writer.Status()
		logger.L().Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"elapsed", elapsed,
		)
		if m != nil {
			m.ObserveRequest(c.FullPath(), c.Request.Method, status, elapsed)
		}
	}
}
