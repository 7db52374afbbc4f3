// Package server serves the tool surface over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/manash/floralgen/internal/tools"
	"github.com/manash/floralgen/internal/version"
	"github.com/manash/floralgen/internal/workflow"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

type Config struct {
	Service     *tools.Service
	Logger      *slog.Logger
	CORSOrigins []string
}

type Server struct {
	service  *tools.Service
	registry *tools.Registry
	logger   *slog.Logger
	engine   *gin.Engine
}

func New(cfg Config) *Server {
	svc := cfg.Service
	if svc == nil {
		svc = tools.NewService(tools.Defaults{}, cfg.Logger)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = svc.Logger
	}

	s := &Server{
		service:  svc,
		registry: svc.Tools(),
		logger:   logger,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	r.GET("/healthz", s.health)

	api := r.Group("/api")
	{
		api.GET("/tools", s.listTools)
		api.POST("/tools/:name", s.callTool)
		api.GET("/taxonomy/:table", s.getTable)
		api.GET("/occasions/:name", s.getOccasion)
	}

	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Version})
}

func (s *Server) listTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": s.registry.List()})
}

func (s *Server) callTool(c *gin.Context) {
	name := c.Param("name")
	if _, ok := s.registry.Get(name); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown tool: %s", name)})
		return
	}

	args, err := decodeArgs(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := s.registry.Call(c.Request.Context(), name, args)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("tool call failed", "tool", name, "err", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getTable(c *gin.Context) {
	table, err := s.service.Table(c.Param("table"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, table)
}

func (s *Server) getOccasion(c *gin.Context) {
	suggestion := s.service.SuggestForOccasion(c.Param("name"))
	if !suggestion.Found() {
		c.JSON(http.StatusNotFound, suggestion)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// decodeArgs reads a JSON object of tool arguments. An empty body is an
// empty argument set.
func decodeArgs(r *http.Request) (tools.Args, error) {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.UseNumber()

	var args tools.Args
	if err := dec.Decode(&args); err != nil {
		if errors.Is(err, io.EOF) {
			return tools.Args{}, nil
		}
		return nil, fmt.Errorf("request body must be a JSON object: %w", err)
	}
	if args == nil {
		args = tools.Args{}
	}
	return args, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, tools.ErrUnknownTool), errors.Is(err, tools.ErrUnknownTable):
		return http.StatusNotFound
	case errors.Is(err, tools.ErrInvalidArgument), errors.Is(err, workflow.ErrInvalidSize):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}
