package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// Server serves the board's REST API
type Server struct {
	services *services.ServiceContainer
	cfg      *config.Config
	log      *logging.Logger
	handler  http.Handler
}

// New builds the router for services. cfg and logger may be nil.
func New(svc *services.ServiceContainer, cfg *config.Config, logger *logging.Logger) *Server {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = logging.Default()
	}

	s := &Server{
		services: svc,
		cfg:      cfg,
		log:      logger,
	}
	s.handler = s.withCORS(s.routes())
	return s
}

// Handler returns the HTTP handler, CORS included
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(s.log))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := router.Group(apiPrefix(s.cfg.Server.APIPrefix))

	tasks := newTaskHandlers(s.services.TaskService, s.log)
	api.GET("/tasks", tasks.list)
	api.POST("/tasks", tasks.create)
	api.PUT("/tasks/:id", tasks.update)
	api.DELETE("/tasks/:id", tasks.delete)
	api.PATCH("/tasks/:id/toggle", tasks.toggle)

	categories := newCategoryHandlers(s.services.CategoryService, s.log)
	api.GET("/categories", categories.list)
	api.POST("/categories", categories.create)
	api.DELETE("/categories/:id", categories.delete)

	tags := newTagHandlers(s.services.TagService, s.log)
	api.GET("/tags", tags.list)
	api.POST("/tags", tags.create)
	api.DELETE("/tags/:id", tags.delete)

	stats := newStatsHandlers(s.services.StatsService, s.log)
	api.GET("/stats", stats.get)

	return router
}

func (s *Server) withCORS(h http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader, errorKindHeader},
	})
	return c.Handler(h)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("API server listening on %s", srv.Addr)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	s.log.Infof("shutting down API server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func apiPrefix(prefix string) string {
	prefix = strings.TrimRight(prefix, "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}
