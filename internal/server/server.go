package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/DanRulev/quizbot.git/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=server.go -destination=mock/mock_server.go

type QuestionsI interface {
	Questions() []models.Question
	Total() int
}

type Server struct {
	srv *http.Server
	log *zap.Logger
}

type questionsResponse struct {
	Total     int               `json:"total"`
	Questions []models.Question `json:"questions"`
}

func NewServer(addr, env string, questions QuestionsI, log *zap.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(env, questions, log),
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

func NewRouter(env string, questions QuestionsI, log *zap.Logger) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/questions", func(c *gin.Context) {
			list := questions.Questions()
			if list == nil {
				list = []models.Question{}
			}
			c.JSON(http.StatusOK, questionsResponse{Total: questions.Total(), Questions: list})
		})
	}

	return r
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server started", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("http server stopped")
	return nil
}
