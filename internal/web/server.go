// Package web serves the browser UI and the JSON API.
package web

import (
	"context"
	"embed"
	"html/template"

	"github.com/Digital-Shane/cinerec/internal/recommend"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Recommender produces recommendations for a free-text title query.
type Recommender interface {
	Recommend(ctx context.Context, title string) recommend.Result
}

//go:embed templates/index.html
var templateFS embed.FS

// Server handles HTTP requests for cinerec.
type Server struct {
	echo        *echo.Echo
	recommender Recommender
	logger      zerolog.Logger
	index       *template.Template
}

// NewServer wires the routes around a recommender.
func NewServer(recommender Recommender, logger zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:        e,
		recommender: recommender,
		logger:      logger,
		index:       template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}

	e.GET("/", s.Index)
	e.GET("/healthz", s.Health)
	e.GET("/api/v1/recommendations", s.Recommendations)

	return s
}

// Start begins serving on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("web server listening")
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
