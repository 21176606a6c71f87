package web

import (
	"net/http"
	"strings"

	"github.com/Digital-Shane/cinerec/internal/recommend"
	"github.com/labstack/echo/v4"
)

// indexData feeds the index template.
type indexData struct {
	Query  string
	Result *recommend.Result
}

// Index renders the search form and, when a title was submitted, the
// server-rendered recommendation cards.
// GET /?title=...
func (s *Server) Index(c echo.Context) error {
	data := indexData{Query: strings.TrimSpace(c.QueryParam("title"))}
	if data.Query != "" {
		result := s.recommender.Recommend(c.Request().Context(), data.Query)
		data.Result = &result
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	if err := s.index.Execute(c.Response(), data); err != nil {
		s.logger.Error().Err(err).Msg("template render failed")
		return err
	}
	return nil
}

// Recommendations returns the recommendation result as JSON.
// GET /api/v1/recommendations?title=...
func (s *Server) Recommendations(c echo.Context) error {
	title := strings.TrimSpace(c.QueryParam("title"))
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title parameter is required")
	}
	result := s.recommender.Recommend(c.Request().Context(), title)
	return c.JSON(http.StatusOK, result)
}

// Health reports liveness.
// GET /healthz
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
