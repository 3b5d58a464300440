package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/realestate/internal/config"
	"github.com/deppfellow/realestate/internal/errs"
	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "development"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestNewRequest_FreshValue(t *testing.T) {
	template := &model.IDPayload{ID: 7}
	req := newRequest(template)

	require.NotNil(t, req)
	assert.NotSame(t, template, req)
	assert.Zero(t, req.ID)
}

func TestHandle_BindsValidatesAndResponds(t *testing.T) {
	h := NewHandler(testServer())
	var seen int64

	fn := Handle(h, func(c echo.Context, payload *model.IDPayload) (map[string]int64, error) {
		seen = payload.ID
		return map[string]int64{"id": payload.ID}, nil
	}, http.StatusCreated, &model.IDPayload{})

	c, rec := newContext(http.MethodPost, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, fn(c))
	assert.Equal(t, int64(42), seen)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":42}`, rec.Body.String())
}

func TestHandle_ValidationErrorSkipsHandler(t *testing.T) {
	h := NewHandler(testServer())
	called := false

	fn := Handle(h, func(c echo.Context, payload *model.IDPayload) (*model.IDPayload, error) {
		called = true
		return payload, nil
	}, http.StatusOK, &model.IDPayload{})

	c, _ := newContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("0")

	err := fn(c)
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.False(t, called)
}

func TestHandleNoContent_PropagatesError(t *testing.T) {
	h := NewHandler(testServer())
	boom := errors.New("boom")

	fn := HandleNoContent(h, func(c echo.Context, payload *model.IDPayload) error {
		return boom
	}, http.StatusNoContent, &model.IDPayload{})

	c, _ := newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	assert.ErrorIs(t, fn(c), boom)
	assert.False(t, c.Response().Committed)
}

func TestCheckHealth(t *testing.T) {
	s := testServer()
	s.Config.Observability.HealthChecks.Timeout = time.Second

	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		probes []healthProbe
		status int
	}{
		{"all healthy", []healthProbe{{name: "database", ping: ok}}, http.StatusOK},
		{"optional probe down", []healthProbe{{name: "database", ping: ok}, {name: "redis", optional: true, ping: down}}, http.StatusOK},
		{"required probe down", []healthProbe{{name: "database", ping: down}}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthHandler{Handler: NewHandler(s), probes: tt.probes}
			c, rec := newContext(http.MethodGet, "/status", "")

			require.NoError(t, h.CheckHealth(c))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"database"`)
		})
	}
}

func TestNewHealthHandler_SkipsUnconfiguredProbes(t *testing.T) {
	h := NewHealthHandler(testServer())
	assert.Empty(t, h.probes)
}
