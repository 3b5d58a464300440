package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/realestate/internal/config"
	"github.com/deppfellow/realestate/internal/errs"
	"github.com/deppfellow/realestate/internal/handler"
	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/deppfellow/realestate/internal/server"
	"github.com/deppfellow/realestate/internal/service"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userCols     = []string{"id", "full_name", "email", "phone_number", "role", "profile_picture", "created_at"}
	offerCols    = []string{"id", "property_id", "user_id", "offer_amount", "message", "status", "created_at"}
	favoriteCols = []string{"id", "property_id", "user_id", "notes", "is_contacted", "notify_price_change", "notify_status_change", "notify_new_message", "created_at"}
)

func ptr[T any](v T) *T { return &v }

func newTestRouter(t *testing.T) (*echo.Echo, pgxmock.PgxPoolIface) {
	t.Helper()
	logger := zerolog.Nop()
	return newTestRouterWith(t, 1000, &logger)
}

func newTestRouterWith(t *testing.T, rateLimit float64, logger *zerolog.Logger) (*echo.Echo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "local"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          rateLimit,
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: logger,
	}

	services, err := service.NewService(s, repository.NewRepositories(mock))
	require.NoError(t, err)

	return NewRouter(s, handler.NewHandlers(s, services)), mock
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestStatus_Healthy(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRateLimit_RejectionIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	e, _ := newTestRouterWith(t, 1, &logger)

	require.Equal(t, http.StatusOK, do(e, http.MethodGet, "/status", "").Code)

	buf.Reset()
	rec := do(e, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	logged := buf.String()
	assert.Contains(t, logged, `"message":"rate limit exceeded"`)
	assert.Contains(t, logged, `"status":429`)
	assert.Contains(t, logged, `"request_id":"`+rec.Header().Get("X-Request-ID")+`"`)
}

func TestUnknownRoute(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/api/v1/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestGetUser_Found(t *testing.T) {
	e, mock := newTestRouter(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(mock.NewRows(userCols).
			AddRow(int64(4), "Ada", "ada@example.com", "+4512345678", model.RoleBuyer, (*string)(nil), created))

	rec := do(e, http.MethodGet, "/api/v1/users/4", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUser_Missing(t *testing.T) {
	e, mock := newTestRouter(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(mock.NewRows(userCols))

	rec := do(e, http.MethodGet, "/api/v1/users/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUser_BadID(t *testing.T) {
	e, mock := newTestRouter(t)

	rec := do(e, http.MethodGet, "/api/v1/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_ValidationFailsBeforeDatabase(t *testing.T) {
	e, mock := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/users", `{"full_name":"Ada","email":"nope","phone_number":"123","password":"short","role":"landlord"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fields := map[string]string{}
	for _, fe := range decodeError(t, rec).Errors {
		fields[fe.Field] = fe.Error
	}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "role")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_EmptyBodyReturnsCurrentRow(t *testing.T) {
	e, mock := newTestRouter(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(mock.NewRows(userCols).
			AddRow(int64(5), "Bo", "bo@example.com", "+4511111111", model.RoleOwner, (*string)(nil), created))

	rec := do(e, http.MethodPut, "/api/v1/users/5", `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"full_name":"Bo"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser_Twice(t *testing.T) {
	e, mock := newTestRouter(t)

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	rec := do(e, http.MethodDelete, "/api/v1/users/3", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(e, http.MethodDelete, "/api/v1/users/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_EmptyIsArray(t *testing.T) {
	e, mock := newTestRouter(t)

	mock.ExpectQuery(`FROM users`).
		WithArgs(model.DefaultLimit, 0).
		WillReturnRows(mock.NewRows(userCols))

	rec := do(e, http.MethodGet, "/api/v1/users", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_LimitTooLarge(t *testing.T) {
	e, mock := newTestRouter(t)

	rec := do(e, http.MethodGet, "/api/v1/users?limit=1000", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateListing_RequiresExactlyOneParty(t *testing.T) {
	e, mock := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/listings", `{"property_id":1,"owner_id":2,"broker_id":3,"listing_type":"sale","start_price":100}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateListing_ActiveConflict(t *testing.T) {
	e, mock := newTestRouter(t)

	mock.ExpectQuery(`INSERT INTO listing_property`).
		WithArgs(int64(1), ptr(int64(2)), (*int64)(nil), "sale", ptr(int64(250000)),
			(*time.Time)(nil), (*time.Time)(nil), (*string)(nil)).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			TableName:      "listing_property",
			ConstraintName: "unique_active_listing_owner",
		})

	rec := do(e, http.MethodPost, "/api/v1/listings", `{"property_id":1,"owner_id":2,"listing_type":"sale","start_price":250000}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "LISTING_ALREADY_EXISTS", body.Code)
	assert.Equal(t, "This owner already has an active listing for the property", body.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFavorite_EmptyBodyReturnsCurrentRow(t *testing.T) {
	e, mock := newTestRouter(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM favorites WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(mock.NewRows(favoriteCols).
			AddRow(int64(7), int64(5), int64(2), ptr("South facing"), false, true, false, false, created))

	rec := do(e, http.MethodPatch, "/api/v1/favorites/7", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var favorite model.Favorite
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &favorite))
	assert.Equal(t, int64(7), favorite.ID)
	require.NotNil(t, favorite.Notes)
	assert.Equal(t, "South facing", *favorite.Notes)
	assert.True(t, favorite.NotifyPriceChange)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOfferStatus(t *testing.T) {
	e, mock := newTestRouter(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE offers SET status = \$1\s+WHERE id = \$2`).
		WithArgs(model.OfferStatusRejected, int64(3)).
		WillReturnRows(mock.NewRows(offerCols).
			AddRow(int64(3), int64(5), int64(2), int64(290000), (*string)(nil), model.OfferStatusRejected, created))

	rec := do(e, http.MethodPatch, "/api/v1/offers/3/status", `{"status":"rejected"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var offer model.Offer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &offer))
	assert.Equal(t, model.OfferStatusRejected, offer.Status)

	rec = do(e, http.MethodPatch, "/api/v1/offers/3/status", `{"status":"maybe"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoutes_Registered(t *testing.T) {
	e, _ := newTestRouter(t)

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /api/v1/users/:id/favorites",
		"GET /api/v1/users/:id/notifications",
		"GET /api/v1/users/:id/comparison-lists",
		"DELETE /api/v1/properties/:id/images/:imageId",
		"DELETE /api/v1/properties/:id/videos/:videoId",
		"PUT /api/v1/properties/:id/features",
		"PUT /api/v1/properties/:id/location",
		"POST /api/v1/properties/:id/bids",
		"POST /api/v1/properties/:id/offers",
		"PATCH /api/v1/offers/:id/status",
		"PATCH /api/v1/listings/:id/status",
		"GET /api/v1/properties/:id/price-history",
		"POST /api/v1/properties/:id/views",
		"PATCH /api/v1/notifications/:id/read",
		"DELETE /api/v1/comparison-lists/:id/items/:propertyId",
		"GET /api/v1/brokers/:id",
		"GET /docs",
	} {
		assert.True(t, registered[route], route)
	}
}
