package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/realestate/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ID         int64   `param:"id" json:"-" validate:"gt=0"`
	Email      string  `json:"email" validate:"required,email"`
	StartPrice int64   `json:"start_price" validate:"gte=0"`
	Role       string  `json:"role" validate:"required,oneof=buyer owner"`
	Bio        *string `json:"bio" validate:"omitempty,min=3"`
	Limit      int     `query:"limit" json:"-" validate:"gte=0,lte=100"`
	Offset     int     `query:"offset" json:"-" validate:"gte=0"`
}

func (r *sampleRequest) Validate() error {
	return Struct(r)
}

type customRequest struct {
	OwnerID  *int64 `json:"owner_id"`
	BrokerID *int64 `json:"broker_id"`
}

func (r *customRequest) Validate() error {
	if (r.OwnerID == nil) == (r.BrokerID == nil) {
		return CustomValidationErrors{{Field: "owner_id", Message: "exactly one of owner_id or broker_id is required"}}
	}
	return nil
}

func newContext(method, target, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	out := make(map[string]string, len(httpErr.Errors))
	for _, fe := range httpErr.Errors {
		out[fe.Field] = fe.Error
	}
	return out
}

func TestBindAndValidate_OK(t *testing.T) {
	c := newContext(http.MethodPut, "/", `{"email":"a@b.co","start_price":10,"role":"owner"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	req := &sampleRequest{}
	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, int64(7), req.ID)
	assert.Equal(t, "a@b.co", req.Email)
	assert.Nil(t, req.Bio)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	c := newContext(http.MethodPut, "/", `{"email":"nope","start_price":-1,"role":"alien","bio":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("0")

	fields := fieldErrors(t, BindAndValidate(c, &sampleRequest{}))
	assert.Equal(t, "must be greater than 0", fields["id"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be greater than or equal to 0", fields["start_price"])
	assert.Equal(t, "must be one of: buyer owner", fields["role"])
	assert.Equal(t, "must be at least 3 characters", fields["bio"])
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	c := newContext(http.MethodPost, "/", `{"email":`)

	err := BindAndValidate(c, &sampleRequest{})
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidate_BadPathParam(t *testing.T) {
	c := newContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := BindAndValidate(c, &sampleRequest{})
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidate_QueryPagination(t *testing.T) {
	c := newContext(http.MethodGet, "/?limit=500&offset=-1", "")

	fields := fieldErrors(t, BindAndValidate(c, &sampleRequest{}))
	assert.Equal(t, "must be less than or equal to 100", fields["limit"])
	assert.Equal(t, "must be greater than or equal to 0", fields["offset"])
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	c := newContext(http.MethodPost, "/", `{"owner_id":1,"broker_id":2}`)

	fields := fieldErrors(t, BindAndValidate(c, &customRequest{}))
	assert.Equal(t, "exactly one of owner_id or broker_id is required", fields["owner_id"])
}
