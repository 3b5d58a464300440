package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("nope", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("nope", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("gone", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "USER_ALREADY_EXISTS"
	fields := []FieldError{{Field: "email", Error: "taken"}}

	err := NewBadRequestError("exists", true, &code, fields, nil)
	assert.Equal(t, code, err.Code)
	assert.True(t, err.Override)
	assert.Equal(t, fields, err.Errors)
}

func TestNewInternalServerErrorWithDetail(t *testing.T) {
	assert.Equal(t, "Internal Server Error: relation missing", NewInternalServerErrorWithDetail("relation missing").Message)
	assert.Equal(t, "Internal Server Error", NewInternalServerErrorWithDetail("").Message)
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("loading listing: %w", NewNotFoundError("Listing not found", true, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Listing not found", wrapped.(interface{ Unwrap() error }).Unwrap().Error())
}

func TestWithMessage_DoesNotMutate(t *testing.T) {
	base := NewNotFoundError("Resource not found", false, nil)
	custom := base.WithMessage("Bid not found")

	assert.Equal(t, "Resource not found", base.Message)
	assert.Equal(t, "Bid not found", custom.Message)
	assert.Equal(t, base.Status, custom.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "TOO_MANY_REQUESTS", MakeUpperCaseWithUnderscores("Too Many Requests"))
}
