package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/realestate/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_PgErrors(t *testing.T) {
	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		status  int
		code    string
		message string
	}{
		{
			name:    "unique email",
			pgErr:   &pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_email_key"},
			status:  http.StatusBadRequest,
			code:    "USER_ALREADY_EXISTS",
			message: "A User with this Email already exists",
		},
		{
			name:    "active listing per owner",
			pgErr:   &pgconn.PgError{Code: "23505", TableName: "listing_property", ConstraintName: "unique_active_listing_owner"},
			status:  http.StatusBadRequest,
			code:    "LISTING_ALREADY_EXISTS",
			message: "This owner already has an active listing for the property",
		},
		{
			name:    "missing property reference",
			pgErr:   &pgconn.PgError{Code: "23503", TableName: "bids", ColumnName: "property_id"},
			status:  http.StatusBadRequest,
			code:    "BID_NOT_FOUND",
			message: "The referenced Property does not exist",
		},
		{
			name:    "not null",
			pgErr:   &pgconn.PgError{Code: "23502", TableName: "properties", ColumnName: "title"},
			status:  http.StatusBadRequest,
			code:    "PROPERTY_REQUIRED",
			message: "The Title is required",
		},
		{
			name:    "listing party check",
			pgErr:   &pgconn.PgError{Code: "23514", TableName: "listing_property", ConstraintName: "listing_property_one_party_check"},
			status:  http.StatusBadRequest,
			code:    "LISTING_INVALID",
			message: "A listing must have exactly one of owner_id or broker_id",
		},
		{
			name:    "renovation before build",
			pgErr:   &pgconn.PgError{Code: "23514", TableName: "features", ConstraintName: "features_renovation_check"},
			status:  http.StatusBadRequest,
			code:    "FEATURES_INVALID",
			message: "Year renovated cannot be before the year built",
		},
		{
			name:    "bad enum text",
			pgErr:   &pgconn.PgError{Code: "22P02"},
			status:  http.StatusBadRequest,
			code:    "RECORD_INVALID",
			message: "One or more values have an invalid format",
		},
		{
			name:    "value too long",
			pgErr:   &pgconn.PgError{Code: "22001", TableName: "comparison_lists"},
			status:  http.StatusBadRequest,
			code:    "COMPARISON_LIST_INVALID",
			message: "One or more values are too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert: %w", tt.pgErr), false))
			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func TestHandleError_NotNullFieldErrors(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23502", TableName: "users", ColumnName: "Email"}, false)
	httpErr := asHTTPError(t, err)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "email", httpErr.Errors[0].Field)
}

func TestHandleError_NotFound(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(NotFound("properties"), false))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Property not found", httpErr.Message)

	httpErr = asHTTPError(t, HandleError(fmt.Errorf("get: %w", NotFound("comparison_lists")), false))
	assert.Equal(t, "Comparison List not found", httpErr.Message)

	httpErr = asHTTPError(t, HandleError(sql.ErrNoRows, false))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleError_PassesThroughHTTPError(t *testing.T) {
	original := errs.NewBadRequestError("nope", true, nil, nil, nil)
	assert.Same(t, original, HandleError(original, true))
}

func TestHandleError_Internal(t *testing.T) {
	cause := errors.New("connection refused")

	hidden := asHTTPError(t, HandleError(cause, false))
	assert.Equal(t, http.StatusInternalServerError, hidden.Status)
	assert.Equal(t, "Internal Server Error", hidden.Message)

	exposed := asHTTPError(t, HandleError(cause, true))
	assert.Equal(t, http.StatusInternalServerError, exposed.Status)
	assert.Equal(t, "Internal Server Error: connection refused", exposed.Message)

	deadlock := asHTTPError(t, HandleError(&pgconn.PgError{Code: "40P01", Message: "deadlock detected"}, true))
	assert.Equal(t, http.StatusInternalServerError, deadlock.Status)
	assert.Contains(t, deadlock.Message, "deadlock detected")
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23505"})))
	assert.Equal(t, CheckViolation, ErrCode(ConvertPgError(&pgconn.PgError{Code: "23514"})))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "slug", extractColumnForUniqueViolation("unique_agencies_slug"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
	assert.Equal(t, "", extractColumnForUniqueViolation("brokers_pkey"))
}
