package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/realestate/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TablePrefix marks the table a missing row belongs to, e.g.
// fmt.Errorf("table:users: %w", pgx.ErrNoRows).
const TablePrefix = "table:"

// entityNames covers tables whose singular form is not "drop the trailing s".
var entityNames = map[string]string{
	"properties":            "property",
	"listing_property":      "listing",
	"location":              "location",
	"features":              "features",
	"price_history":         "price history",
	"property_images":       "property image",
	"property_videos":       "property video",
	"property_views":        "property view",
	"comparison_lists":      "comparison list",
	"comparison_list_items": "comparison list item",
	"agencies":              "agency",
}

// constraintMessages gives named constraints from the schema a precise message.
var constraintMessages = map[string]string{
	"listing_property_one_party_check": "A listing must have exactly one of owner_id or broker_id",
	"unique_active_listing_owner":      "This owner already has an active listing for the property",
	"unique_active_listing_broker":     "This broker already has an active listing for the property",
	"unique_favorites_user_property":   "This property is already in the user's favorites",
	"comparison_list_items_pkey":       "This property is already in the comparison list",
	"brokers_pkey":                     "This user is already registered as a broker",
	"agencies_user_id_key":             "This user already owns an agency",
	"users_role_check":                 "Role must be one of: buyer, owner, broker, agency",
	"offers_status_check":              "Status must be one of: pending, accepted, rejected, withdrawn",
	"listing_property_status_check":    "Listing status must be one of: Active, Paused, Expired, Closed",
	"properties_status_check":          "Status must be one of: Active, Inactive, Sold, Rented",
	"properties_listing_type_check":    "Listing type must be one of: sale, rent",
	"listing_property_dates_check":     "End date must be after the start date",
	"features_renovation_check":        "Year renovated cannot be before the year built",
}

var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the Code carried by err, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}
	return Other
}

// ConvertPgError converts a raw *pgconn.PgError into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds codes such as LISTING_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	domain := "RECORD"
	if tableName != "" {
		domain = strings.ToUpper(strings.ReplaceAll(singular(tableName), " ", "_"))
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, StringDataRightTruncation, NumericValueOutOfRange,
		InvalidTextRepresentation, InvalidDatetimeFormat:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	if msg, ok := constraintMessages[sqlErr.ConstraintName]; ok {
		return msg
	}

	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case StringDataRightTruncation:
		return "One or more values are too long"

	case NumericValueOutOfRange:
		return "One or more numeric values are out of range"

	case InvalidTextRepresentation, InvalidDatetimeFormat:
		return "One or more values have an invalid format"

	default:
		return "An error occurred while processing your request"
	}
}

func singular(tableName string) string {
	if name, ok := entityNames[tableName]; ok {
		return name
	}
	name := strings.ReplaceAll(tableName, "_", " ")
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		name = name[:len(name)-1]
	}
	return name
}

// getEntityName prefers a "<entity>_id" column (foreign keys), then the table.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		return humanizeText(singular(tableName))
	}

	return "record"
}

// humanizeText converts "first_name" into "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation reads the column out of constraint names
// shaped "unique_<table>_<column>" or "<table>_<column>_key".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyPattern.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts err into an *errs.HTTPError.
//
//   - *errs.HTTPError passes through unchanged.
//   - integrity and data errors from PostgreSQL become 400s.
//   - pgx.ErrNoRows and sql.ErrNoRows become 404s, named after the tagged table.
//   - anything else is a 500; exposeDetail puts err's text in the message.
func HandleError(err error, exposeDetail bool) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, false, &errorCode, nil, nil)

		case UniqueViolation:
			if _, known := constraintMessages[sqlErr.ConstraintName]; !known {
				if columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName); columnName != "" {
					userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
				}
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)

		case CheckViolation, StringDataRightTruncation, NumericValueOutOfRange,
			InvalidTextRepresentation, InvalidDatetimeFormat:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		default:
			return internalError(sqlErr.Error(), exposeDetail)
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		errMsg := err.Error()
		if strings.Contains(errMsg, TablePrefix) {
			table := strings.Split(strings.Split(errMsg, TablePrefix)[1], ":")[0]
			entityName := getEntityName(table, "")
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", entityName), true, nil)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return internalError(err.Error(), exposeDetail)
}

func internalError(detail string, exposeDetail bool) *errs.HTTPError {
	if exposeDetail {
		return errs.NewInternalServerErrorWithDetail(detail)
	}
	return errs.NewInternalServerError()
}

// NotFound tags a missing-row error with its table so HandleError can name it.
func NotFound(table string) error {
	return fmt.Errorf("%s%s: %w", TablePrefix, table, pgx.ErrNoRows)
}
