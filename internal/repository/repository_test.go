package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

// anyArgs matches n arguments of any value.
func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func requireNotFound(t *testing.T, err error, table string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
	assert.Contains(t, err.Error(), sqlerr.TablePrefix+table+":")
}

var userCols = []string{"id", "full_name", "email", "phone_number", "role", "profile_picture", "created_at"}

func TestUserRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	payload := &model.CreateUserPayload{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "+4512345678",
		Password:    "ignored-here",
		Role:        model.RoleOwner,
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ada Lovelace", "ada@example.com", "+4512345678", "hash", model.RoleOwner, (*string)(nil)).
		WillReturnRows(mock.NewRows(userCols).
			AddRow(int64(1), "Ada Lovelace", "ada@example.com", "+4512345678", model.RoleOwner, (*string)(nil), createdAt))

	user, err := repo.Create(context.Background(), payload, "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Nil(t, user.ProfilePicture)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(mock.NewRows(userCols))

	_, err := repo.GetByID(context.Background(), 9)
	requireNotFound(t, err, "users")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`UPDATE users SET full_name = \$1, password_hash = \$2 WHERE id = \$3 RETURNING`).
		WithArgs("Ada King", "new-hash", int64(1)).
		WillReturnRows(mock.NewRows(userCols).
			AddRow(int64(1), "Ada King", "ada@example.com", "+4512345678", model.RoleOwner, (*string)(nil), createdAt))

	hash := "new-hash"
	user, err := repo.Update(context.Background(), &model.UpdateUserPayload{ID: 1, FullName: ptr("Ada King")}, &hash)
	require.NoError(t, err)
	assert.Equal(t, "Ada King", user.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_EmptyUpdateReadsCurrentRow(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(mock.NewRows(userCols).
			AddRow(int64(1), "Ada Lovelace", "ada@example.com", "+4512345678", model.RoleOwner, (*string)(nil), createdAt))

	user, err := repo.Update(context.Background(), &model.UpdateUserPayload{ID: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteTwice(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Delete(context.Background(), 1))
	requireNotFound(t, repo.Delete(context.Background(), 1), "users")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListEmpty(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`FROM users`).
		WithArgs(20, 0).
		WillReturnRows(mock.NewRows(userCols))

	users, err := repo.List(context.Background(), model.Page{Limit: 20})
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key", TableName: "users"}
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(anyArgs(6)...).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), &model.CreateUserPayload{Role: model.RoleBuyer}, "hash")
	var got *pgconn.PgError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "users_email_key", got.ConstraintName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyRepository_CreateJoinsOwner(t *testing.T) {
	mock := newMock(t)
	repo := NewAgencyRepository(mock)

	mock.ExpectQuery(`WITH written AS \(\s+INSERT INTO agencies .+ FROM written a\s+JOIN users u`).
		WithArgs(int64(4), "DK-1234", (*string)(nil)).
		WillReturnRows(mock.NewRows([]string{"id", "user_id", "organization_number", "history", "created_at", "full_name", "email"}).
			AddRow(int64(2), int64(4), "DK-1234", (*string)(nil), createdAt, "Nordic Homes", "info@nordic.example"))

	agency, err := repo.Create(context.Background(), &model.CreateAgencyPayload{UserID: 4, OrganizationNumber: "DK-1234"})
	require.NoError(t, err)
	assert.Equal(t, "Nordic Homes", agency.OwnerName)
	assert.Equal(t, "info@nordic.example", agency.OwnerEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrokerRepository_UpdateMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewBrokerRepository(mock)

	mock.ExpectQuery(`WITH written AS \(UPDATE brokers SET bio = \$1 WHERE user_id = \$2 RETURNING \*\)`).
		WithArgs("Ten years downtown", int64(8)).
		WillReturnRows(mock.NewRows([]string{"user_id", "agency_id", "license_number", "years_of_experience", "bio", "created_at", "full_name", "email"}))

	_, err := repo.Update(context.Background(), &model.UpdateBrokerPayload{ID: 8, Bio: ptr("Ten years downtown")})
	requireNotFound(t, err, "brokers")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_ListFilters(t *testing.T) {
	mock := newMock(t)
	repo := NewListingRepository(mock)

	mock.ExpectQuery(`FROM listing_property WHERE listing_status = \$1 AND property_id = \$2 ORDER BY id LIMIT \$3 OFFSET \$4`).
		WithArgs(model.ListingStatusActive, int64(5), 10, 20).
		WillReturnRows(mock.NewRows([]string{"id", "property_id", "owner_id", "broker_id", "listing_type", "start_price", "start_date", "end_date", "listing_status", "created_at"}).
			AddRow(int64(1), int64(5), ptr(int64(2)), (*int64)(nil), "sale", int64(250000), createdAt, (*time.Time)(nil), model.ListingStatusActive, createdAt))

	listings, err := repo.List(context.Background(), &model.ListListingsPayload{
		Page:       model.Page{Limit: 10, Offset: 20},
		Status:     ptr(model.ListingStatusActive),
		PropertyID: ptr(int64(5)),
	})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, int64(2), *listings[0].OwnerID)
	assert.Nil(t, listings[0].BrokerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_ListUnfiltered(t *testing.T) {
	mock := newMock(t)
	repo := NewListingRepository(mock)

	mock.ExpectQuery(`FROM listing_property ORDER BY id LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(mock.NewRows([]string{"id"}))

	listings, err := repo.List(context.Background(), &model.ListListingsPayload{Page: model.Page{Limit: 20}})
	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkReadTwice(t *testing.T) {
	mock := newMock(t)
	repo := NewNotificationRepository(mock)
	cols := []string{"id", "user_id", "property_id", "favorite_id", "title", "message", "is_read", "created_at"}

	mock.ExpectQuery(`UPDATE notifications SET is_read = TRUE\s+WHERE id = \$1 AND is_read = FALSE`).
		WithArgs(int64(3)).
		WillReturnRows(mock.NewRows(cols).
			AddRow(int64(3), int64(1), (*int64)(nil), (*int64)(nil), "Price drop", "Now 10% off", true, createdAt))
	mock.ExpectQuery(`UPDATE notifications SET is_read = TRUE`).
		WithArgs(int64(3)).
		WillReturnRows(mock.NewRows(cols))

	n, err := repo.MarkRead(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, n.IsRead)

	_, err = repo.MarkRead(context.Background(), 3)
	requireNotFound(t, err, "notifications")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewRepository_ListSumsCounts(t *testing.T) {
	mock := newMock(t)
	repo := NewViewRepository(mock)

	mock.ExpectQuery(`FROM property_views\s+WHERE property_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(mock.NewRows([]string{"user_id", "property_id", "view_count", "last_viewed_at"}).
			AddRow(int64(1), int64(7), 3, createdAt).
			AddRow(int64(2), int64(7), 4, createdAt))

	views, err := repo.ListByProperty(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), views.TotalViews)
	assert.Len(t, views.Viewers, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewRepository_RecordUpserts(t *testing.T) {
	mock := newMock(t)
	repo := NewViewRepository(mock)

	mock.ExpectQuery(`INSERT INTO property_views .+ ON CONFLICT ON CONSTRAINT property_views_pkey DO UPDATE`).
		WithArgs(int64(1), int64(7)).
		WillReturnRows(mock.NewRows([]string{"user_id", "property_id", "view_count", "last_viewed_at"}).
			AddRow(int64(1), int64(7), 2, createdAt))

	view, err := repo.Record(context.Background(), &model.RecordViewPayload{PropertyID: 7, UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, view.ViewCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComparisonRepository_RemoveItemMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewComparisonRepository(mock)

	mock.ExpectExec(`DELETE FROM comparison_list_items WHERE comparison_list_id = \$1 AND property_id = \$2`).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	requireNotFound(t, repo.RemoveItem(context.Background(), 1, 2), "comparison_list_items")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSet_Statement(t *testing.T) {
	var set updateSet
	setIf(&set, "title", ptr("Loft"))
	setIf[string](&set, "description", nil)
	setIf(&set, "start_price", ptr(int64(10)))

	query, args := set.statement("properties", "id", int64(3), "id")
	assert.Equal(t, "UPDATE properties SET title = $1, start_price = $2 WHERE id = $3 RETURNING id", query)
	assert.Equal(t, []any{"Loft", int64(10), int64(3)}, args)
}
