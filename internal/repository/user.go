package repository

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, full_name, email, phone_number, role, profile_picture, created_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PhoneNumber, &u.Role, &u.ProfilePicture, &u.CreatedAt)
	return u, err
}

func (r *UserRepository) List(ctx context.Context, page model.Page) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY id
		LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUser)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, notFound("users", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, payload *model.CreateUserPayload, passwordHash string) (*model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		INSERT INTO users (full_name, email, phone_number, password_hash, role, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		payload.FullName, payload.Email, payload.PhoneNumber, passwordHash, payload.Role, payload.ProfilePicture,
	))
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update writes the fields present in payload. passwordHash replaces the
// stored hash when non-nil. With nothing to write it returns the current row.
func (r *UserRepository) Update(ctx context.Context, payload *model.UpdateUserPayload, passwordHash *string) (*model.User, error) {
	var set updateSet
	setIf(&set, "full_name", payload.FullName)
	setIf(&set, "email", payload.Email)
	setIf(&set, "phone_number", payload.PhoneNumber)
	setIf(&set, "password_hash", passwordHash)
	setIf(&set, "role", payload.Role)
	setIf(&set, "profile_picture", payload.ProfilePicture)

	if set.empty() {
		return r.GetByID(ctx, payload.ID)
	}

	query, args := set.statement("users", "id", payload.ID, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound("users", err)
	}
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "users", `DELETE FROM users WHERE id = $1`, id)
}
