package repository

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/jackc/pgx/v5"
)

const brokerSelect = `
	SELECT b.user_id, b.agency_id, b.license_number, b.years_of_experience, b.bio, b.created_at, u.full_name, u.email
	FROM %s b
	JOIN users u ON u.id = b.user_id`

type BrokerRepository struct {
	db DBTX
}

func NewBrokerRepository(db DBTX) *BrokerRepository {
	return &BrokerRepository{db: db}
}

func scanBroker(row pgx.Row) (model.Broker, error) {
	var b model.Broker
	err := row.Scan(&b.UserID, &b.AgencyID, &b.LicenseNumber, &b.YearsOfExperience, &b.Bio, &b.CreatedAt, &b.FullName, &b.Email)
	return b, err
}

func (r *BrokerRepository) List(ctx context.Context, page model.Page) ([]model.Broker, error) {
	rows, err := r.db.Query(ctx, fromTable(brokerSelect, "brokers")+`
		ORDER BY b.user_id
		LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBroker)
}

func (r *BrokerRepository) GetByID(ctx context.Context, userID int64) (*model.Broker, error) {
	broker, err := scanBroker(r.db.QueryRow(ctx, fromTable(brokerSelect, "brokers")+` WHERE b.user_id = $1`, userID))
	if err != nil {
		return nil, notFound("brokers", err)
	}
	return &broker, nil
}

func (r *BrokerRepository) Create(ctx context.Context, payload *model.CreateBrokerPayload) (*model.Broker, error) {
	broker, err := scanBroker(r.db.QueryRow(ctx, `
		WITH written AS (
			INSERT INTO brokers (user_id, agency_id, license_number, years_of_experience, bio)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)`+fromTable(brokerSelect, "written"),
		payload.UserID, payload.AgencyID, payload.LicenseNumber, payload.YearsOfExperience, payload.Bio,
	))
	if err != nil {
		return nil, err
	}
	return &broker, nil
}

func (r *BrokerRepository) Update(ctx context.Context, payload *model.UpdateBrokerPayload) (*model.Broker, error) {
	var set updateSet
	setIf(&set, "agency_id", payload.AgencyID)
	setIf(&set, "license_number", payload.LicenseNumber)
	setIf(&set, "years_of_experience", payload.YearsOfExperience)
	setIf(&set, "bio", payload.Bio)

	if set.empty() {
		return r.GetByID(ctx, payload.ID)
	}

	update, args := set.statement("brokers", "user_id", payload.ID, "*")
	broker, err := scanBroker(r.db.QueryRow(ctx,
		`WITH written AS (`+update+`)`+fromTable(brokerSelect, "written"),
		args...,
	))
	if err != nil {
		return nil, notFound("brokers", err)
	}
	return &broker, nil
}

func (r *BrokerRepository) Delete(ctx context.Context, userID int64) error {
	return execOne(ctx, r.db, "brokers", `DELETE FROM brokers WHERE user_id = $1`, userID)
}
