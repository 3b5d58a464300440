package repository

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/jackc/pgx/v5"
)

// agencySelect reads agencies joined with their owning user. Writes go
// through a CTE named "a" so they return the same shape.
const agencySelect = `
	SELECT a.id, a.user_id, a.organization_number, a.history, a.created_at, u.full_name, u.email
	FROM %s a
	JOIN users u ON u.id = a.user_id`

type AgencyRepository struct {
	db DBTX
}

func NewAgencyRepository(db DBTX) *AgencyRepository {
	return &AgencyRepository{db: db}
}

func scanAgency(row pgx.Row) (model.Agency, error) {
	var a model.Agency
	err := row.Scan(&a.ID, &a.UserID, &a.OrganizationNumber, &a.History, &a.CreatedAt, &a.OwnerName, &a.OwnerEmail)
	return a, err
}

func (r *AgencyRepository) List(ctx context.Context, page model.Page) ([]model.Agency, error) {
	rows, err := r.db.Query(ctx, fromTable(agencySelect, "agencies")+`
		ORDER BY a.id
		LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanAgency)
}

func (r *AgencyRepository) GetByID(ctx context.Context, id int64) (*model.Agency, error) {
	agency, err := scanAgency(r.db.QueryRow(ctx, fromTable(agencySelect, "agencies")+` WHERE a.id = $1`, id))
	if err != nil {
		return nil, notFound("agencies", err)
	}
	return &agency, nil
}

func (r *AgencyRepository) Create(ctx context.Context, payload *model.CreateAgencyPayload) (*model.Agency, error) {
	agency, err := scanAgency(r.db.QueryRow(ctx, `
		WITH written AS (
			INSERT INTO agencies (user_id, organization_number, history)
			VALUES ($1, $2, $3)
			RETURNING *
		)`+fromTable(agencySelect, "written"),
		payload.UserID, payload.OrganizationNumber, payload.History,
	))
	if err != nil {
		return nil, err
	}
	return &agency, nil
}

func (r *AgencyRepository) Update(ctx context.Context, payload *model.UpdateAgencyPayload) (*model.Agency, error) {
	var set updateSet
	setIf(&set, "user_id", payload.UserID)
	setIf(&set, "organization_number", payload.OrganizationNumber)
	setIf(&set, "history", payload.History)

	if set.empty() {
		return r.GetByID(ctx, payload.ID)
	}

	update, args := set.statement("agencies", "id", payload.ID, "*")
	agency, err := scanAgency(r.db.QueryRow(ctx,
		`WITH written AS (`+update+`)`+fromTable(agencySelect, "written"),
		args...,
	))
	if err != nil {
		return nil, notFound("agencies", err)
	}
	return &agency, nil
}

func (r *AgencyRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "agencies", `DELETE FROM agencies WHERE id = $1`, id)
}
