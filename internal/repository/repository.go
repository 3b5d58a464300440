// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
// Every query is parameterised and takes the request context.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/realestate/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories need.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// notFound tags pgx.ErrNoRows with table so the error handler can name the entity.
func notFound(table string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlerr.NotFound(table)
	}
	return err
}

// collect scans every row with scan. Empty results encode as [] rather than null.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// execOne runs a statement that must touch exactly one row of table.
func execOne(ctx context.Context, db DBTX, table, query string, args ...any) error {
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(table)
	}
	return nil
}

// updateSet accumulates "column = $n" assignments for partial updates.
type updateSet struct {
	clauses []string
	args    []any
}

func (u *updateSet) add(column string, value any) {
	u.args = append(u.args, value)
	u.clauses = append(u.clauses, fmt.Sprintf("%s = $%d", column, len(u.args)))
}

func (u *updateSet) empty() bool {
	return len(u.clauses) == 0
}

// statement renders "UPDATE table SET ... WHERE where = $n RETURNING returning".
// The key is appended as the last argument.
func (u *updateSet) statement(table, where string, key any, returning string) (string, []any) {
	args := append(append([]any{}, u.args...), key)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		table, strings.Join(u.clauses, ", "), where, len(args), returning,
	)
	return query, args
}

// setIf adds the assignment only when v is present.
func setIf[T any](u *updateSet, column string, v *T) {
	if v != nil {
		u.add(column, *v)
	}
}

// fromTable fills the FROM target of a select template, so one column list
// serves both plain reads and CTE-backed writes.
func fromTable(selectTemplate, table string) string {
	return fmt.Sprintf(selectTemplate, table)
}
