// Package sqlerr translates database driver errors.
//
// It turns PostgreSQL SQLSTATE codes into a small set of
// categories and those categories into API errors, so a
// foreign key violation becomes a 400 with a readable message
// instead of a 500 with driver text.
package sqlerr
