// Package handler is the HTTP layer behind the router.
//
// Each handler binds a typed payload, lets it validate itself and
// calls one service method. Errors are returned untouched so the global
// error handler can turn them into the API error shape.
package handler
