// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data. Failures are wrapped with the operation that
// produced them; sqlerr still sees the database error underneath.
package service
