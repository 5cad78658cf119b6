// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in the store package. It maps database-level failures
// (unique violations, missing rows, foreign key violations) onto the
// store package's sentinel errors.
package postgres
