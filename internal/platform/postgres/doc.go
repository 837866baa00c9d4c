// Package postgres implements the store contracts on PostgreSQL using
// database/sql over the pgx stdlib driver. Constraint violations are
// translated into the store package's sentinel errors so callers never
// see driver-specific error types.
package postgres
