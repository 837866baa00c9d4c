// Package store defines the persistence contracts for the task list API.
// The interfaces and record types here keep the application services
// independent of the concrete database; the PostgreSQL implementation
// lives in internal/platform/postgres.
package store
