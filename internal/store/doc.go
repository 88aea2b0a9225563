// Package store defines the persistence interfaces and the shared error
// taxonomy used by their implementations. Services and handlers depend on
// these interfaces only; the concrete PostgreSQL implementations live in
// internal/platform/postgres.
package store
