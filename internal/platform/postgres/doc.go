// Package postgres provides PostgreSQL-backed implementations of the
// persistence interfaces in internal/store. The implementations work over
// store.DBTX, so they run equally against a *sql.DB or inside a *sql.Tx.
// All queries are parameterized; user input never reaches query text.
package postgres
