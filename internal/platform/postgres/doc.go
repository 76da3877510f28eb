// Package postgres provides PostgreSQL-backed implementations of the store
// interfaces, built on database/sql with the pgx driver. Postgres error
// codes are translated into the store package's sentinel errors so callers
// never depend on driver details.
package postgres
