// Package postgres implements the todo repository and the database health
// check on top of a pgx connection pool.
//
// The pool is created lazily: NewPool never dials, so the service starts
// even when the database is unreachable and the first query (or readiness
// probe) surfaces the failure.
package postgres
