// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the error taxonomy that adapters translate to and from: ErrNotFound
// for missing rows, StoreError for anything the database reports, and
// ValidationError for requests that cannot be decoded at all.
package domain
