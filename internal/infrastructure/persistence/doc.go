// Package persistence implements the catalog, account, tutoring and
// notification repositories on GORM, against PostgreSQL or SQLite.
// Repositories validate domain entities before writing and map driver
// errors onto the domain error values.
package persistence
