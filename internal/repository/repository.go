// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the handler layer.
//
// Every entity repository is built on the same pieces: a FieldSet fixing
// the entity's column order, Decompose turning a change-set map into
// ordered keys/values/placeholders, and a generic crud core that scans
// rows by column name and validates enum values on the way out.
package repository
