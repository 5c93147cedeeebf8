// Package queries contains read-only use cases. Handlers read straight from
// the database into flat response structs and never load aggregates.
package queries
