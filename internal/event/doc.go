// Package event provides the canonical event model for Sympla course listings.
//
// The event package turns raw API records into validated Event values: it
// resolves heterogeneous date fields through a fixed fallback chain, filters
// titles to the tracked course offerings by keyword, assigns each event a
// category and canonical session time, and deduplicates accepted events by ID.
package event
