// Package pagescan extracts marketing content from a single static landing
// page and renders it as a plain text report for manual inspection.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, slog/).
package pagescan
