// Package sintagrab extracts bibliographic records from the paginated
// publication listing of a SINTA author profile. It crawls the garuda
// listing view page by page, recognizes per-item fields through layered
// heuristics, deduplicates the result, and exports it as
// semicolon-delimited text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/).
package sintagrab
