package sintagrab

import "strings"

// Record represents one bibliographic entry extracted from a listing page.
// Every field is a normalized string; an extractor that finds nothing
// leaves its field empty rather than failing.
type Record struct {
	Title      string `json:"title"`
	Year       string `json:"year"`    // 4-digit year or empty
	Authors    string `json:"authors"` // semicolon- or comma-separated names
	Journal    string `json:"journal"`
	Tier       string `json:"tier"` // accreditation rank, single digit 1-6 or empty
	DOI        string `json:"doi"`
	SourcePage string `json:"sourcePage"` // provenance only, not part of identity
}

// Valid reports whether the record carries enough signal to keep.
// An item yielding neither title, DOI nor journal is parsing noise
// (e.g. a malformed list item) and is discarded before it enters any
// result set.
func (r Record) Valid() bool {
	return r.Title != "" || r.DOI != "" || r.Journal != ""
}

// DedupKey derives the identity value used to decide whether two records
// represent the same underlying publication. A DOI is a strong unique
// identifier and takes precedence even when the remaining metadata differs;
// records without one fall back to exact-match metadata identity. Matching
// is case-insensitive but otherwise exact: no fuzzy comparison.
func (r Record) DedupKey() string {
	if r.DOI != "" {
		return "doi|" + strings.ToLower(r.DOI)
	}
	return strings.Join([]string{
		"meta",
		strings.ToLower(r.Title),
		strings.ToLower(r.Year),
		strings.ToLower(r.Journal),
		strings.ToLower(r.Authors),
	}, "|")
}

// Deduplicate collapses records sharing a DedupKey to the first occurrence
// in input order, preserving the relative order of the survivors.
func Deduplicate(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		key := r.DedupKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
