package sintagrab

// PageParser turns one listing page's HTML into bibliographic records.
type PageParser interface {
	// ParsePage extracts all valid records from the page in document order,
	// tagging each with source as its provenance. A malformed list item
	// never aborts the page; it simply yields no record.
	ParsePage(html, source string) ([]Record, error)
}
