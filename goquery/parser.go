// Package goquery implements HTML field extraction and page parsing for
// the profile listing using CSS selectors, with text-pattern fallbacks
// for fields whose structural markers have drifted.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sintagrab"
)

// Ensure Parser implements sintagrab.PageParser at compile time.
var _ sintagrab.PageParser = (*Parser)(nil)

// Parser extracts bibliographic records from a listing page.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParsePage extracts all valid records from one page's HTML in document
// order. Each list item runs through all six field extractors; items that
// yield neither title, DOI nor journal are dropped as noise.
func (p *Parser) ParsePage(html, source string) ([]sintagrab.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sintagrab.Errorf(sintagrab.EINVALID, "failed to parse HTML: %v", err)
	}

	var records []sintagrab.Record
	doc.Find("div.ar-list-item").Each(func(_ int, item *goquery.Selection) {
		rec := sintagrab.Record{
			Title:      titleFromItem(item),
			Year:       yearFromItem(item),
			Authors:    authorsFromItem(item),
			Journal:    journalFromItem(item),
			Tier:       tierFromItem(item),
			DOI:        doiFromItem(item),
			SourcePage: source,
		}
		if !rec.Valid() {
			return
		}
		records = append(records, rec)
	})
	return records, nil
}
