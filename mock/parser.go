package mock

import "sintagrab"

var _ sintagrab.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of sintagrab.PageParser.
type PageParser struct {
	ParsePageFn func(html, source string) ([]sintagrab.Record, error)
}

func (p *PageParser) ParsePage(html, source string) ([]sintagrab.Record, error) {
	return p.ParsePageFn(html, source)
}
