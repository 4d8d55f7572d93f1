package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// renderText walks the selection's nodes and joins the trimmed text
// segments with sep. Unlike goquery's Text(), which concatenates text
// nodes with no separator, this preserves a boundary between adjacent
// elements ("2021" and "DOI: ..." stay distinct tokens) and allows
// line-oriented matching when sep is "\n".
func renderText(sel *goquery.Selection, sep string) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, sep)
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
