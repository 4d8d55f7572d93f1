package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"sintagrab"
)

// Each field is recognized by a two-tier strategy: a structural selector
// keyed on the site's markup conventions (ar-pub, ar-year, ar-cited,
// ar-meta classes, detail-page links) and a text-pattern fallback that
// survives markup drift. Every result passes through sintagrab.Normalize
// before entering a record.
var (
	detailHrefRE = regexp.MustCompile(`(?i)documents/detail/`)
	yearRE       = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	doiRE        = regexp.MustCompile(`(?i)\bDOI\s*:\s*([^\s<]+)`)
	doiLabelRE   = regexp.MustCompile(`(?i)\bDOI\s*:`)
	tierRE       = regexp.MustCompile(`(?i)Accred\s*:\s*Sinta\s*(\d)`)
	accredRE     = regexp.MustCompile(`(?i)\bAccred\s*:`)
	orderRE      = regexp.MustCompile(`(?i)\bAuthor Order\b`)
	orderPrefRE  = regexp.MustCompile(`(?i)Author Order\s*:\s*\d+\s*of\s*\d+\s*`)

	// volumeRE matches volume/issue/number tokens in lowercased link text;
	// volumeLineRE is its case-sensitive whole-word cousin for journal lines.
	volumeRE     = regexp.MustCompile(`\bvol\b|\bno\b|\bvolume\b`)
	volumeLineRE = regexp.MustCompile(`\bVol\b|\bNo\b|\bVolume\b`)

	// namePairRE is the "Lastname, Firstname" shape check applied to
	// single-author candidates that carry no list separators.
	namePairRE = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ'’.\- ]+,\s*[A-Za-zÀ-ÖØ-öø-ÿ'’.\- ]+$`)
)

// titleFromItem extracts the publication title. The detail-page link is
// authoritative when present, even if its text turns out empty; otherwise
// the first link that doesn't look like metadata noise wins.
func titleFromItem(item *goquery.Selection) string {
	var title string
	found := false
	item.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if !detailHrefRE.MatchString(href) {
			return true
		}
		found = true
		title = sintagrab.Normalize(renderText(a, " "))
		return false
	})
	if found {
		return title
	}

	item.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		txt := sintagrab.Normalize(renderText(a, " "))
		if txt == "" || utf8.RuneCountInString(txt) < 8 {
			return true
		}
		if isNoiseText(txt) {
			return true
		}
		title = txt
		return false
	})
	return title
}

// isNoiseText reports whether link text is known non-title noise:
// author-order/accreditation/DOI labels or volume-issue-number tokens.
func isNoiseText(txt string) bool {
	low := strings.ToLower(txt)
	if strings.Contains(low, "author order") || strings.Contains(low, "accred") || strings.Contains(low, "doi:") {
		return true
	}
	return volumeRE.MatchString(low)
}

func journalFromItem(item *goquery.Selection) string {
	if pub := item.Find("a.ar-pub").First(); pub.Length() > 0 {
		return sintagrab.Normalize(renderText(pub, " "))
	}
	for _, line := range strings.Split(renderText(item, "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if volumeLineRE.MatchString(line) {
			return sintagrab.Normalize(line)
		}
	}
	return ""
}

func yearFromItem(item *goquery.Selection) string {
	if y := item.Find("a.ar-year").First(); y.Length() > 0 {
		return yearToken(renderText(y, " "))
	}
	return yearToken(renderText(item, " "))
}

// yearToken returns the first 4-digit token in the 1900-2099 range.
func yearToken(text string) string {
	if m := yearRE.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func doiFromItem(item *goquery.Selection) string {
	if cited := item.Find("a.ar-cited").First(); cited.Length() > 0 {
		if doi := doiToken(renderText(cited, " ")); doi != "" {
			return doi
		}
	}
	return doiToken(renderText(item, " "))
}

// doiToken extracts the token after a "DOI:" label. Placeholder values
// the site uses for missing DOIs (a bare dash, em-dash, n/a) count as
// absent.
func doiToken(text string) string {
	m := doiRE.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	doi := strings.TrimSpace(m[1])
	if doi == "-" || doi == "—" {
		return ""
	}
	if low := strings.ToLower(doi); low == "n/a" || low == "na" {
		return ""
	}
	return doi
}

func tierFromItem(item *goquery.Selection) string {
	if m := tierRE.FindStringSubmatch(renderText(item, " ")); m != nil {
		return m[1]
	}
	return ""
}

// authorsFromItem extracts the author list. Stage one reads the ar-meta
// block carrying the "Author Order" marker; stage two falls back to any
// link whose text contains a semicolon, a strong multi-author signal.
func authorsFromItem(item *goquery.Selection) string {
	var meta *goquery.Selection
	item.Find("div.ar-meta").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		if orderRE.MatchString(renderText(div, " ")) {
			meta = div
			return false
		}
		return true
	})
	if meta != nil {
		if authors := authorsFromMeta(renderText(meta, " ")); authors != "" {
			return authors
		}
	}

	var authors string
	item.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		txt := sintagrab.Normalize(renderText(a, " "))
		if txt == "" || isNoiseText(txt) {
			return true
		}
		if strings.Contains(txt, ";") {
			authors = txt
			return false
		}
		return true
	})
	return authors
}

// authorsFromMeta parses an "Author Order: X of Y <names> <year> DOI: ..."
// metadata line. The author names sit between the order prefix and the
// earliest trailing marker (year, DOI label, or Accred label).
func authorsFromMeta(metaText string) string {
	t := sintagrab.Normalize(metaText)
	t = strings.TrimSpace(orderPrefRE.ReplaceAllString(t, ""))

	cut := len(t)
	for _, re := range []*regexp.Regexp{yearRE, doiLabelRE, accredRE} {
		if loc := re.FindStringIndex(t); loc != nil && loc[0] < cut {
			cut = loc[0]
		}
	}

	authors := sintagrab.Normalize(strings.Trim(t[:cut], " -–—|"))
	if authors == "" {
		return ""
	}

	// A single-name candidate without list separators must look like
	// "Lastname, Firstname" or it is likely stray metadata text.
	if !strings.Contains(authors, ";") && !strings.Contains(authors, ",") {
		if !namePairRE.MatchString(authors) {
			return ""
		}
	}
	return authors
}
