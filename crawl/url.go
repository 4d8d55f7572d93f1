package crawl

import (
	"net/url"
	"strconv"
	"strings"

	"sintagrab"
)

// NormalizeProfileURL canonicalizes a pasted profile URL: it forces the
// accreditation-aware garuda listing view and strips any page parameter,
// which the crawl loop manages itself. Any listing page of the profile is
// an acceptable input.
func NormalizeProfileURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", sintagrab.Errorf(sintagrab.EINVALID, "invalid profile URL %q", raw)
	}

	q := u.Query()
	q.Set("view", "garuda")
	q.Del("page")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// PageURL returns the listing URL for the given 1-based page index.
// Page 1 omits the page parameter entirely; the site treats an absent
// parameter and page=1 as the same view, and keeping them identical makes
// the duplicate-page stop fire reliably when pagination stops advancing.
func PageURL(base string, page int) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", sintagrab.Errorf(sintagrab.EINVALID, "invalid base URL %q", base)
	}

	q := u.Query()
	q.Set("view", "garuda")
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	} else {
		q.Del("page")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
