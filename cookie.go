package sintagrab

import "encoding/json"

// Cookie is a single session credential parsed from a browser cookie
// export. Domain and Path may be empty; the HTTP layer fills in defaults
// derived from the profile URL.
type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain"`
	Path   string `json:"path"`
}

// ParseCookies decodes a cookie export document. Both common export shapes
// are accepted: a bare array of cookie objects (Chrome extension style) or
// an object wrapping the array as {"cookies":[...]}. Entries without a
// name are skipped. Any other payload returns EINVALID.
func ParseCookies(data []byte) ([]Cookie, error) {
	var wrapper struct {
		Cookies []Cookie `json:"cookies"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Cookies != nil {
		return named(wrapper.Cookies), nil
	}

	var list []Cookie
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, Errorf(EINVALID, `cookie JSON must be a list or {"cookies":[...]}`)
	}
	return named(list), nil
}

// named filters out cookies with no name.
func named(cookies []Cookie) []Cookie {
	out := cookies[:0]
	for _, c := range cookies {
		if c.Name == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}
