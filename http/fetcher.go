// Package http provides the HTTP-based implementation of sintagrab.Fetcher
// used to retrieve listing pages over an authenticated browser session.
package http

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"sintagrab"
)

// DefaultFetchTimeout is the default per-request timeout.
const DefaultFetchTimeout = 25 * time.Second

// Session headers sent with every request. The site serves a login
// interstitial to obviously non-browser clients.
const (
	defaultUserAgent = "Mozilla/5.0"
	acceptLanguage   = "en-US,en;q=0.9,id;q=0.8"
)

// Ensure Fetcher implements sintagrab.Fetcher at compile time.
var _ sintagrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw HTML over HTTP with a cookie-backed session.
// It does not execute JavaScript; the target listing is static HTML.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	cookies   []sintagrab.Cookie
	baseURL   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (25s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithCookies seeds the session with login credentials. baseURL supplies
// the default domain for cookies that don't carry one.
func WithCookies(cookies []sintagrab.Cookie, baseURL string) Option {
	return func(f *Fetcher) {
		f.cookies = cookies
		f.baseURL = baseURL
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	if len(f.cookies) > 0 {
		if err := seedJar(jar, f.cookies, f.baseURL); err != nil {
			return nil, err
		}
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		Jar:     jar,
	}

	return f, nil
}

// seedJar loads session cookies into the jar, defaulting the domain to
// the profile host and the path to "/" where the export omits them.
func seedJar(jar http.CookieJar, cookies []sintagrab.Cookie, baseURL string) error {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return sintagrab.Errorf(sintagrab.EINVALID, "invalid base URL %q for session cookies", baseURL)
	}

	for _, c := range cookies {
		domain := c.Domain
		if domain == "" {
			domain = base.Host
		}
		path := c.Path
		if path == "" {
			path = "/"
		}
		u := &url.URL{
			Scheme: base.Scheme,
			Host:   strings.TrimPrefix(domain, "."),
			Path:   path,
		}
		jar.SetCookies(u, []*http.Cookie{{
			Name:   c.Name,
			Value:  c.Value,
			Domain: domain,
			Path:   path,
		}})
	}
	return nil
}

// Fetch retrieves the page at rawurl. It fails only on transport errors;
// a non-2xx response still returns the status and body, since the caller
// reports the status and a recognizable error page simply yields no rows.
func (f *Fetcher) Fetch(ctx context.Context, rawurl string) (*sintagrab.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &sintagrab.FetchResult{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
