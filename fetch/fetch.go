// Package fetch downloads the editor and blocks catalogs of a language from
// the translation server.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/scratchblocks/sblocales/pofile"
)

// DefaultBaseURL is the download root of the translation server.
const DefaultBaseURL = "http://translate.scratch.mit.edu/download"

// DefaultMaxAttempts is how many times the catalog pair is requested before
// a language is given up: the first try plus one retry.
const DefaultMaxAttempts = 2

// Catalog paths below <base>/<lang>/.
const (
	EditorPath = "editor/editor.po"
	BlocksPath = "blocks/blocks.po"
)

// Bundle holds both catalogs of one language.
type Bundle struct {
	Lang   string
	Editor pofile.Catalog
	Blocks pofile.Catalog
}

// StatusError is returned for a non-2xx response.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed fetching %s with code %s", e.URL, e.Status)
}

// Options configure a Client.
type Options struct {
	BaseURL     string
	MaxAttempts int
	Timeout     time.Duration
	// RequestsPerSecond throttles requests across all languages; 0 disables
	// throttling.
	RequestsPerSecond float64
	UserAgent         string
	HTTPClient        *http.Client
	Logger            *slog.Logger
}

// Client fetches catalogs. It is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxAttempts int
	userAgent   string
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// New creates a Client, filling unset options with defaults.
func New(opts Options) *Client {
	c := &Client{
		httpClient:  opts.HTTPClient,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		maxAttempts: opts.MaxAttempts,
		userAgent:   opts.UserAgent,
		logger:      opts.Logger,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: opts.Timeout}
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.maxAttempts < 1 {
		c.maxAttempts = DefaultMaxAttempts
	}
	if c.userAgent == "" {
		c.userAgent = "sblocales"
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return c
}

// URL returns the download URL of a catalog of lang.
func (c *Client) URL(lang, path string) string {
	return c.baseURL + "/" + lang + "/" + path
}

// Fetch downloads the editor and blocks catalogs of lang. The pair is
// requested again as a whole when either request fails, up to the
// configured number of attempts. Either both catalogs are returned or an
// error naming the language.
func (c *Client) Fetch(ctx context.Context, lang string) (*Bundle, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		b, err := c.fetchPair(ctx, lang)
		if err == nil {
			return b, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		if attempt < c.maxAttempts {
			c.logger.Warn("Fetch failed, retrying", "lang", lang, "attempt", attempt, "error", err)
		}
	}
	return nil, fmt.Errorf("fetching %s failed: %w", lang, lastErr)
}

func (c *Client) fetchPair(ctx context.Context, lang string) (*Bundle, error) {
	editor, err := c.fetchCatalog(ctx, lang, EditorPath)
	if err != nil {
		return nil, err
	}
	blocks, err := c.fetchCatalog(ctx, lang, BlocksPath)
	if err != nil {
		return nil, err
	}
	return &Bundle{Lang: lang, Editor: editor, Blocks: blocks}, nil
}

func (c *Client) fetchCatalog(ctx context.Context, lang, path string) (pofile.Catalog, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	u := c.URL(lang, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("Network Request", "url", u)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: u, Code: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", u, err)
	}
	catalog, err := pofile.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", u, err)
	}

	if c.logger.Enabled(ctx, slog.LevelDebug) {
		if missed := pofile.Unreadable(data, catalog); len(missed) > 0 {
			c.logger.Debug("Catalog entries skipped by line scanner", "url", u, "count", len(missed))
		}
	}
	return catalog, nil
}

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
