// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/neo-engine/internal/httputil"
)

// Source describes where a catalog comes from.
type Source struct {
	// Path is a local CSV file or an http(s) URL.
	Path string

	// Timeout bounds a remote download; zero means no limit.
	Timeout time.Duration

	// Retries is passed to httputil.DoWithRetry.
	Retries int

	// Client is used for remote downloads; nil means http.DefaultClient.
	Client *http.Client
}

// Remote reports whether the source is downloaded over HTTP.
func (s Source) Remote() bool {
	return strings.HasPrefix(s.Path, "http://") || strings.HasPrefix(s.Path, "https://")
}

// Open loads the catalog named by s, downloading it first when it is remote.
func Open(ctx context.Context, s Source) (*Catalog, error) {
	if !s.Remote() {
		return LoadFile(s.Path)
	}
	return LoadURL(ctx, s)
}

// LoadURL downloads the CSV at s.Path and loads it into a new catalog. The
// whole body is read before any record is committed.
func LoadURL(ctx context.Context, s Source) (*Catalog, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	body, err := httputil.Fetch(ctx, client, s.Path, s.Retries)
	if err != nil {
		return nil, fmt.Errorf("downloading catalog: %w", err)
	}
	defer body.Close()

	records, err := ReadCSV(body)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", s.Path, err)
	}

	c := New()
	if err := c.Load(records); err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", s.Path, err)
	}
	return c, nil
}
