// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceRemote(t *testing.T) {
	assert.True(t, Source{Path: "https://example.com/neos.csv"}.Remote())
	assert.True(t, Source{Path: "http://localhost:8080/neos.csv"}.Remote())
	assert.False(t, Source{Path: "data/neo_data.csv"}.Remote())
	assert.False(t, Source{Path: "/srv/https/neos.csv"}.Remote())
}

func TestOpenLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neos.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	c, err := Open(context.Background(), Source{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestOpenURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		io.WriteString(w, sampleCSV)
	}))
	defer ts.Close()

	c, err := Open(context.Background(), Source{
		Path:    ts.URL + "/neos.csv",
		Timeout: 5 * time.Second,
		Client:  ts.Client(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Stats().Orbits)
}

func TestOpenURLNotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	_, err := Open(context.Background(), Source{Path: ts.URL + "/missing.csv", Client: ts.Client()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "downloading catalog")
}

func TestOpenURLMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "name,close_approach_date\nEros\n")
	}))
	defer ts.Close()

	_, err := Open(context.Background(), Source{Path: ts.URL, Client: ts.Client()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataFormat))
}
