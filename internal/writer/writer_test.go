// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package writer

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/neo-engine/internal/engine"
	"github.com/pdiddy/neo-engine/internal/query"
	"github.com/pdiddy/neo-engine/pkg/types"
)

// --- test helpers ---

func sampleNEOs() []*types.NearEarthObject {
	eros := &types.NearEarthObject{
		ID: "0", ReferenceID: "2000433", Name: "433 Eros (A898 PA)",
		AbsoluteMagnitude: 10.4,
		Diameter:          types.Diameters{MinKilometers: 22.0067, MaxKilometers: 49.2084, MinFeet: math.NaN()},
	}
	eros.AppendOrbit(&types.OrbitPath{NEOName: eros.Name, CloseApproachDate: "2020-01-01", MissDistanceKilometers: 50000, OrbitingBody: "Earth"})
	eros.AppendOrbit(&types.OrbitPath{NEOName: eros.Name, CloseApproachDate: "2020-01-03", MissDistanceKilometers: 5000, OrbitingBody: "Earth"})

	apophis := &types.NearEarthObject{
		ID: "1", ReferenceID: "2099942", Name: "99942 Apophis (2004 MN4)",
		AbsoluteMagnitude: 19.7, Hazardous: true,
		Diameter: types.Diameters{MinKilometers: math.NaN(), MaxKilometers: math.NaN()},
	}
	apophis.AppendOrbit(&types.OrbitPath{NEOName: apophis.Name, CloseApproachDate: "2029-04-13", MissDistanceKilometers: 38017, OrbitingBody: "Earth"})
	return []*types.NearEarthObject{eros, apophis}
}

func neoResult() engine.Result {
	return engine.Result{Kind: query.KindNEO, NEOs: sampleNEOs(), DupsRemoved: 1}
}

func pathResult() engine.Result {
	var paths []*types.OrbitPath
	for _, n := range sampleNEOs() {
		paths = append(paths, n.Orbits()...)
	}
	return engine.Result{Kind: query.KindPath, Paths: paths}
}

// --- formats ---

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("pdf")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestUnknownFormatWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.pdf")
	w := &Writer{Out: &buf, Path: path}

	err := w.Write(context.Background(), "pdf", neoResult())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Zero(t, buf.Len())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileFormatsNeedPath(t *testing.T) {
	w := &Writer{Out: &bytes.Buffer{}}
	err := w.Write(context.Background(), string(CSVFile), neoResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs an output path")
}

// --- display ---

func TestDisplayNEOs(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{Out: &buf}
	require.NoError(t, w.Write(context.Background(), string(Display), neoResult()))

	out := buf.String()
	assert.Contains(t, out, "neo_reference_id")
	assert.Contains(t, out, "433 Eros (A898 PA)")
	assert.Contains(t, out, "99942 Apophis (2004 MN4)")
	assert.Contains(t, out, "2 objects (1 duplicates removed)")
}

func TestDisplayPaths(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{Out: &buf}
	require.NoError(t, w.Write(context.Background(), string(Display), pathResult()))

	out := buf.String()
	assert.Contains(t, out, "close_approach_date")
	assert.Contains(t, out, "2029-04-13")
	assert.Contains(t, out, "3 orbit paths")
}

func TestDisplayEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{Out: &buf}
	require.NoError(t, w.Write(context.Background(), string(Display), engine.Result{Kind: query.KindNEO}))
	assert.Equal(t, "No results found.\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

// --- files ---

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neos.csv")
	w := &Writer{Path: path}
	require.NoError(t, w.Write(context.Background(), string(CSVFile), neoResult()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, types.NEOHeader, records[0])
	assert.Equal(t, "433 Eros (A898 PA)", records[1][2])
	assert.Equal(t, "2", records[1][len(records[1])-1])
	assert.Equal(t, "", records[2][5], "unknown diameter is empty")
	assert.Equal(t, "true", records[2][7])
}

func TestWriteCSVPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paths.csv")
	w := &Writer{Path: path}
	require.NoError(t, w.Write(context.Background(), string(CSVFile), pathResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "neo_name,close_approach_date"))
	assert.Contains(t, lines[2], "2020-01-03")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neos.json")
	w := &Writer{Path: path}
	require.NoError(t, w.Write(context.Background(), string(JSONFile), neoResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []NEOEntry
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Len(t, got[0].Orbits, 2)
	require.NotNil(t, got[0].DiameterMinKm)
	assert.Nil(t, got[1].DiameterMinKm)
	assert.True(t, got[1].Hazardous)
}

func TestWriteYAMLPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paths.yaml")
	w := &Writer{Path: path}
	require.NoError(t, w.Write(context.Background(), string(YAMLFile), pathResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []PathEntry
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Len(t, got, 3)
	assert.Equal(t, 38017.0, got[2].MissDistanceKm)
}

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	w := &Writer{Path: path}
	ctx := context.Background()

	// Writing twice replaces the first run.
	require.NoError(t, w.Write(ctx, string(SQLiteFile), neoResult()))
	require.NoError(t, w.Write(ctx, string(SQLiteFile), neoResult()))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var neos, paths int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM neos`).Scan(&neos))
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM orbit_paths`).Scan(&paths))
	assert.Equal(t, 2, neos)
	assert.Equal(t, 3, paths)

	var diameter sql.NullFloat64
	require.NoError(t, db.QueryRow(
		`SELECT estimated_diameter_min_kilometers FROM neos WHERE name = ?`, "99942 Apophis (2004 MN4)",
	).Scan(&diameter))
	assert.False(t, diameter.Valid)
}
