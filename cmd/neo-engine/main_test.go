package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `id,neo_reference_id,name,nasa_jpl_url,absolute_magnitude_h,estimated_diameter_min_kilometers,estimated_diameter_max_kilometers,estimated_diameter_min_meters,estimated_diameter_max_meters,estimated_diameter_min_miles,estimated_diameter_max_miles,estimated_diameter_min_feet,estimated_diameter_max_feet,is_potentially_hazardous_asteroid,kilometers_per_second,kilometers_per_hour,miles_per_hour,close_approach_date,close_approach_date_full,miss_distance_astronomical,miss_distance_lunar,miss_distance_kilometers,miss_distance_miles,orbiting_body
0,2000433,433 Eros,http://ssd.jpl.nasa.gov/sbdb.cgi?sstr=2000433,10.4,22.0,49.2,22006.7,49208.4,13.6,30.5,72200.4,161445.1,False,5.5,20083.0,12478.8,2020-01-01,2020-Jan-01 01:30,0.3,122.5,50000,31068.5,Earth
1,2000433,433 Eros,http://ssd.jpl.nasa.gov/sbdb.cgi?sstr=2000433,10.4,22.0,49.2,22006.7,49208.4,13.6,30.5,72200.4,161445.1,False,5.7,20621.2,12813.2,2020-01-03,2020-Jan-03 03:31,0.03,12.9,5000,3106.8,Earth
2,3542519,(2010 PK9),http://ssd.jpl.nasa.gov/sbdb.cgi?sstr=3542519,21.6,0.1,0.3,139.5,311.9,0.08,0.19,457.6,1023.3,True,12.1,43560.0,27066.8,2020-01-01,2020-Jan-01 12:00,0.4,155.6,59840000,37183000,Earth
`

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "neos.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--catalog", path))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestQueryCommand(t *testing.T) {
	out, err := run(t, "query", "--start-date", "2020-01-01", "--end-date", "2020-01-03", "--filter", "distance:<:10000")
	require.NoError(t, err)

	assert.Contains(t, out, "433 Eros")
	assert.NotContains(t, out, "2010 PK9")
	assert.Contains(t, out, "1 objects")
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "show", "433 Eros")
	require.NoError(t, err)

	assert.Contains(t, out, "433 Eros")
	assert.Contains(t, out, "2020-01-01")
	assert.Contains(t, out, "2020-01-03")
	assert.Contains(t, out, "2 orbit paths")

	_, err = run(t, "show", "433 eros")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog", "--json")
	require.NoError(t, err)

	assert.Contains(t, out, `"objects": 2`)
	assert.Contains(t, out, `"orbits": 3`)
	assert.Contains(t, out, `"hazardous": 1`)
	assert.Contains(t, out, `"first_date": "2020-01-01"`)
}
