// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package writer

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/neo-engine/internal/engine"
	"github.com/pdiddy/neo-engine/internal/query"
	"github.com/pdiddy/neo-engine/pkg/types"
)

var sqliteSchema = []string{
	`DROP TABLE IF EXISTS orbit_paths`,
	`DROP TABLE IF EXISTS neos`,
	`CREATE TABLE neos (
		name TEXT PRIMARY KEY,
		id TEXT,
		neo_reference_id TEXT,
		nasa_jpl_url TEXT,
		absolute_magnitude_h REAL,
		estimated_diameter_min_kilometers REAL,
		estimated_diameter_max_kilometers REAL,
		is_potentially_hazardous_asteroid INTEGER NOT NULL
	)`,
	`CREATE TABLE orbit_paths (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		neo_name TEXT NOT NULL,
		close_approach_date TEXT NOT NULL,
		close_approach_date_full TEXT,
		kilometers_per_second REAL,
		kilometers_per_hour REAL,
		miles_per_hour REAL,
		miss_distance_astronomical REAL,
		miss_distance_lunar REAL,
		miss_distance_kilometers REAL,
		miss_distance_miles REAL,
		orbiting_body TEXT
	)`,
	`CREATE INDEX idx_orbit_paths_date ON orbit_paths(close_approach_date)`,
}

// writeSQLite stores res in a SQLite database at path, replacing the
// tables of any earlier run. NEO results fill the neos table with their
// orbit paths; Path results fill orbit_paths only.
func writeSQLite(ctx context.Context, path string, res engine.Result) error {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var paths []*types.OrbitPath
	if res.Kind == query.KindPath {
		paths = res.Paths
	} else {
		for _, n := range res.NEOs {
			if err := insertNEO(ctx, tx, n); err != nil {
				return err
			}
			paths = append(paths, n.Orbits()...)
		}
	}
	for _, p := range paths {
		if err := insertPath(ctx, tx, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing results: %w", err)
	}
	return nil
}

func insertNEO(ctx context.Context, tx *sql.Tx, n *types.NearEarthObject) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO neos (name, id, neo_reference_id, nasa_jpl_url, absolute_magnitude_h,
			estimated_diameter_min_kilometers, estimated_diameter_max_kilometers,
			is_potentially_hazardous_asteroid)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.Name, n.ID, n.ReferenceID, n.JPLURL, n.AbsoluteMagnitude,
		nullFloat(n.Diameter.MinKilometers), nullFloat(n.Diameter.MaxKilometers),
		n.Hazardous,
	)
	if err != nil {
		return fmt.Errorf("inserting object %s: %w", n.Name, err)
	}
	return nil
}

func insertPath(ctx context.Context, tx *sql.Tx, p *types.OrbitPath) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO orbit_paths (neo_name, close_approach_date, close_approach_date_full,
			kilometers_per_second, kilometers_per_hour, miles_per_hour,
			miss_distance_astronomical, miss_distance_lunar, miss_distance_kilometers,
			miss_distance_miles, orbiting_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.NEOName, p.CloseApproachDate, p.CloseApproachDateFull,
		p.KilometersPerSecond, p.KilometersPerHour, p.MilesPerHour,
		p.MissDistanceAstronomical, p.MissDistanceLunar, p.MissDistanceKilometers,
		p.MissDistanceMiles, p.OrbitingBody,
	)
	if err != nil {
		return fmt.Errorf("inserting orbit path %s@%s: %w", p.NEOName, p.CloseApproachDate, err)
	}
	return nil
}

func nullFloat(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: !math.IsNaN(f)}
}
