package repositories

import (
	"carpool-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
)

// InitSchema creates the roster and distance tables.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createResidentsQuery := `
	CREATE TABLE IF NOT EXISTS area_residents (
		area TEXT NOT NULL,
		person TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (area, person)
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS area_distances (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance DOUBLE PRECISION NOT NULL CHECK (distance >= 0),
		PRIMARY KEY (origin, destination)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_area_residents_position
	ON area_residents(position);
	`

	statements := []string{
		createResidentsQuery,
		createDistancesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedRoster replaces the stored roster with r. Positions preserve roster
// order so the first-listed home area survives a round trip.
func SeedRoster(ctx context.Context, db *sql.DB, r *domain.Roster) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed roster: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM area_residents;`); err != nil {
		return fmt.Errorf("seed roster: clear area_residents: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO area_residents (area, person, position)
	VALUES ($1, $2, $3)
	ON CONFLICT (area, person) DO NOTHING;
	`)
	if err != nil {
		return fmt.Errorf("seed roster: prepare insert: %w", err)
	}
	defer stmt.Close()

	pos := 0
	for _, a := range r.Areas() {
		for _, p := range a.Residents {
			if _, err := stmt.ExecContext(ctx, a.Name, p, pos); err != nil {
				return fmt.Errorf("seed roster: insert area=%q person=%q: %w", a.Name, p, err)
			}
			pos++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed roster: commit tx: %w", err)
	}

	return nil
}

// SeedDistances upserts every entry of m.
func SeedDistances(ctx context.Context, db *sql.DB, m domain.DistanceMatrix) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed distances: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO area_distances (origin, destination, distance)
	VALUES ($1, $2, $3)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance = EXCLUDED.distance;
	`)
	if err != nil {
		return fmt.Errorf("seed distances: prepare insert: %w", err)
	}
	defer stmt.Close()

	origins := make([]string, 0, len(m))
	for o := range m {
		origins = append(origins, o)
	}
	slices.Sort(origins)

	for _, o := range origins {
		for dest, d := range m[o] {
			if _, err := stmt.ExecContext(ctx, o, dest, d); err != nil {
				return fmt.Errorf("seed distances: insert %q -> %q: %w", o, dest, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed distances: commit tx: %w", err)
	}

	return nil
}
