package repositories

import (
	"carpool-service/internal/domain"
	"carpool-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the RosterRepository and
// DistanceMatrixProvider ports.
type PostgresRepository struct{ DB *sql.DB }

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// Return the roster with areas in the order their first resident was seeded.
func (p *PostgresRepository) LoadRoster(ctx context.Context) (_ *domain.Roster, err error) {
	defer obs.Time(ctx, "postgres.LoadRoster")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres repository: DB is nil")
	}

	query := `
	SELECT
		area,
		person
	FROM area_residents
	ORDER BY position, area, person;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load roster: query area_residents table: %w", err)
	}
	defer rows.Close()

	var areas []domain.Area
	for rows.Next() {
		var area, person string
		if err := rows.Scan(&area, &person); err != nil {
			return nil, fmt.Errorf("load roster: scan row: %w", err)
		}
		areas = append(areas, domain.Area{Name: area, Residents: []string{person}})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load roster: row iteration: %w", err)
	}

	return domain.NewRoster(areas), nil
}

func (p *PostgresRepository) GetDistance(ctx context.Context, origin, destination string) (float64, error) {
	row, err := p.GetDistances(ctx, origin, []string{destination})
	if err != nil {
		return 0, err
	}
	d, ok := row[destination]
	if !ok {
		return 0, &domain.MissingDistanceError{From: origin, To: destination}
	}
	return d, nil
}

// Fetch distances from one origin to many destinations. Unknown
// destinations are omitted; an unknown origin is a MissingDistanceError.
func (p *PostgresRepository) GetDistances(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]float64, err error) {
	defer obs.Time(ctx, "postgres.GetDistances")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres repository: DB is nil")
	}

	var known bool
	if err := p.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM area_distances WHERE origin = $1);`, origin,
	).Scan(&known); err != nil {
		return nil, fmt.Errorf("get distances: check origin %q: %w", origin, err)
	}
	if !known {
		return nil, &domain.MissingDistanceError{From: origin}
	}

	if len(destinations) == 0 {
		return map[string]float64{}, nil
	}

	q := `
	SELECT destination, distance
	FROM area_distances
	WHERE origin = $1
		AND destination = ANY($2::text[]);
	`

	rows, err := p.DB.QueryContext(ctx, q, origin, destinations)
	if err != nil {
		return nil, fmt.Errorf("get distances: query area_distances table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]float64, len(destinations))
	for rows.Next() {
		var dest string
		var d float64
		if err := rows.Scan(&dest, &d); err != nil {
			return nil, fmt.Errorf("get distances: scan rows: %w", err)
		}
		out[dest] = d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get distances: row iteration: %w", err)
	}

	return out, nil
}
