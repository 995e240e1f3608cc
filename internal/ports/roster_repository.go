package ports

import (
	"carpool-service/internal/domain"
	"context"
)

// Port: a boundary for retrieving the area roster from a data source.
type RosterRepository interface {
	// Retrieve every area with its residents, in roster order.
	LoadRoster(ctx context.Context) (*domain.Roster, error)
}
