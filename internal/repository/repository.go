package repository

import (
	"context"
	"errors"

	"rrgraph/internal/domain"
)

// ErrNotFound is returned by DeleteGraph when no graph has the given id
var ErrNotFound = errors.New("graph not found")

// Repository defines the interface for graph data access
type Repository interface {
	// SaveGraph stores g under id. Saving over an existing id fails.
	SaveGraph(ctx context.Context, id string, g *domain.Graph) error

	// GetGraph returns nil, nil when id is unknown
	GetGraph(ctx context.Context, id string) (*domain.Graph, error)

	// ListGraphs returns summaries, newest first
	ListGraphs(ctx context.Context) ([]domain.GraphSummary, error)

	DeleteGraph(ctx context.Context, id string) error

	// Close releases resources
	Close() error
}
