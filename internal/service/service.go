package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/rs/xid"

	"rrgraph/internal/builder"
	"rrgraph/internal/codec"
	"rrgraph/internal/domain"
	"rrgraph/internal/repository"
)

var (
	// ErrGraphNotFound is returned when no stored graph has the requested id
	ErrGraphNotFound = errors.New("graph not found")
	// ErrInvalidGraph is returned when input cannot be turned into a valid graph
	ErrInvalidGraph = errors.New("invalid graph")
)

// GraphService provides business logic for graph operations
type GraphService struct {
	repo     repository.Repository
	eventBus *EventBus
}

// NewGraphService creates a new graph service
func NewGraphService(repo repository.Repository, eventBus *EventBus) *GraphService {
	return &GraphService{
		repo:     repo,
		eventBus: eventBus,
	}
}

// graphEvent is the payload of graph events
type graphEvent struct {
	GraphID   string `json:"graph_id"`
	NodeCount int    `json:"node_count,omitempty"`
	EdgeCount int    `json:"edge_count,omitempty"`
}

// BuildGraph builds a graph from spec and stores it. It returns the new id.
func (s *GraphService) BuildGraph(ctx context.Context, spec *domain.BuildSpec) (string, *domain.Graph, error) {
	g, err := builder.Build(spec)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	id, err := s.save(ctx, g)
	if err != nil {
		return "", nil, err
	}

	log.Printf("Built graph %s: %d nodes, %d edges", id, len(g.Nodes), len(g.Edges))
	s.publish(EventGraphBuilt, id, g)

	return id, g, nil
}

// ImportGraph parses a graph in the given format and stores it
func (s *GraphService) ImportGraph(ctx context.Context, format string, r io.Reader) (string, *domain.Graph, error) {
	c, err := codec.Lookup(format)
	if err != nil {
		return "", nil, err
	}

	g, err := c.Parse(r)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	id, err := s.save(ctx, g)
	if err != nil {
		return "", nil, err
	}

	log.Printf("Imported %s graph %s: %d nodes, %d edges", format, id, len(g.Nodes), len(g.Edges))
	s.publish(EventGraphImported, id, g)

	return id, g, nil
}

func (s *GraphService) save(ctx context.Context, g *domain.Graph) (string, error) {
	if err := g.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	id := xid.New().String()
	if err := s.repo.SaveGraph(ctx, id, g); err != nil {
		return "", fmt.Errorf("failed to save graph: %w", err)
	}
	return id, nil
}

func (s *GraphService) publish(t EventType, id string, g *domain.Graph) {
	payload := graphEvent{GraphID: id}
	if g != nil {
		payload.NodeCount = len(g.Nodes)
		payload.EdgeCount = len(g.Edges)
	}
	s.eventBus.Publish(Event{Type: t, Payload: payload})
}

// GetGraph returns a stored graph
func (s *GraphService) GetGraph(ctx context.Context, id string) (*domain.Graph, error) {
	g, err := s.repo.GetGraph(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: %s", ErrGraphNotFound, id)
	}
	return g, nil
}

// ListGraphs returns summaries of all stored graphs
func (s *GraphService) ListGraphs(ctx context.Context) ([]domain.GraphSummary, error) {
	return s.repo.ListGraphs(ctx)
}

// DeleteGraph removes a stored graph
func (s *GraphService) DeleteGraph(ctx context.Context, id string) error {
	if err := s.repo.DeleteGraph(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrGraphNotFound, id)
		}
		return err
	}

	log.Printf("Deleted graph %s", id)
	s.publish(EventGraphDeleted, id, nil)
	return nil
}

// ExportGraph writes a stored graph to w in the given format. Nothing is
// written when encoding fails.
func (s *GraphService) ExportGraph(ctx context.Context, id, format string, w io.Writer) error {
	c, err := codec.Lookup(format)
	if err != nil {
		return err
	}

	g, err := s.GetGraph(ctx, id)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := c.Export(g, &buf); err != nil {
		return fmt.Errorf("failed to export graph %s: %w", id, err)
	}

	_, err = buf.WriteTo(w)
	return err
}
