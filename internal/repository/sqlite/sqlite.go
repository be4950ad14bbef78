package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rrgraph/internal/domain"
	"rrgraph/internal/repository"

	_ "modernc.org/sqlite"
)

// Repository implements repository.Repository using SQLite
type Repository struct {
	db *sql.DB
}

var _ repository.Repository = (*Repository)(nil)

// New creates a new SQLite repository. dbPath ":memory:" opens a private
// in-memory database.
func New(dbPath string) (*Repository, error) {
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	if dbPath != ":memory:" {
		dsn += "&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS graphs (
		id TEXT PRIMARY KEY,
		tool_name TEXT NOT NULL,
		tool_version TEXT,
		tool_comment TEXT,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS nodes (
		graph_id TEXT NOT NULL,
		idx INTEGER NOT NULL,
		id INTEGER NOT NULL,
		type TEXT NOT NULL,
		direction TEXT,
		capacity INTEGER NOT NULL,
		xlow INTEGER NOT NULL,
		xhigh INTEGER NOT NULL,
		ylow INTEGER NOT NULL,
		yhigh INTEGER NOT NULL,
		ptc INTEGER NOT NULL,
		PRIMARY KEY (graph_id, idx),
		FOREIGN KEY (graph_id) REFERENCES graphs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS edges (
		graph_id TEXT NOT NULL,
		idx INTEGER NOT NULL,
		src_node INTEGER NOT NULL,
		sink_node INTEGER NOT NULL,
		switch_id INTEGER NOT NULL,
		PRIMARY KEY (graph_id, idx),
		FOREIGN KEY (graph_id) REFERENCES graphs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_graphs_created ON graphs(created_at);
	CREATE INDEX IF NOT EXISTS idx_edges_src ON edges(graph_id, src_node);
	`

	_, err := r.db.Exec(schema)
	return err
}

// SaveGraph stores a graph and all of its nodes and edges in one transaction
func (r *Repository) SaveGraph(ctx context.Context, id string, g *domain.Graph) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO graphs (id, tool_name, tool_version, tool_comment, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, g.Tool.Name, stringToNull(g.Tool.Version), stringToNull(g.Tool.Comment), time.Now().UnixNano()); err != nil {
		return fmt.Errorf("failed to insert graph %s: %w", id, err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO nodes (graph_id, idx, `+nodeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare node statement: %w", err)
	}
	defer nodeStmt.Close()

	for i := range g.Nodes {
		args := append([]interface{}{id, i}, nodeInsertArgs(&g.Nodes[i])...)
		if _, err := nodeStmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert node %d: %w", i, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO edges (graph_id, idx, `+edgeColumns+`)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare edge statement: %w", err)
	}
	defer edgeStmt.Close()

	for i, e := range g.Edges {
		if _, err := edgeStmt.ExecContext(ctx, id, i, e.SrcNode, e.SinkNode, e.SwitchID); err != nil {
			return fmt.Errorf("failed to insert edge %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetGraph retrieves a graph by ID
func (r *Repository) GetGraph(ctx context.Context, id string) (*domain.Graph, error) {
	var (
		tool             domain.Tool
		version, comment sql.NullString
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT tool_name, tool_version, tool_comment FROM graphs WHERE id = ?
	`, id).Scan(&tool.Name, &version, &comment)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query graph: %w", err)
	}

	tool.Version = nullToString(version)
	tool.Comment = nullToString(comment)
	g := domain.NewGraph(tool)

	if err := r.loadNodes(ctx, id, g); err != nil {
		return nil, err
	}
	if err := r.loadEdges(ctx, id, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (r *Repository) loadNodes(ctx context.Context, graphID string, g *domain.Graph) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+nodeColumns+` FROM nodes WHERE graph_id = ? ORDER BY idx
	`, graphID)
	if err != nil {
		return fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row nodeRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return fmt.Errorf("failed to scan node: %w", err)
		}
		g.AddNode(row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating nodes: %w", err)
	}
	return nil
}

func (r *Repository) loadEdges(ctx context.Context, graphID string, g *domain.Graph) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+edgeColumns+` FROM edges WHERE graph_id = ? ORDER BY idx
	`, graphID)
	if err != nil {
		return fmt.Errorf("failed to query edges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row edgeRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return fmt.Errorf("failed to scan edge: %w", err)
		}
		g.AddEdge(row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating edges: %w", err)
	}
	return nil
}

// ListGraphs returns a summary of every stored graph, newest first
func (r *Repository) ListGraphs(ctx context.Context) ([]domain.GraphSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.tool_name, g.created_at,
			(SELECT COUNT(*) FROM nodes n WHERE n.graph_id = g.id),
			(SELECT COUNT(*) FROM edges e WHERE e.graph_id = g.id)
		FROM graphs g
		ORDER BY g.created_at DESC, g.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query graphs: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.GraphSummary, 0)
	for rows.Next() {
		var (
			s         domain.GraphSummary
			createdAt int64
		)
		if err := rows.Scan(&s.ID, &s.ToolName, &createdAt, &s.NodeCount, &s.EdgeCount); err != nil {
			return nil, fmt.Errorf("failed to scan graph: %w", err)
		}
		s.CreatedAt = time.Unix(0, createdAt)
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating graphs: %w", err)
	}

	return summaries, nil
}

// DeleteGraph removes a graph with its nodes and edges
func (r *Repository) DeleteGraph(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Children first, then the graph row
	if _, err := tx.ExecContext(ctx, `DELETE FROM edges WHERE graph_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete edges: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM nodes WHERE graph_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete nodes: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM graphs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete graph: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
