package sqlite

import (
	"database/sql"

	"rrgraph/internal/domain"
)

// ============================================================================
// Null Type Conversion Helpers
// ============================================================================

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNull safely converts string to sql.NullString
func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// ============================================================================
// Schema Evolution Guide
// ============================================================================
//
// To add a new column to the nodes table:
// 1. Add field to nodeRow struct (below)
// 2. Update scanArgs() - APPEND to end to match column order
// 3. Update nodeColumns constant - APPEND to end
// 4. Update toDomain() and nodeInsertArgs()
// 5. Add one placeholder to the INSERT in SaveGraph
//
// CRITICAL: Column order must match between nodeColumns, scanArgs() and
// nodeInsertArgs(). Same pattern applies to edges.

// ============================================================================
// Node Row Scanner
// ============================================================================

// nodeRow holds all columns from a node query for scanning
type nodeRow struct {
	ID        uint32
	Type      string
	Direction sql.NullString
	Capacity  uint32
	XLow      uint16
	XHigh     uint16
	YLow      uint16
	YHigh     uint16
	Ptc       uint16
}

// scanArgs returns pointers to all fields for sql.Scan()
// MUST match nodeColumns order exactly
func (r *nodeRow) scanArgs() []interface{} {
	return []interface{}{
		&r.ID,        // 1
		&r.Type,      // 2
		&r.Direction, // 3
		&r.Capacity,  // 4
		&r.XLow,      // 5
		&r.XHigh,     // 6
		&r.YLow,      // 7
		&r.YHigh,     // 8
		&r.Ptc,       // 9
	}
}

// toDomain converts the scanned row to a domain.Node
func (r *nodeRow) toDomain() domain.Node {
	return domain.Node{
		ID:        r.ID,
		Type:      domain.NodeType(r.Type),
		Direction: domain.NodeDirection(nullToString(r.Direction)),
		Capacity:  r.Capacity,
		XLow:      r.XLow,
		XHigh:     r.XHigh,
		YLow:      r.YLow,
		YHigh:     r.YHigh,
		Ptc:       r.Ptc,
	}
}

// nodeColumns returns the column list for node queries
const nodeColumns = `id, type, direction, capacity, xlow, xhigh, ylow, yhigh, ptc`

// nodeInsertArgs prepares arguments in nodeColumns order
func nodeInsertArgs(node *domain.Node) []interface{} {
	return []interface{}{
		node.ID,
		string(node.Type),
		stringToNull(string(node.Direction)),
		node.Capacity,
		node.XLow,
		node.XHigh,
		node.YLow,
		node.YHigh,
		node.Ptc,
	}
}

// ============================================================================
// Edge Row Scanner
// ============================================================================

// edgeRow holds all columns from an edge query for scanning
type edgeRow struct {
	SrcNode  uint32
	SinkNode uint32
	SwitchID uint32
}

// scanArgs returns pointers to all fields for sql.Scan()
// MUST match edgeColumns order exactly: src_node, sink_node, switch_id
func (r *edgeRow) scanArgs() []interface{} {
	return []interface{}{
		&r.SrcNode,  // 1
		&r.SinkNode, // 2
		&r.SwitchID, // 3
	}
}

// toDomain converts the scanned row to a domain.Edge
func (r *edgeRow) toDomain() domain.Edge {
	return domain.NewEdge(r.SrcNode, r.SinkNode, r.SwitchID)
}

// edgeColumns returns the column list for edge queries
const edgeColumns = `src_node, sink_node, switch_id`
