// Package repository defines the data access interface for stored routing
// resource graphs.
//
// # Repository Interface
//
// A graph is stored whole under a caller-chosen id and read back whole. Node and
// edge order is preserved, since edge order is the index order of the
// serialized edge list.
//
// # SQLite Implementation
//
// The sqlite subpackage stores graphs in three tables (graphs, nodes, edges)
// with WAL mode for concurrent readers. Saves run in one transaction with
// prepared statements; the schema is migrated on startup.
package repository
