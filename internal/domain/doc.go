// Package domain defines the core types of the rrgraph routing resource graph tool.
//
// This package contains the value types shared by every layer: the in-memory
// form of a routing resource graph, the channel tracks it is built from, and the
// build description that drives a graph build.
//
// # Core Types
//
// Node is a routing resource (a CHANX/CHANY wire or a pin) with its grid
// location and track number (ptc).
//
// Edge is a programmable switch between two nodes. An edge has no key of its
// own: its identity is its position in the graph's edge list.
//
// Graph holds the tool metadata plus the ordered node and edge lists that are
// written into the serialized graph message.
//
// # Tracks
//
// Track is a straight wire running along the X or Y axis. Connection joins two
// tracks by index. Side reports which side of a track a wire sits on.
//
// # Build Specs
//
// BuildSpec describes a graph build: the columns and rows that carry tracks,
// the points that must be covered, grid bounds, and the switch used for every
// generated edge.
//
// # Design Principles
//
// - Plain value types, no serialization library dependencies
// - Positional identity for edges
// - Validation lives next to the data it checks
package domain
