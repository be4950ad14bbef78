// Package service implements business logic for rrgraph.
//
// GraphService coordinates between the HTTP handlers, the CLI and the
// repository layer: it builds graphs from build specs, imports and exports them
// through codecs, and persists them under generated ids.
//
// # Event System
//
// GraphService publishes events via EventBus for real-time updates to connected
// clients via Server-Sent Events (SSE). Publishing never blocks: a subscriber
// whose channel is full misses the event.
package service
