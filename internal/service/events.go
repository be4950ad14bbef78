package service

import (
	"slices"
	"sync"
	"sync/atomic"
)

// EventType names a change to the stored graphs
type EventType string

const (
	EventGraphBuilt    EventType = "graph_built"
	EventGraphImported EventType = "graph_imported"
	EventGraphDeleted  EventType = "graph_deleted"
)

// Event is published after a graph is stored or removed
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// EventBus fans events out to subscriber channels without blocking the publisher
type EventBus struct {
	mu          sync.RWMutex
	subscribers []chan<- Event
	dropped     atomic.Int64
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers = append(eb.subscribers, ch)
}

// Unsubscribe removes ch. The channel is not closed.
func (eb *EventBus) Unsubscribe(ch chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers = slices.DeleteFunc(eb.subscribers, func(sub chan<- Event) bool {
		return sub == ch
	})
}

// Publish delivers event to every subscriber with room for it. Full
// subscribers miss the event and it is counted as dropped.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			eb.dropped.Add(1)
		}
	}
}

// Dropped returns how many deliveries were skipped because a subscriber was full.
func (eb *EventBus) Dropped() int64 {
	return eb.dropped.Load()
}
