// Package hub streams graph events to Server-Sent Events clients.
package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/rs/xid"
)

// Frame is one SSE event: a sequence id, an event name and a JSON body.
type Frame struct {
	Seq  uint64
	Name string
	Data any
}

// encode renders f in text/event-stream form.
func (f Frame) encode() ([]byte, error) {
	data, err := json.Marshal(f.Data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "id: %d\n", f.Seq)
	if f.Name != "" {
		fmt.Fprintf(&buf, "event: %s\n", f.Name)
	}
	fmt.Fprintf(&buf, "data: %s\n\n", data)
	return buf.Bytes(), nil
}

type subscriber struct {
	id     string
	frames chan []byte
}

// Hub owns the set of connected SSE subscribers.
type Hub struct {
	mu        sync.RWMutex
	subs      map[*subscriber]struct{}
	join      chan *subscriber
	leave     chan *subscriber
	outbox    chan Frame
	done      chan struct{}
	seq       uint64
	keepAlive time.Duration
}

func New() *Hub {
	return &Hub{
		subs:      make(map[*subscriber]struct{}),
		join:      make(chan *subscriber),
		leave:     make(chan *subscriber),
		outbox:    make(chan Frame, 256),
		done:      make(chan struct{}),
		keepAlive: 30 * time.Second,
	}
}

// Run delivers frames until ctx is done, then disconnects every subscriber.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for s := range h.subs {
				h.drop(s)
			}
			h.mu.Unlock()
			return

		case s := <-h.join:
			h.mu.Lock()
			h.subs[s] = struct{}{}
			n := len(h.subs)
			h.mu.Unlock()
			log.Printf("SSE client connected: %s (total: %d)", s.id, n)

		case s := <-h.leave:
			h.mu.Lock()
			if _, ok := h.subs[s]; ok {
				h.drop(s)
			}
			n := len(h.subs)
			h.mu.Unlock()
			log.Printf("SSE client disconnected: %s (total: %d)", s.id, n)

		case f := <-h.outbox:
			h.seq++
			f.Seq = h.seq
			msg, err := f.encode()
			if err != nil {
				log.Printf("Failed to encode %s event: %v", f.Name, err)
				continue
			}
			h.fanOut(msg)
		}
	}
}

// drop must be called with h.mu held.
func (h *Hub) drop(s *subscriber) {
	delete(h.subs, s)
	close(s.frames)
}

func (h *Hub) fanOut(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		select {
		case s.frames <- msg:
		default:
			log.Printf("SSE client %s is slow, skipping event", s.id)
		}
	}
}

// Broadcast queues a named event for every subscriber. Events are dropped
// when the queue is full.
func (h *Hub) Broadcast(name string, data any) {
	select {
	case h.outbox <- Frame{Name: name, Data: data}:
	default:
		log.Printf("Broadcast queue full, dropping %s event", name)
	}
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// ServeHTTP streams events to one client until it disconnects or the hub stops.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	s := &subscriber{
		id:     xid.New().String(),
		frames: make(chan []byte, 64),
	}

	select {
	case h.join <- s:
	case <-h.done:
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	case <-r.Context().Done():
		return
	}
	defer func() {
		select {
		case h.leave <- s:
		case <-h.done:
		}
	}()

	hdr := w.Header()
	hdr.Set("Content-Type", "text/event-stream")
	hdr.Set("Cache-Control", "no-cache")
	hdr.Set("Connection", "keep-alive")
	hdr.Set("X-Accel-Buffering", "no")

	fmt.Fprintf(w, ": connected %s\n\n", s.id)
	flusher.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		var err error
		select {
		case msg, ok := <-s.frames:
			if !ok {
				return
			}
			_, err = w.Write(msg)
		case <-ticker.C:
			_, err = fmt.Fprint(w, ": keepalive\n\n")
		case <-r.Context().Done():
			return
		}
		if err != nil {
			return
		}
		flusher.Flush()
	}
}
