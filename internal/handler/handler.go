package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"rrgraph/internal/codec"
	"rrgraph/internal/domain"
	"rrgraph/internal/service"
)

// maxBodyBytes bounds request bodies for builds and imports
const maxBodyBytes = 64 << 20

// GraphHandler handles graph API requests
type GraphHandler struct {
	svc *service.GraphService
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(svc *service.GraphService) *GraphHandler {
	return &GraphHandler{svc: svc}
}

// Register adds the graph routes to mux. events serves the SSE stream.
func (h *GraphHandler) Register(mux *http.ServeMux, events http.Handler) {
	mux.HandleFunc("GET /api/graphs", h.ListGraphs)
	mux.HandleFunc("POST /api/graphs", h.BuildGraph)
	mux.HandleFunc("GET /api/graphs/{id}", h.GetGraph)
	mux.HandleFunc("DELETE /api/graphs/{id}", h.DeleteGraph)
	mux.HandleFunc("GET /api/graphs/{id}/edges", h.ListEdges)
	mux.HandleFunc("GET /api/graphs/{id}/export/{format}", h.ExportGraph)
	mux.HandleFunc("POST /api/import/{format}", h.ImportGraph)
	mux.HandleFunc("GET /api/formats", h.ListFormats)

	if events != nil {
		mux.Handle("GET /events", events)
	}
}

// Error response structure
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// CreatedResponse is returned after a graph is built or imported
type CreatedResponse struct {
	ID        string `json:"id"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

// IndexedEdge is an edge together with its position in the edge list
type IndexedEdge struct {
	Index int `json:"index"`
	domain.Edge
}

// EdgePage is one page of a graph's edge list
type EdgePage struct {
	Total  int           `json:"total"`
	Offset int           `json:"offset"`
	Edges  []IndexedEdge `json:"edges"`
}

// ListGraphs returns summaries of all stored graphs
func (h *GraphHandler) ListGraphs(w http.ResponseWriter, r *http.Request) {
	graphs, err := h.svc.ListGraphs(r.Context())
	if err != nil {
		log.Printf("Failed to list graphs: %v", err)
		h.writeError(w, "Failed to list graphs", err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, graphs, http.StatusOK)
}

// BuildGraph builds and stores a graph from a YAML build spec body
func (h *GraphHandler) BuildGraph(w http.ResponseWriter, r *http.Request) {
	spec, err := codec.ParseBuildSpec(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, "Invalid build spec", err.Error(), http.StatusBadRequest)
		return
	}

	id, g, err := h.svc.BuildGraph(r.Context(), spec)
	if err != nil {
		h.writeServiceError(w, "Failed to build graph", err)
		return
	}

	h.writeJSON(w, CreatedResponse{ID: id, NodeCount: len(g.Nodes), EdgeCount: len(g.Edges)}, http.StatusCreated)
}

// ImportGraph stores a graph posted in the format named by the path
func (h *GraphHandler) ImportGraph(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")

	id, g, err := h.svc.ImportGraph(r.Context(), format, http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeServiceError(w, "Failed to import graph", err)
		return
	}

	h.writeJSON(w, CreatedResponse{ID: id, NodeCount: len(g.Nodes), EdgeCount: len(g.Edges)}, http.StatusCreated)
}

// GetGraph returns a stored graph as JSON
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.GetGraph(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, "Failed to get graph", err)
		return
	}

	h.writeJSON(w, g, http.StatusOK)
}

// DeleteGraph deletes a stored graph
func (h *GraphHandler) DeleteGraph(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGraph(r.Context(), r.PathValue("id")); err != nil {
		h.writeServiceError(w, "Failed to delete graph", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListEdges returns a page of a graph's edges. Query parameters offset and
// limit select the page; limit 0 or absent means all remaining edges.
func (h *GraphHandler) ListEdges(w http.ResponseWriter, r *http.Request) {
	offset, err := queryInt(r, "offset")
	if err != nil {
		h.writeError(w, "Invalid offset", err.Error(), http.StatusBadRequest)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.writeError(w, "Invalid limit", err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.svc.GetGraph(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, "Failed to get graph", err)
		return
	}

	page := EdgePage{Total: len(g.Edges), Offset: offset, Edges: make([]IndexedEdge, 0)}
	end := len(g.Edges)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	for i := offset; i < end; i++ {
		page.Edges = append(page.Edges, IndexedEdge{Index: i, Edge: g.Edges[i]})
	}

	h.writeJSON(w, page, http.StatusOK)
}

// ExportGraph streams a stored graph in the format named by the path
func (h *GraphHandler) ExportGraph(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	format := r.PathValue("format")

	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.%s", id, fileExtension(format)))

	if err := h.svc.ExportGraph(r.Context(), id, format, w); err != nil {
		w.Header().Del("Content-Disposition")
		h.writeServiceError(w, "Failed to export graph", err)
		return
	}
}

// ListFormats returns the names of the supported import and export formats
func (h *GraphHandler) ListFormats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, codec.Formats(), http.StatusOK)
}

// Helper methods

func (h *GraphHandler) writeServiceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrGraphNotFound):
		h.writeError(w, "Not found", err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidGraph), errors.Is(err, codec.ErrUnknownFormat):
		h.writeError(w, msg, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("%s: %v", msg, err)
		h.writeError(w, msg, err.Error(), http.StatusInternalServerError)
	}
}

func (h *GraphHandler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON: %v", err)
	}
}

func (h *GraphHandler) writeError(w http.ResponseWriter, error, details string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   error,
		Details: details,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return v, nil
}

func contentType(format string) string {
	switch format {
	case "json":
		return "application/json"
	case "yaml":
		return "application/x-yaml"
	default:
		return "application/octet-stream"
	}
}

func fileExtension(format string) string {
	switch format {
	case "capnp", "json", "yaml":
		return format
	default:
		return "bin"
	}
}
