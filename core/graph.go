// Package core: vertex and edge operations on Graph.
package core

import "sort"

// AddVertex inserts a vertex with the given ID. Re-adding an existing
// vertex is a no-op. Returns ErrEmptyVertexID for "".
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
	return nil
}

// addVertexLocked creates the vertex and its adjacency row if absent.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.adjacency[id] = make(map[string]float64)
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

// Vertex returns the stored vertex, including its metadata map.
// The map is shared with the graph; mutate it only from one goroutine.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return v, nil
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// AddEdge inserts the undirected edge (u,v) with weight w, creating
// missing endpoints on the fly.
//
// Error conditions:
//   - ErrEmptyVertexID   : u or v is "".
//   - ErrSelfLoop        : u == v.
//   - ErrNegativeWeight  : w < 0.
//   - ErrUnweighted      : w != 0 on an unweighted graph.
//   - ErrEdgeExists      : the edge is already present.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrSelfLoop
	}
	if w < 0 {
		return ErrNegativeWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.weighted && w != 0 {
		return ErrUnweighted
	}
	if _, ok := g.adjacency[u][v]; ok {
		return ErrEdgeExists
	}
	g.addVertexLocked(u)
	g.addVertexLocked(v)
	g.adjacency[u][v] = w
	g.adjacency[v][u] = w
	g.edgeCount++
	return nil
}

// RemoveEdge deletes the undirected edge (u,v). Endpoints stay in the
// graph. Returns ErrEdgeNotFound when the edge is absent.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adjacency[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--
	return nil
}

// HasEdge reports whether the undirected edge (u,v) is present.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]
	return ok
}

// EdgeWeight returns the weight of edge (u,v), or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) EdgeWeight(u, v string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	return w, nil
}

// Edges returns every edge exactly once in canonical orientation
// (From < To), sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := make([]Edge, 0, g.edgeCount)
	for u, row := range g.adjacency {
		for v, w := range row {
			if u < v {
				edges = append(edges, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgeCount
}

// Neighbors returns the edges incident to id, oriented id→neighbor and
// sorted by neighbor ID. Returns ErrVertexNotFound for absent vertices.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	row, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	edges := make([]Edge, 0, len(row))
	for v, w := range row {
		edges = append(edges, Edge{From: id, To: v, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })
	return edges, nil
}

// NeighborIDs returns the IDs adjacent to id in ascending order.
// Complexity: O(deg log deg).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	row, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(row))
	for v := range row {
		ids = append(ids, v)
	}
	sort.Strings(ids)
	return ids, nil
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	row, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return len(row), nil
}

// Clone returns a deep copy: vertices, metadata maps and adjacency are
// all duplicated, so mutations on the copy never touch the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Graph{
		weighted:  g.weighted,
		vertices:  make(map[string]*Vertex, len(g.vertices)),
		adjacency: make(map[string]map[string]float64, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for id, v := range g.vertices {
		meta := make(map[string]interface{}, len(v.Metadata))
		for k, val := range v.Metadata {
			meta[k] = val
		}
		c.vertices[id] = &Vertex{ID: id, Metadata: meta}
	}
	for u, row := range g.adjacency {
		dup := make(map[string]float64, len(row))
		for v, w := range row {
			dup[v] = w
		}
		c.adjacency[u] = dup
	}
	return c
}
