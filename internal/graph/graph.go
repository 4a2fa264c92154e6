package graph

import (
	"sort"

	"stopmap.transitlab.org/internal/models"
)

// DefaultColour is the neutral gray used for stops whose route carries
// no colour tag.
const DefaultColour = "#808080"

// Vertex is one transit stop with the attributes the renderer needs.
type Vertex struct {
	ID     int64
	Pos    models.CoordinatePoint
	Name   string
	Colour string
}

// StopGraph is an undirected graph of transit stops. Vertices are keyed
// by OSM node id; edges connect consecutive stops within a route. Every
// edge endpoint is guaranteed to be a declared vertex: AddEdge refuses
// endpoints that were never added, so the graph never fabricates
// attribute-less stops the way auto-creating graph structures do.
type StopGraph struct {
	vertices  map[int64]*Vertex
	adjacency map[int64]map[int64]struct{}
}

func New() *StopGraph {
	return &StopGraph{
		vertices:  make(map[int64]*Vertex),
		adjacency: make(map[int64]map[int64]struct{}),
	}
}

// AddVertex inserts the vertex, overwriting any previous attributes
// stored under the same id.
func (g *StopGraph) AddVertex(v Vertex) {
	g.vertices[v.ID] = &v
}

// Vertex returns the vertex for id, if present.
func (g *StopGraph) Vertex(id int64) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

func (g *StopGraph) HasVertex(id int64) bool {
	_, ok := g.vertices[id]
	return ok
}

// AddEdge links u and v in both directions. It reports false without
// modifying the graph when either endpoint is not a declared vertex.
// Repeated edges collapse into the adjacency sets.
func (g *StopGraph) AddEdge(u, v int64) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	g.link(u, v)
	g.link(v, u)
	return true
}

func (g *StopGraph) link(from, to int64) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[int64]struct{})
	}
	g.adjacency[from][to] = struct{}{}
}

// Order returns the number of vertices.
func (g *StopGraph) Order() int {
	return len(g.vertices)
}

// Size returns the number of undirected edges.
func (g *StopGraph) Size() int {
	return len(g.Edges())
}

// Vertices returns all vertices sorted by id for deterministic output.
func (g *StopGraph) Vertices() []*Vertex {
	vertices := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		vertices = append(vertices, v)
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i].ID < vertices[j].ID })
	return vertices
}

// Neighbors returns the ids adjacent to id, sorted.
func (g *StopGraph) Neighbors(id int64) []int64 {
	neighbors := make([]int64, 0, len(g.adjacency[id]))
	for n := range g.adjacency[id] {
		neighbors = append(neighbors, n)
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
	return neighbors
}

// Edges returns each undirected edge exactly once as a normalized key,
// sorted for deterministic output.
func (g *StopGraph) Edges() []models.EdgeKey {
	seen := make(map[models.EdgeKey]struct{})
	for u, neighbors := range g.adjacency {
		for v := range neighbors {
			seen[models.NewEdgeKey(u, v)] = struct{}{}
		}
	}
	edges := make([]models.EdgeKey, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}
