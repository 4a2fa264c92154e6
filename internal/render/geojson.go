package render

import (
	"stopmap.transitlab.org/internal/graph"
)

// FeatureCollection is the machine-readable rendering of a stop graph.
// It follows the standard GeoJSON structure: one Point feature per
// stop and one LineString feature per connection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single geographic feature with geometry and properties.
type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

// Geometry holds coordinates in GeoJSON order, [lon, lat]. Coordinates
// is []float64 for a Point and [][]float64 for a LineString.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// NewFeatureCollection builds the GeoJSON rendering of g. Like every
// renderer entry point it requires at least one positioned vertex and
// returns ErrEmptyGraph otherwise.
func NewFeatureCollection(g *graph.StopGraph) (*FeatureCollection, error) {
	if g.Order() == 0 {
		return nil, ErrEmptyGraph
	}

	fc := &FeatureCollection{Type: "FeatureCollection"}

	for _, v := range g.Vertices() {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"id":     v.ID,
				"name":   v.Name,
				"colour": v.Colour,
			},
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{v.Pos.Lon, v.Pos.Lat},
			},
		})
	}

	for _, e := range g.Edges() {
		u, _ := g.Vertex(e.A)
		v, _ := g.Vertex(e.B)
		fc.Features = append(fc.Features, Feature{
			Type:       "Feature",
			Properties: map[string]interface{}{},
			Geometry: Geometry{
				Type: "LineString",
				Coordinates: [][]float64{
					{u.Pos.Lon, u.Pos.Lat},
					{v.Pos.Lon, v.Pos.Lat},
				},
			},
		})
	}

	return fc, nil
}
