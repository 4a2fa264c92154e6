package render

import (
	"stopmap.transitlab.org/internal/graph"
	"stopmap.transitlab.org/internal/models"
)

// Center returns the unweighted centroid of all vertex positions. The
// arithmetic mean is deliberate; it is not a bounding-box center.
func Center(g *graph.StopGraph) (models.CoordinatePoint, error) {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return models.CoordinatePoint{}, ErrEmptyGraph
	}

	var lat, lon float64
	for _, v := range vertices {
		lat += v.Pos.Lat
		lon += v.Pos.Lon
	}
	n := float64(len(vertices))
	return models.CoordinatePoint{Lat: lat / n, Lon: lon / n}, nil
}
