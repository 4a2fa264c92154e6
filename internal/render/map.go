package render

import (
	"bytes"
	"embed"
	"html/template"

	"stopmap.transitlab.org/internal/graph"
)

//go:embed map.html
var templateFS embed.FS

// DefaultZoom is the initial zoom level when the caller does not pick
// one.
const DefaultZoom = 12

// Options controls the HTML rendering.
type Options struct {
	Title string
	Zoom  int
}

type stopMarker struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Name   string  `json:"name"`
	Colour string  `json:"colour"`
}

// A polyline is a pair of [lat, lon] points, the order Leaflet expects.
type polyline [2][2]float64

type mapData struct {
	Title     string
	Zoom      int
	CenterLat float64
	CenterLon float64
	Stops     []stopMarker
	Links     []polyline
}

// RenderHTML produces a self-contained Leaflet map document for g:
// circle markers per stop, polylines per connection, centered on the
// vertex centroid. Returns ErrEmptyGraph when no vertex carries a
// position.
func RenderHTML(g *graph.StopGraph, opts Options) ([]byte, error) {
	center, err := Center(g)
	if err != nil {
		return nil, err
	}
	if opts.Zoom <= 0 {
		opts.Zoom = DefaultZoom
	}
	if opts.Title == "" {
		opts.Title = "Transit stop map"
	}

	// Non-nil slices so the template emits [] rather than null.
	data := mapData{
		Title:     opts.Title,
		Zoom:      opts.Zoom,
		CenterLat: center.Lat,
		CenterLon: center.Lon,
		Stops:     []stopMarker{},
		Links:     []polyline{},
	}

	for _, v := range g.Vertices() {
		data.Stops = append(data.Stops, stopMarker{
			Lat:    v.Pos.Lat,
			Lon:    v.Pos.Lon,
			Name:   v.Name,
			Colour: v.Colour,
		})
	}

	for _, e := range g.Edges() {
		u, _ := g.Vertex(e.A)
		v, _ := g.Vertex(e.B)
		data.Links = append(data.Links, polyline{
			{u.Pos.Lat, u.Pos.Lon},
			{v.Pos.Lat, v.Pos.Lon},
		})
	}

	tmpl, err := template.ParseFS(templateFS, "map.html")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
