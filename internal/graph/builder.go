package graph

import (
	"strconv"
	"strings"

	"stopmap.transitlab.org/internal/models"
	"stopmap.transitlab.org/internal/overpass"
)

// Build assembles the stop graph from classified route and node
// elements. Routes are processed in input order, so a stop shared by
// several routes keeps the attributes from the last route processed.
// Empty inputs produce an empty graph; nothing here returns an error.
func Build(routes []overpass.Element, nodes map[int64]overpass.Element) *StopGraph {
	g := New()
	for _, route := range routes {
		stops := stopMembers(route)

		for _, member := range stops {
			node, ok := nodes[member.Ref]
			if !ok {
				// Overpass payloads are routinely incomplete; members
				// pointing outside the result set are skipped.
				continue
			}
			g.AddVertex(Vertex{
				ID:     member.Ref,
				Pos:    models.CoordinatePoint{Lat: node.Lat, Lon: node.Lon},
				Name:   nodeName(node, member.Ref),
				Colour: routeColour(route),
			})
		}

		// AddEdge drops pairs whose endpoints never resolved to a real
		// node, so the graph only ever connects known stops.
		for i := 0; i+1 < len(stops); i++ {
			g.AddEdge(stops[i].Ref, stops[i+1].Ref)
		}
	}
	return g
}

// stopMembers selects the members whose role marks them as a stop,
// preserving route order. Roles are free text; "stop_entry_only" and
// friends all count.
func stopMembers(route overpass.Element) []overpass.Member {
	var stops []overpass.Member
	for _, member := range route.Members {
		if strings.Contains(member.Role, "stop") {
			stops = append(stops, member)
		}
	}
	return stops
}

func nodeName(node overpass.Element, ref int64) string {
	if name, ok := node.Tags["name"]; ok {
		return name
	}
	return strconv.FormatInt(ref, 10)
}

func routeColour(route overpass.Element) string {
	if colour, ok := route.Tags["colour"]; ok {
		return colour
	}
	return DefaultColour
}
