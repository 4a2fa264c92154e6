package restapi

import (
	"encoding/json"
	"net/http"
)

type vertexResponse struct {
	ID     int64   `json:"id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Name   string  `json:"name"`
	Colour string  `json:"colour"`
}

type edgeResponse struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

type graphResponse struct {
	VertexCount int              `json:"vertexCount"`
	EdgeCount   int              `json:"edgeCount"`
	Vertices    []vertexResponse `json:"vertices"`
	Edges       []edgeResponse   `json:"edges"`
}

// graphHandler exposes the raw graph structure: vertices with their
// attributes and edges as id pairs.
func (api *RestAPI) graphHandler(w http.ResponseWriter, r *http.Request) {
	g := api.App.Manager.Graph()

	response := graphResponse{
		Vertices: []vertexResponse{},
		Edges:    []edgeResponse{},
	}
	for _, v := range g.Vertices() {
		response.Vertices = append(response.Vertices, vertexResponse{
			ID:     v.ID,
			Lat:    v.Pos.Lat,
			Lon:    v.Pos.Lon,
			Name:   v.Name,
			Colour: v.Colour,
		})
	}
	for _, e := range g.Edges() {
		response.Edges = append(response.Edges, edgeResponse{From: e.A, To: e.B})
	}
	response.VertexCount = len(response.Vertices)
	response.EdgeCount = len(response.Edges)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.App.Logger.Error("failed to encode graph response", "error", err)
	}
}
