package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"stopmap.transitlab.org/internal/app"
)

// RestAPI serves the rendered stop graph over HTTP.
type RestAPI struct {
	App *app.Application
}

// Router builds the route table. The root path serves the interactive
// map; the /api endpoints expose the graph for analyst tooling.
func (api *RestAPI) Router() *httprouter.Router {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/", api.mapPageHandler)
	router.HandlerFunc(http.MethodGet, "/api/map.geojson", api.geoJSONHandler)
	router.HandlerFunc(http.MethodGet, "/api/graph.json", api.graphHandler)
	router.HandlerFunc(http.MethodGet, "/api/status.json", api.statusHandler)
	return router
}
