package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"stopmap.transitlab.org/internal/render"
)

// geoJSONHandler returns the stop graph as a GeoJSON FeatureCollection.
func (api *RestAPI) geoJSONHandler(w http.ResponseWriter, r *http.Request) {
	fc, err := render.NewFeatureCollection(api.App.Manager.Graph())
	if errors.Is(err, render.ErrEmptyGraph) {
		api.emptyGraphResponse(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	if err := json.NewEncoder(w).Encode(fc); err != nil {
		api.App.Logger.Error("failed to encode geojson response", "error", err)
	}
}
