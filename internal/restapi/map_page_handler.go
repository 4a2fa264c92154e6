package restapi

import (
	"errors"
	"fmt"
	"net/http"

	"stopmap.transitlab.org/internal/render"
	"stopmap.transitlab.org/internal/utils"
)

// mapPageHandler serves the interactive Leaflet map. The zoom query
// parameter overrides the default initial zoom.
func (api *RestAPI) mapPageHandler(w http.ResponseWriter, r *http.Request) {
	zoom, fieldErrors := utils.ParseIntParam(r.URL.Query(), "zoom", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	opts := render.Options{
		Title: fmt.Sprintf("%s transit stops", api.App.OsmConfig.Area),
		Zoom:  zoom,
	}

	html, err := render.RenderHTML(api.App.Manager.Graph(), opts)
	if errors.Is(err, render.ErrEmptyGraph) {
		api.emptyGraphResponse(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(html); err != nil {
		api.App.Logger.Error("failed to write map page", "error", err)
	}
}
