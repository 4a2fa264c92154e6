package restapi

import (
	"encoding/json"
	"net/http"
)

type statusResponse struct {
	Area        string `json:"area"`
	RouteFilter string `json:"routeFilter"`
	Elements    int    `json:"elements"`
	Routes      int    `json:"routes"`
	Nodes       int    `json:"nodes"`
	Stops       int    `json:"stops"`
	Connections int    `json:"connections"`
	LastUpdated int64  `json:"lastUpdated"`
}

// statusHandler summarizes what the current run loaded and built.
func (api *RestAPI) statusHandler(w http.ResponseWriter, r *http.Request) {
	manager := api.App.Manager

	response := statusResponse{
		Area:        api.App.OsmConfig.Area,
		RouteFilter: api.App.OsmConfig.RouteFilter,
		Elements:    manager.ElementCount(),
		Routes:      len(manager.Routes()),
		Nodes:       len(manager.Nodes()),
		Stops:       manager.Graph().Order(),
		Connections: manager.Graph().Size(),
		LastUpdated: manager.LastUpdated().UnixMilli(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.App.Logger.Error("failed to encode status response", "error", err)
	}
}
