package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	manager := webUI.App.Manager

	switch dataType {
	case "routes":
		data = manager.Routes()
		title = "Overpass - Route Elements"
	case "nodes":
		data = manager.Nodes()
		title = "Overpass - Node Elements"
	case "vertices":
		data = manager.Graph().Vertices()
		title = "Stop Graph - Vertices"
	case "edges":
		data = manager.Graph().Edges()
		title = "Stop Graph - Edges"
	case "config":
		data = webUI.App.OsmConfig
		title = "Overpass - Config"
	default:
		data = map[string]string{
			"error": "Please use one of the following: routes, nodes, vertices, edges, config.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
