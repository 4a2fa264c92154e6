package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"stopmap.transitlab.org/internal/app"
)

// WebUI serves human-oriented debug pages for inspecting what the run
// fetched and built.
type WebUI struct {
	App *app.Application
}

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}
