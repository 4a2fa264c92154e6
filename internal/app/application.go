package app

import (
	"log/slog"

	"stopmap.transitlab.org/internal/appconf"
	"stopmap.transitlab.org/internal/overpass"
	"stopmap.transitlab.org/internal/transit"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, a logger, and the transit manager
// carrying the stop graph for this run.
type Application struct {
	Config    appconf.Config
	OsmConfig overpass.Config
	Logger    *slog.Logger
	Manager   *transit.Manager
}
