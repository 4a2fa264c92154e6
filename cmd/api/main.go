package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"stopmap.transitlab.org/internal/app"
	"stopmap.transitlab.org/internal/appconf"
	"stopmap.transitlab.org/internal/overpass"
	"stopmap.transitlab.org/internal/render"
	"stopmap.transitlab.org/internal/restapi"
	"stopmap.transitlab.org/internal/transit"
	"stopmap.transitlab.org/internal/webui"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to a YAML config file (takes precedence over the query flags)")
		port        = flag.Int("port", 4000, "API server port")
		env         = flag.String("env", "development", "Environment (development|test|production)")
		area        = flag.String("area", "Berlin", "OSM area name to query")
		routeFilter = flag.String("route-filter", "subway", "Route type regex for the Overpass query")
		endpoint    = flag.String("endpoint", overpass.DefaultEndpoint, "Overpass interpreter endpoint, or a local JSON payload file")
		cachePath   = flag.String("cache", "", "Path to a SQLite response cache (empty disables caching)")
		mode        = flag.String("mode", "serve", "serve|oneshot")
		out         = flag.String("out", "map.html", "Output HTML path for -mode oneshot")
		zoom        = flag.Int("zoom", render.DefaultZoom, "Initial map zoom level")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	osmConfig, err := resolveOsmConfig(*configPath, *area, *routeFilter, *endpoint, *cachePath)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	manager, err := transit.InitManager(context.Background(), osmConfig, logger)
	if err != nil {
		logger.Error("failed to initialize transit manager", "error", err)
		os.Exit(1)
	}
	defer manager.Shutdown()

	manager.PrintStatistics(logger)

	application := &app.Application{
		Config: appconf.Config{
			Port: *port,
			Env:  appconf.EnvFlagToEnvironment(*env),
		},
		OsmConfig: osmConfig,
		Logger:    logger,
		Manager:   manager,
	}

	switch *mode {
	case "oneshot":
		runOneshot(application, *out, *zoom)
	case "serve":
		runServer(application)
	default:
		logger.Error("unknown mode", "mode", *mode)
		os.Exit(1)
	}
}

// resolveOsmConfig prefers the YAML config file when one is given and
// otherwise assembles the config from flags.
func resolveOsmConfig(configPath, area, routeFilter, endpoint, cachePath string) (overpass.Config, error) {
	if configPath != "" {
		return overpass.LoadConfig(configPath)
	}

	cfg := overpass.Config{
		APIEndpoint: endpoint,
		Area:        area,
		RouteFilter: routeFilter,
		CachePath:   cachePath,
	}
	if err := cfg.Validate(); err != nil {
		return overpass.Config{}, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

func runOneshot(application *app.Application, out string, zoom int) {
	opts := render.Options{
		Title: fmt.Sprintf("%s transit stops", application.OsmConfig.Area),
		Zoom:  zoom,
	}

	html, err := render.RenderHTML(application.Manager.Graph(), opts)
	if err != nil {
		application.Logger.Error("failed to render map", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(out, html, 0o644); err != nil {
		application.Logger.Error("failed to write map file", "path", out, "error", err)
		os.Exit(1)
	}

	application.Logger.Info("wrote map",
		"path", out,
		"stops", application.Manager.Graph().Order(),
		"connections", application.Manager.Graph().Size())
}

func runServer(application *app.Application) {
	api := &restapi.RestAPI{App: application}
	router := api.Router()

	webUI := &webui.WebUI{App: application}
	webUI.SetWebUIRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      api.RequestLogging(router),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(application.Logger.Handler(), slog.LevelError),
	}

	application.Logger.Info("starting server", "addr", srv.Addr, "env", application.Config.Env.String())
	err := srv.ListenAndServe()
	application.Logger.Error(err.Error())
	os.Exit(1)
}
