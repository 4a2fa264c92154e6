package transit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stopmap.transitlab.org/internal/graph"
	"stopmap.transitlab.org/internal/overpass"
)

// Manager runs one batch transformation and provides access to its
// results: fetch the Overpass payload, classify its elements, build
// the stop graph. Everything is held in memory for the lifetime of the
// process; nothing is mutated after construction, so no locking is
// needed.
type Manager struct {
	config      overpass.Config
	client      *overpass.Client
	payload     *overpass.Payload
	routes      []overpass.Element
	nodes       map[int64]overpass.Element
	graph       *graph.StopGraph
	lastUpdated time.Time
}

// InitManager fetches the configured area once and builds the stop
// graph from it. A fetch failure is fatal to the run.
func InitManager(ctx context.Context, config overpass.Config, logger *slog.Logger) (*Manager, error) {
	client, err := overpass.NewClient(config, logger)
	if err != nil {
		return nil, err
	}

	query := overpass.BuildQuery(config.Area, config.RouteFilter)
	payload, err := client.Fetch(ctx, query)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("fetching overpass data: %w", err)
	}

	manager := &Manager{
		config:      config,
		client:      client,
		payload:     payload,
		lastUpdated: time.Now(),
	}
	manager.routes = overpass.RouteElements(payload)
	manager.nodes = overpass.NodeElements(payload)
	manager.graph = graph.Build(manager.routes, manager.nodes)

	return manager, nil
}

// Shutdown releases the client and its cache.
func (manager *Manager) Shutdown() {
	_ = manager.client.Close()
}

func (manager *Manager) Graph() *graph.StopGraph {
	return manager.graph
}

func (manager *Manager) Routes() []overpass.Element {
	return manager.routes
}

func (manager *Manager) Nodes() map[int64]overpass.Element {
	return manager.nodes
}

func (manager *Manager) ElementCount() int {
	return len(manager.payload.Elements)
}

func (manager *Manager) LastUpdated() time.Time {
	return manager.lastUpdated
}

func (manager *Manager) Config() overpass.Config {
	return manager.config
}

// PrintStatistics logs what the run produced.
func (manager *Manager) PrintStatistics(logger *slog.Logger) {
	logger.Info("transit data loaded",
		"area", manager.config.Area,
		"route_filter", manager.config.RouteFilter,
		"elements", manager.ElementCount(),
		"routes", len(manager.routes),
		"nodes", len(manager.nodes),
		"stops", manager.graph.Order(),
		"connections", manager.graph.Size(),
	)
}
