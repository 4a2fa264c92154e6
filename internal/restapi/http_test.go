package restapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"stopmap.transitlab.org/internal/app"
	"stopmap.transitlab.org/internal/appconf"
	"stopmap.transitlab.org/internal/overpass"
	"stopmap.transitlab.org/internal/transit"
)

// createTestApi creates a RestAPI backed by a saved payload file
// instead of a live Overpass endpoint.
func createTestApi(t *testing.T, payloadFile string) *RestAPI {
	osmConfig := overpass.Config{
		APIEndpoint: filepath.Join("../../testdata", payloadFile),
		Area:        "Berlin",
		RouteFilter: "subway",
	}
	manager, err := transit.InitManager(context.Background(), osmConfig, slog.Default())
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	application := &app.Application{
		Config: appconf.Config{
			Env: appconf.Test,
		},
		OsmConfig: osmConfig,
		Logger:    slog.Default(),
		Manager:   manager,
	}

	return &RestAPI{App: application}
}

// serveEndpoint sets up a test server and performs a GET against the
// given endpoint.
func serveEndpoint(t *testing.T, api *RestAPI, endpoint string) *http.Response {
	server := httptest.NewServer(api.RequestLogging(api.Router()))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}
