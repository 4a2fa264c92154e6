package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"stopmap.transitlab.org/internal/graph"
)

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(twoStopGraph(), Options{Title: "Berlin transit stops", Zoom: 13})
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, "<title>Berlin transit stops</title>")
	assert.Contains(t, page, "leaflet")
	assert.Contains(t, page, "13")
	assert.Contains(t, page, "A")
	assert.Contains(t, page, "#ff0000")
}

func TestRenderHTMLDefaults(t *testing.T) {
	html, err := RenderHTML(twoStopGraph(), Options{})
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, "<title>Transit stop map</title>")
	assert.Contains(t, page, fmt.Sprintf("%d", DefaultZoom))
}

func TestRenderHTMLEmptyGraph(t *testing.T) {
	_, err := RenderHTML(graph.New(), Options{})
	assert.ErrorIs(t, err, ErrEmptyGraph)
}
