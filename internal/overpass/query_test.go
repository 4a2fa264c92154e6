package overpass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuery(t *testing.T) {
	query := BuildQuery("Berlin", "subway")

	assert.Contains(t, query, "[out:json]")
	assert.Contains(t, query, `area[name="Berlin"]`)
	assert.Contains(t, query, `relation["route"~"subway"]`)
	assert.Contains(t, query, "out body;")
}

func TestBuildQueryQuotesSpecialCharacters(t *testing.T) {
	query := BuildQuery(`Sankt "Pauli"`, "tram|light_rail")

	assert.Contains(t, query, `area[name="Sankt \"Pauli\""]`)
	assert.Contains(t, query, `"tram|light_rail"`)
}
