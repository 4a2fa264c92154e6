package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntParam(t *testing.T) {
	params := url.Values{"zoom": {"13"}}

	zoom, fieldErrors := ParseIntParam(params, "zoom", nil)

	assert.Equal(t, 13, zoom)
	assert.Empty(t, fieldErrors)
}

func TestParseIntParamMissingKey(t *testing.T) {
	zoom, fieldErrors := ParseIntParam(url.Values{}, "zoom", nil)

	assert.Equal(t, 0, zoom)
	assert.Empty(t, fieldErrors)
}

func TestParseIntParamInvalidValue(t *testing.T) {
	params := url.Values{"zoom": {"thirteen"}}

	zoom, fieldErrors := ParseIntParam(params, "zoom", nil)

	assert.Equal(t, 0, zoom)
	assert.Contains(t, fieldErrors, "zoom")
}

func TestParseFloatParam(t *testing.T) {
	params := url.Values{"lat": {"52.5"}}

	lat, fieldErrors := ParseFloatParam(params, "lat", nil)

	assert.Equal(t, 52.5, lat)
	assert.Empty(t, fieldErrors)
}

func TestParseFloatParamAccumulatesErrors(t *testing.T) {
	params := url.Values{"lat": {"x"}, "lon": {"y"}}

	_, fieldErrors := ParseFloatParam(params, "lat", nil)
	_, fieldErrors = ParseFloatParam(params, "lon", fieldErrors)

	assert.Len(t, fieldErrors, 2)
}
