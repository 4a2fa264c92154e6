package render

import "errors"

// ErrEmptyGraph is returned when a rendering is requested for a graph
// with no positioned vertices, since no map center can be computed.
var ErrEmptyGraph = errors.New("no positions available to compute a map center")
