package models

// CoordinatePoint is a geographic position in degrees.
type CoordinatePoint struct {
	Lat float64
	Lon float64
}

func ComparePoints(a, b CoordinatePoint) int {
	if a.Lat < b.Lat {
		return -1
	}
	if a.Lat > b.Lat {
		return 1
	}
	if a.Lon < b.Lon {
		return -1
	}
	if a.Lon > b.Lon {
		return 1
	}
	return 0
}

// EdgeKey identifies an undirected edge between two stop vertices.
// A never exceeds B, so (u,v) and (v,u) produce the same key.
type EdgeKey struct {
	A int64
	B int64
}

func NewEdgeKey(u, v int64) EdgeKey {
	if u <= v {
		return EdgeKey{A: u, B: v}
	}
	return EdgeKey{A: v, B: u}
}
