package overpass

import "fmt"

// BuildQuery assembles the Overpass QL for one run: every route
// relation in the named area whose route tag matches the filter regex,
// plus the nodes those relations reference. The query text is opaque
// to the rest of the pipeline.
func BuildQuery(area, routeFilter string) string {
	return fmt.Sprintf(`[out:json];
area[name=%q]->.searchArea;
relation["route"~%q](area.searchArea);
out meta;
>;
out body;`, area, routeFilter)
}
