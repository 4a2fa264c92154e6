package overpass

// RouteElements returns the elements that represent transit routes:
// those whose tags contain a "route" key. Elements without tags never
// match; nothing here is treated as an error.
func RouteElements(payload *Payload) []Element {
	var routes []Element
	for _, element := range payload.Elements {
		if _, ok := element.Tags["route"]; ok {
			routes = append(routes, element)
		}
	}
	return routes
}

// NodeElements returns the node elements keyed by id. When two elements
// share an id, the later one in payload order wins.
func NodeElements(payload *Payload) map[int64]Element {
	nodes := make(map[int64]Element)
	for _, element := range payload.Elements {
		if element.Type == ElementTypeNode {
			nodes[element.ID] = element
		}
	}
	return nodes
}
