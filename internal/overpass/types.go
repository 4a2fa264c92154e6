package overpass

// Element type values as they appear in interpreter responses.
const (
	ElementTypeNode     = "node"
	ElementTypeRelation = "relation"
)

// Member is one entry in a relation's ordered member list. Role is
// free-text; transit relations mark their stops with roles containing
// "stop" ("stop", "stop_entry_only", "stop_exit_only", ...).
type Member struct {
	Type string `json:"type"`
	Ref  int64  `json:"ref"`
	Role string `json:"role"`
}

// Element is a single tagged element from an Overpass API response.
// Nodes carry a coordinate pair; relations carry an ordered member
// list. Tags are optional on both.
type Element struct {
	Type    string            `json:"type"`
	ID      int64             `json:"id"`
	Lat     float64           `json:"lat,omitempty"`
	Lon     float64           `json:"lon,omitempty"`
	Tags    map[string]string `json:"tags,omitempty"`
	Members []Member          `json:"members,omitempty"`
}

// Payload is the interpreter response envelope.
type Payload struct {
	Elements []Element `json:"elements"`
}
