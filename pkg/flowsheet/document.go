package flowsheet

// Stream names the output of a unit that an edge carries.
type Stream string

// Stream kinds. The feed edge has no stream.
const (
	StreamNone         Stream = ""
	StreamConcentrate  Stream = "concentrate"
	StreamIntermediate Stream = "intermediate"
	StreamTailing      Stream = "tailing"
)

// FeedID is the source identifier of the feed edge. It is never declared as a node.
const FeedID = "Feed"

// Node is one box in the flowsheet graph.
type Node struct {
	ID    string
	Label string
	Shape string
	Color string
	Style string
}

// Edge is a directed stream between two nodes.
type Edge struct {
	Source string
	Target string
	Stream Stream
	Color  string
}

// Document is an ordered node and edge listing.
type Document struct {
	Nodes []Node
	Edges []Edge
}

// Node returns the node with the given id.
func (d *Document) Node(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// EdgesFrom returns the edges leaving id in document order.
func (d *Document) EdgesFrom(id string) []Edge {
	var out []Edge
	for _, e := range d.Edges {
		if e.Source == id {
			out = append(out, e)
		}
	}
	return out
}
