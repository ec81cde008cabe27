package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/circuitviz/pkg/flowsheet"
)

// Options configures flowsheet rendering.
type Options struct {
	// ShowLabels prints the stream name on each edge.
	ShowLabels bool
}

// Compass points used as edge ports.
const (
	PortNorth = "n"
	PortEast  = "e"
	PortSouth = "s"
	PortWest  = "w"
)

// Ports returns the tail and head port for an edge carrying s.
func Ports(s flowsheet.Stream) (tail, head string) {
	switch s {
	case flowsheet.StreamConcentrate:
		return PortNorth, PortWest
	case flowsheet.StreamIntermediate:
		return PortEast, PortWest
	case flowsheet.StreamTailing:
		return PortSouth, PortWest
	default:
		return PortEast, PortWest
	}
}

// GraphDOT converts a flowsheet document to Graphviz DOT source.
func GraphDOT(doc *flowsheet.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	fmt.Fprintf(&buf, "  dpi=%d;\n", DPI)
	buf.WriteString("  node [shape=rectangle];\n")
	buf.WriteString("\n")

	for _, n := range doc.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=%q, color=%q, style=%q];\n",
			n.ID, n.Label, n.Shape, n.Color, n.Style)
	}

	buf.WriteString("\n")
	for _, e := range doc.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Source, e.Target, strings.Join(edgeAttrs(e, opts), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeAttrs(e flowsheet.Edge, opts Options) []string {
	tail, head := Ports(e.Stream)
	var attrs []string
	if opts.ShowLabels && e.Stream != flowsheet.StreamNone {
		attrs = append(attrs, fmt.Sprintf("label=%q", string(e.Stream)))
	}
	return append(attrs,
		fmt.Sprintf("color=%q", e.Color),
		fmt.Sprintf("tailport=%s", tail),
		fmt.Sprintf("headport=%s", head),
		"arrowhead=normal",
	)
}

// Graph renders doc as a PNG image.
func Graph(ctx context.Context, doc *flowsheet.Document, opts Options) ([]byte, error) {
	return PNG(ctx, GraphDOT(doc, opts))
}

// WriteGraph renders doc and stores the PNG at path.
func WriteGraph(ctx context.Context, doc *flowsheet.Document, opts Options, path string) error {
	data, err := Graph(ctx, doc, opts)
	if err != nil {
		return err
	}
	return writeImage(path, data)
}
