package flowsheet

import (
	"strconv"

	"github.com/matzehuels/circuitviz/pkg/circuit"
)

// Node and edge styling applied by Encode.
const (
	ShapeBox    = "box"
	StyleFilled = "filled"

	ColorUnit        = "lightblue"
	ColorConcentrate = "lightgreen"
	ColorTailings    = "lightcoral"

	ColorFeed        = "black"
	ColorConcStream  = "blue"
	ColorInterStream = "purple"
	ColorTailStream  = "red"

	LabelConcentrate = "Concentrate"
	LabelTailings    = "Tailings"
	unitLabelPrefix  = "Unit_"
)

// Encode builds the graph description of v. It fails with errs.ErrShape when
// v is empty or its length is not 3*U+1. The result depends only on v.
func Encode(v circuit.Vector) (*Document, error) {
	if err := v.CheckShape(); err != nil {
		return nil, err
	}
	u := v.Units()

	doc := &Document{
		Nodes: make([]Node, 0, u+2),
		Edges: make([]Edge, 0, 3*u+1),
	}
	for i := 0; i < u; i++ {
		doc.Nodes = append(doc.Nodes, Node{
			ID:    id(i),
			Label: unitLabelPrefix + id(i),
			Shape: ShapeBox,
			Color: ColorUnit,
			Style: StyleFilled,
		})
	}
	doc.Nodes = append(doc.Nodes,
		Node{ID: id(v.ConcentrateID()), Label: LabelConcentrate, Shape: ShapeBox, Color: ColorConcentrate, Style: StyleFilled},
		Node{ID: id(v.TailingsID()), Label: LabelTailings, Shape: ShapeBox, Color: ColorTailings, Style: StyleFilled},
	)

	doc.Edges = append(doc.Edges, Edge{Source: FeedID, Target: id(v.Feed()), Color: ColorFeed})
	for i := 0; i < u; i++ {
		s := v.Unit(i)
		src := id(i)
		doc.Edges = append(doc.Edges,
			Edge{Source: src, Target: id(s.Concentrate), Stream: StreamConcentrate, Color: ColorConcStream},
			Edge{Source: src, Target: id(s.Intermediate), Stream: StreamIntermediate, Color: ColorInterStream},
			Edge{Source: src, Target: id(s.Tailing), Stream: StreamTailing, Color: ColorTailStream},
		)
	}
	return doc, nil
}

func id(n int) string { return strconv.Itoa(n) }
