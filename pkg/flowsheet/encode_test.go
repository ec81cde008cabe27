package flowsheet

import (
	"errors"
	"testing"

	"github.com/matzehuels/circuitviz/pkg/circuit"
	"github.com/matzehuels/circuitviz/pkg/errs"
)

var sampleVector = circuit.Vector{0, 1, 3, 3, 2, 2, 0, 4, 1, 1, 1, 0, 5}

func TestEncodeCounts(t *testing.T) {
	for u := 0; u <= 6; u++ {
		v := make(circuit.Vector, 3*u+1)
		doc, err := Encode(v)
		if err != nil {
			t.Fatalf("Encode(U=%d) error: %v", u, err)
		}
		if len(doc.Nodes) != u+2 {
			t.Errorf("Encode(U=%d) nodes = %d, want %d", u, len(doc.Nodes), u+2)
		}
		if len(doc.Edges) != 3*u+1 {
			t.Errorf("Encode(U=%d) edges = %d, want %d", u, len(doc.Edges), 3*u+1)
		}
	}
}

func TestEncodeShapeErrors(t *testing.T) {
	for _, v := range []circuit.Vector{nil, {}, {0, 1}, {0, 1, 2}, {0, 1, 2, 2, 1}} {
		if _, err := Encode(v); !errors.Is(err, errs.ErrShape) {
			t.Errorf("Encode(%v) error = %v, want ErrShape", v, err)
		}
	}
}

func TestEncodeNoUnits(t *testing.T) {
	doc, err := Encode(circuit.Vector{0})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	want := []Node{
		{ID: "0", Label: "Concentrate", Shape: "box", Color: "lightgreen", Style: "filled"},
		{ID: "1", Label: "Tailings", Shape: "box", Color: "lightcoral", Style: "filled"},
	}
	if len(doc.Nodes) != len(want) {
		t.Fatalf("nodes = %v, want %v", doc.Nodes, want)
	}
	for i := range want {
		if doc.Nodes[i] != want[i] {
			t.Errorf("node %d = %+v, want %+v", i, doc.Nodes[i], want[i])
		}
	}
	if len(doc.Edges) != 1 || doc.Edges[0] != (Edge{Source: "Feed", Target: "0", Color: "black"}) {
		t.Errorf("edges = %+v, want only the feed edge", doc.Edges)
	}
}

func TestEncodeSample(t *testing.T) {
	doc, err := Encode(sampleVector)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	for _, id := range []string{"0", "1", "2", "3"} {
		n, ok := doc.Node(id)
		if !ok {
			t.Fatalf("missing unit node %s", id)
		}
		if n.Label != "Unit_"+id || n.Color != ColorUnit || n.Shape != ShapeBox || n.Style != StyleFilled {
			t.Errorf("unit node %s = %+v", id, n)
		}
	}
	if n, _ := doc.Node("4"); n.Label != LabelConcentrate {
		t.Errorf("node 4 = %+v, want Concentrate", n)
	}
	if n, _ := doc.Node("5"); n.Label != LabelTailings {
		t.Errorf("node 5 = %+v, want Tailings", n)
	}

	if feed := doc.Edges[0]; feed.Source != FeedID || feed.Target != "0" || feed.Stream != StreamNone {
		t.Errorf("feed edge = %+v, want Feed -> 0", feed)
	}

	want := []Edge{
		{Source: "2", Target: "4", Stream: StreamConcentrate, Color: "blue"},
		{Source: "2", Target: "1", Stream: StreamIntermediate, Color: "purple"},
		{Source: "2", Target: "1", Stream: StreamTailing, Color: "red"},
	}
	got := doc.EdgesFrom("2")
	if len(got) != len(want) {
		t.Fatalf("EdgesFrom(2) = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unit 2 edge %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEncodeEdgeOrder(t *testing.T) {
	doc, err := Encode(sampleVector)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	for i := 0; i < sampleVector.Units(); i++ {
		base := 1 + 3*i
		streams := []Stream{StreamConcentrate, StreamIntermediate, StreamTailing}
		for j, s := range streams {
			e := doc.Edges[base+j]
			if e.Source != id(i) || e.Stream != s || e.Target != id(sampleVector[base+j]) {
				t.Errorf("edge %d = %+v, want %d -> %d (%s)", base+j, e, i, sampleVector[base+j], s)
			}
		}
	}
}
