// Package flowsheet turns a circuit vector into a graph description and
// serializes that description as text.
//
// # Documents
//
// A [Document] is an ordered list of [Node] and [Edge] records. [Encode]
// builds one from a [circuit.Vector]: a box per unit, one Concentrate and one
// Tailings sink, a feed edge and three colored stream edges per unit.
//
// # Text Format
//
// The text form has a NODES section followed by an EDGES section:
//
//	NODES
//	0 Unit_0 box lightblue filled
//	1 Concentrate box lightgreen filled
//	2 Tailings box lightcoral filled
//
//	EDGES
//	Feed 0 black
//	0 1 concentrate blue
//	0 2 intermediate purple
//	0 2 tailing red
//
// Node lines carry id, label, shape, color and style. Edge lines carry
// source, target and color, with the stream name between target and color
// when the edge has one. [Document.MarshalText] and [Parse] round-trip
// losslessly.
package flowsheet
