// Package circuit models the flat integer encoding of a separation circuit.
//
// # Encoding
//
// A circuit with U processing units is a [Vector] of 3*U+1 non-negative
// integers. Element 0 is the unit that receives the feed. Unit i routes its
// three output streams to the destinations at 1+3i (concentrate), 2+3i
// (intermediate) and 3+3i (tailing). A destination below U is another unit,
// U is the Concentrate sink and U+1 is the Tailings sink:
//
//	v := circuit.Vector{0, 1, 3, 3, 2, 2, 0, 4, 1, 1, 1, 0, 5}
//	v.Units()          // 4
//	v.Unit(2)          // Streams{Concentrate: 0, Intermediate: 4, Tailing: 1}
//	v.IsConcentrate(4) // true
//
// # Loading
//
// [ReadFile] and [Read] parse the first line of a text file as
// comma-separated integers. Later lines are ignored.
//
// # Validity
//
// [Validate] applies the structural rules a simulator needs before it can
// run a circuit: every unit reachable from the feed, no self loops, and
// product streams that can actually leave the circuit. Rendering does not
// require a valid circuit.
package circuit
