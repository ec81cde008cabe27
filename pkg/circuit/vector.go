package circuit

import (
	"fmt"

	"github.com/matzehuels/circuitviz/pkg/errs"
)

// Vector is the flat encoding of a circuit. See the package documentation.
type Vector []int

// Streams holds the destinations of one unit's three outputs.
type Streams struct {
	Concentrate  int
	Intermediate int
	Tailing      int
}

// UnitCount returns the number of units encoded by a vector of length n.
// It fails with [errs.ErrShape] when n is zero or n-1 is not a multiple of 3.
func UnitCount(n int) (int, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: empty vector", errs.ErrShape)
	}
	if (n-1)%3 != 0 {
		return 0, fmt.Errorf("%w: %d values do not encode 3*U+1 (got remainder %d)", errs.ErrShape, n, (n-1)%3)
	}
	return (n - 1) / 3, nil
}

// CheckShape reports whether v has a length of the form 3*U+1.
func (v Vector) CheckShape() error {
	_, err := UnitCount(len(v))
	return err
}

// Units returns U for a well-shaped vector. Call [Vector.CheckShape] first;
// for a malformed vector the result is the truncated quotient.
func (v Vector) Units() int {
	if len(v) == 0 {
		return 0
	}
	return (len(v) - 1) / 3
}

// Feed returns the destination of the circuit feed.
func (v Vector) Feed() int { return v[0] }

// Unit returns the stream destinations of unit i.
func (v Vector) Unit(i int) Streams {
	return Streams{
		Concentrate:  v[1+3*i],
		Intermediate: v[2+3*i],
		Tailing:      v[3+3*i],
	}
}

// ConcentrateID is the destination that denotes the Concentrate sink.
func (v Vector) ConcentrateID() int { return v.Units() }

// TailingsID is the destination that denotes the Tailings sink.
func (v Vector) TailingsID() int { return v.Units() + 1 }

// IsConcentrate reports whether dest is the Concentrate sink.
func (v Vector) IsConcentrate(dest int) bool { return dest == v.ConcentrateID() }

// IsTailings reports whether dest is the Tailings sink.
func (v Vector) IsTailings(dest int) bool { return dest == v.TailingsID() }

// IsUnit reports whether dest refers to a processing unit.
func (v Vector) IsUnit(dest int) bool { return dest >= 0 && dest < v.Units() }
