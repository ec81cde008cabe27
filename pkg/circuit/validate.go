package circuit

import (
	"fmt"

	"github.com/matzehuels/circuitviz/pkg/errs"
)

// Validate reports the first structural rule v breaks, wrapped in
// [errs.ErrInvalidCircuit], or nil when the circuit is sound. A vector of
// the wrong length fails with [errs.ErrShape] instead.
func Validate(v Vector) error {
	if err := v.CheckShape(); err != nil {
		return err
	}
	u := v.Units()
	if u == 0 {
		return invalid("circuit has no units")
	}
	if !v.IsUnit(v.Feed()) {
		return invalid("feed destination %d is not a unit", v.Feed())
	}

	for i := 0; i < u; i++ {
		s := v.Unit(i)
		for _, d := range []struct {
			name string
			dest int
		}{{"concentrate", s.Concentrate}, {"intermediate", s.Intermediate}, {"tailing", s.Tailing}} {
			if d.dest > v.TailingsID() {
				return invalid("unit %d %s destination %d out of range [0, %d]", i, d.name, d.dest, v.TailingsID())
			}
			if d.dest == i {
				return invalid("unit %d routes its %s stream to itself", i, d.name)
			}
		}
		if s.Concentrate == s.Intermediate && s.Intermediate == s.Tailing {
			return invalid("unit %d routes all streams to %d", i, s.Concentrate)
		}
		if v.IsTailings(s.Concentrate) {
			return invalid("unit %d sends concentrate straight to tailings", i)
		}
		if v.IsConcentrate(s.Tailing) {
			return invalid("unit %d sends tailing straight to concentrate", i)
		}
	}

	reached, exits := walk(v)
	for i, ok := range reached {
		if !ok {
			return invalid("unit %d is not reachable from the feed", i)
		}
	}
	if !exits.concentrate || !exits.tailing {
		return invalid("no concentrate and tailing streams leave the circuit")
	}
	if u > 1 && exits.intermediate {
		return invalid("an intermediate stream leaves the circuit directly")
	}
	return nil
}

// exits records which stream kinds leave the circuit from a reachable unit.
type exits struct {
	concentrate  bool
	intermediate bool
	tailing      bool
}

// walk marks every unit reachable from the feed.
func walk(v Vector) ([]bool, exits) {
	var out exits
	reached := make([]bool, v.Units())
	stack := []int{v.Feed()}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reached[i] {
			continue
		}
		reached[i] = true

		s := v.Unit(i)
		for _, d := range []struct {
			dest int
			flag *bool
		}{{s.Concentrate, &out.concentrate}, {s.Intermediate, &out.intermediate}, {s.Tailing, &out.tailing}} {
			if v.IsUnit(d.dest) {
				stack = append(stack, d.dest)
			} else {
				*d.flag = true
			}
		}
	}
	return reached, out
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errs.ErrInvalidCircuit, fmt.Sprintf(format, args...))
}
