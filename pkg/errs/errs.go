// Package errs defines the error taxonomy shared by every circuitviz stage.
//
// Stages wrap one of the sentinels below with context using fmt.Errorf and
// the %w verb, so callers can classify a failure with [errors.Is] no matter
// how deep it was raised:
//
//	v, err := circuit.ReadFile(path)
//	if errors.Is(err, errs.ErrFormat) {
//	    // malformed input
//	}
//
// Every error is fatal to the run. Nothing in circuitviz retries.
package errs

import "errors"

// Sentinel errors for pipeline failures.
var (
	// ErrFormat is returned for malformed vector files or graph documents.
	ErrFormat = errors.New("format error")

	// ErrShape is returned when a vector's length does not encode a whole number of units.
	ErrShape = errors.New("shape error")

	// ErrRender is returned when the layout engine cannot be started or fails to render.
	ErrRender = errors.New("render error")

	// ErrIO is returned when a file is missing, unreadable or unwritable.
	ErrIO = errors.New("io error")

	// ErrInvalidCircuit is returned by the validity checker for a structurally unsound circuit.
	ErrInvalidCircuit = errors.New("invalid circuit")
)

// Kind returns the sentinel err wraps, or nil if it wraps none of them.
func Kind(err error) error {
	for _, k := range []error{ErrFormat, ErrShape, ErrRender, ErrIO, ErrInvalidCircuit} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
