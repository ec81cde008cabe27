package circuit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/circuitviz/pkg/errs"
)

// ReadFile loads a vector from the first line of the file at path.
func ReadFile(path string) (Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open vector: %v", errs.ErrIO, err)
	}
	defer f.Close()

	v, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Read parses the first line of r. Subsequent lines are never consumed past
// the first newline.
func Read(r io.Reader) (Vector, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: read vector: %v", errs.ErrIO, err)
	}
	if line == "" {
		return nil, fmt.Errorf("%w: empty vector file", errs.ErrFormat)
	}
	return Parse(line)
}

// Parse converts one comma-separated line of integers into a vector.
// Whitespace around each value, including a trailing CR or LF, is ignored.
func Parse(line string) (Vector, error) {
	fields := strings.Split(line, ",")
	v := make(Vector, 0, len(fields))
	for i, field := range fields {
		s := strings.TrimSpace(field)
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %q is not an integer", errs.ErrFormat, i+1, s)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: field %d: %d is negative", errs.ErrFormat, i+1, n)
		}
		v = append(v, n)
	}
	return v, nil
}

// String renders v in the same comma-separated form Parse accepts.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
