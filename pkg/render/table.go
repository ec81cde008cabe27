package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/circuitviz/pkg/circuit"
)

// TableDOT draws v as a two-row table inside a single plaintext node.
// It fails with errs.ErrShape for a vector that does not encode whole units.
func TableDOT(v circuit.Vector) (string, error) {
	if err := v.CheckShape(); err != nil {
		return "", err
	}

	var label bytes.Buffer
	label.WriteString(`<table border="0" cellborder="1" cellspacing="0"><tr>`)
	label.WriteString(`<td>Feed</td>`)
	for i := 0; i < v.Units(); i++ {
		fmt.Fprintf(&label, `<td colspan="3">Unit %d</td>`, i)
	}
	label.WriteString(`</tr><tr>`)
	for _, n := range v {
		fmt.Fprintf(&label, `<td>%d</td>`, n)
	}
	label.WriteString(`</tr></table>`)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  dpi=%d;\n", DPI)
	fmt.Fprintf(&buf, "  \"vector\" [shape=plaintext, label=<%s>];\n", label.String())
	buf.WriteString("}\n")
	return buf.String(), nil
}

// Table renders v as a PNG table image.
func Table(ctx context.Context, v circuit.Vector) ([]byte, error) {
	dot, err := TableDOT(v)
	if err != nil {
		return nil, err
	}
	return PNG(ctx, dot)
}

// WriteTable renders v and stores the PNG at path.
func WriteTable(ctx context.Context, v circuit.Vector, path string) error {
	data, err := Table(ctx, v)
	if err != nil {
		return err
	}
	return writeImage(path, data)
}
