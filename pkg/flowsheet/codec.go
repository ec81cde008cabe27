package flowsheet

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/matzehuels/circuitviz/pkg/errs"
)

// Section headers of the text format.
const (
	HeaderNodes = "NODES"
	HeaderEdges = "EDGES"
)

const (
	nodeFields          = 5
	unlabeledEdgeFields = 3
	labeledEdgeFields   = 4
)

// MarshalText encodes d in the NODES/EDGES text format. Fields must be
// non-empty and free of whitespace, otherwise the output could not be parsed
// back and an errs.ErrFormat error is returned.
func (d *Document) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(HeaderNodes + "\n")
	for i, n := range d.Nodes {
		if err := checkFields(n.ID, n.Label, n.Shape, n.Color, n.Style); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		fmt.Fprintf(&buf, "%s %s %s %s %s\n", n.ID, n.Label, n.Shape, n.Color, n.Style)
	}

	buf.WriteString("\n" + HeaderEdges + "\n")
	for i, e := range d.Edges {
		if err := checkFields(e.Source, e.Target, e.Color); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if e.Stream == StreamNone {
			fmt.Fprintf(&buf, "%s %s %s\n", e.Source, e.Target, e.Color)
			continue
		}
		if err := checkFields(string(e.Stream)); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		fmt.Fprintf(&buf, "%s %s %s %s\n", e.Source, e.Target, e.Stream, e.Color)
	}
	return buf.Bytes(), nil
}

func checkFields(fields ...string) error {
	for _, f := range fields {
		if f == "" {
			return fmt.Errorf("%w: empty field", errs.ErrFormat)
		}
		if strings.ContainsFunc(f, unicode.IsSpace) {
			return fmt.Errorf("%w: field %q contains whitespace", errs.ErrFormat, f)
		}
	}
	return nil
}

// WriteTo writes the text form of d to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := d.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// WriteFile writes the text form of d to path, creating parent directories.
func (d *Document) WriteFile(path string) error {
	data, err := d.MarshalText()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: write document: %v", errs.ErrIO, err)
	}
	return nil
}

// UnmarshalText replaces d with the document parsed from text.
func (d *Document) UnmarshalText(text []byte) error {
	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

// ReadFile parses the document stored at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open document: %v", errs.ErrIO, err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes the text format.
func Parse(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data))
}

type section int

const (
	sectionNone section = iota
	sectionNodes
	sectionEdges
)

// Read decodes the text format from r. Blank lines are skipped and section
// headers must match exactly. A data line before any header, a node line
// without 5 fields, an edge line without 3 or 4 fields, or a repeated node
// id fails with errs.ErrFormat.
func Read(r io.Reader) (*Document, error) {
	doc := &Document{}
	seen := make(map[string]bool)
	sec := sectionNone

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case HeaderNodes:
			sec = sectionNodes
			continue
		case HeaderEdges:
			sec = sectionEdges
			continue
		}

		fields := strings.Fields(line)
		switch sec {
		case sectionNodes:
			if len(fields) != nodeFields {
				return nil, lineErr(lineNo, "node needs %d fields, got %d", nodeFields, len(fields))
			}
			n := Node{ID: fields[0], Label: fields[1], Shape: fields[2], Color: fields[3], Style: fields[4]}
			if seen[n.ID] {
				return nil, lineErr(lineNo, "duplicate node id %q", n.ID)
			}
			seen[n.ID] = true
			doc.Nodes = append(doc.Nodes, n)
		case sectionEdges:
			switch len(fields) {
			case unlabeledEdgeFields:
				doc.Edges = append(doc.Edges, Edge{Source: fields[0], Target: fields[1], Color: fields[2]})
			case labeledEdgeFields:
				doc.Edges = append(doc.Edges, Edge{Source: fields[0], Target: fields[1], Stream: Stream(fields[2]), Color: fields[3]})
			default:
				return nil, lineErr(lineNo, "edge needs %d or %d fields, got %d", unlabeledEdgeFields, labeledEdgeFields, len(fields))
			}
		default:
			return nil, lineErr(lineNo, "data before %s or %s header", HeaderNodes, HeaderEdges)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read document: %v", errs.ErrIO, err)
	}
	return doc, nil
}

func lineErr(lineNo int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", errs.ErrFormat, lineNo, fmt.Sprintf(format, args...))
}
