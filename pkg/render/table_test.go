package render

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/circuitviz/pkg/circuit"
	"github.com/matzehuels/circuitviz/pkg/errs"
)

func TestTableDOT(t *testing.T) {
	dot, err := TableDOT(circuit.Vector{0, 2, 1, 1, 0, 0, 3})
	if err != nil {
		t.Fatalf("TableDOT() error: %v", err)
	}

	want := `<tr><td>Feed</td><td colspan="3">Unit 0</td><td colspan="3">Unit 1</td></tr>` +
		`<tr><td>0</td><td>2</td><td>1</td><td>1</td><td>0</td><td>0</td><td>3</td></tr>`
	if !strings.Contains(dot, want) {
		t.Errorf("TableDOT() rows mismatch\n%s", dot)
	}
	for _, s := range []string{"dpi=300", "shape=plaintext", `cellborder="1"`} {
		if !strings.Contains(dot, s) {
			t.Errorf("TableDOT() missing %q", s)
		}
	}
}

func TestTableDOT_NoUnits(t *testing.T) {
	dot, err := TableDOT(circuit.Vector{7})
	if err != nil {
		t.Fatalf("TableDOT() error: %v", err)
	}
	if strings.Contains(dot, "Unit") {
		t.Error("TableDOT() with no units should have no Unit cells")
	}
	if !strings.Contains(dot, "<td>7</td>") {
		t.Error("TableDOT() should include the feed value")
	}
}

func TestTableDOT_Shape(t *testing.T) {
	_, err := TableDOT(circuit.Vector{0, 1})
	if !errors.Is(err, errs.ErrShape) {
		t.Errorf("TableDOT() error = %v, want ErrShape", err)
	}
}

func TestTable(t *testing.T) {
	data, err := Table(context.Background(), circuit.Vector{0, 1, 2, 2})
	if err != nil {
		t.Fatalf("Table() error: %v", err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		t.Errorf("Table() output is not a PNG: %v", err)
	}
}

func TestWriteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vector_image.png")
	if err := WriteTable(context.Background(), circuit.Vector{0, 1, 2, 2}, path); err != nil {
		t.Fatalf("WriteTable() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("WriteTable() did not create %s: %v", path, err)
	}
}
