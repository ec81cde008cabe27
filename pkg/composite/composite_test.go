package composite

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/circuitviz/pkg/errs"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func TestStack(t *testing.T) {
	tests := []struct {
		name        string
		top, bottom image.Point
		wantHeight  int
	}{
		{"downscale bottom", image.Pt(200, 100), image.Pt(400, 50), 125},
		{"upscale bottom", image.Pt(300, 80), image.Pt(100, 40), 200},
		{"same width", image.Pt(120, 60), image.Pt(120, 30), 90},
		{"truncates", image.Pt(100, 10), image.Pt(300, 100), 43},
		{"at least one row", image.Pt(10, 10), image.Pt(1000, 1), 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := imaging.New(tt.top.X, tt.top.Y, red)
			bottom := imaging.New(tt.bottom.X, tt.bottom.Y, blue)

			got, err := Stack(top, bottom)
			if err != nil {
				t.Fatalf("Stack() error: %v", err)
			}
			b := got.Bounds()
			if b.Dx() != tt.top.X {
				t.Errorf("width = %d, want %d", b.Dx(), tt.top.X)
			}
			if b.Dy() != tt.wantHeight {
				t.Errorf("height = %d, want %d", b.Dy(), tt.wantHeight)
			}
		})
	}
}

func TestStackPlacement(t *testing.T) {
	top := imaging.New(40, 20, red)
	bottom := imaging.New(80, 20, blue)

	got, err := Stack(top, bottom)
	if err != nil {
		t.Fatalf("Stack() error: %v", err)
	}

	// Graph on top, table directly beneath, both from x=0.
	if c := got.NRGBAAt(0, 0); c != red {
		t.Errorf("pixel (0,0) = %v, want red", c)
	}
	if c := got.NRGBAAt(39, 19); c != red {
		t.Errorf("pixel (39,19) = %v, want red", c)
	}
	if c := got.NRGBAAt(20, 25); c.B < 200 || c.R > 50 {
		t.Errorf("pixel (20,25) = %v, want blue", c)
	}
}

func TestStackEmpty(t *testing.T) {
	_, err := Stack(image.NewNRGBA(image.Rect(0, 0, 0, 0)), imaging.New(10, 10, blue))
	if !errors.Is(err, errs.ErrIO) {
		t.Errorf("Stack(empty) error = %v, want ErrIO", err)
	}
}

func TestMerge(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graph_image.png")
	tablePath := filepath.Join(dir, "vector_image.png")
	outPath := filepath.Join(dir, "out", "merged_image.png")

	if err := imaging.Save(imaging.New(300, 120, red), graphPath); err != nil {
		t.Fatal(err)
	}
	if err := imaging.Save(imaging.New(600, 60, blue), tablePath); err != nil {
		t.Fatal(err)
	}

	bounds, err := Merge(graphPath, tablePath, outPath)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if bounds.Dx() != 300 || bounds.Dy() != 150 {
		t.Errorf("Merge() bounds = %v, want 300x150", bounds)
	}

	img, err := imaging.Open(outPath)
	if err != nil {
		t.Fatalf("open merged: %v", err)
	}
	if img.Bounds() != bounds {
		t.Errorf("merged file bounds = %v, want %v", img.Bounds(), bounds)
	}
}

func TestMergeMissingInput(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graph_image.png")
	if err := imaging.Save(imaging.New(10, 10, red), graphPath); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "merged_image.png")

	tests := []struct {
		name         string
		graph, table string
	}{
		{"missing table", graphPath, filepath.Join(dir, "nope.png")},
		{"missing graph", filepath.Join(dir, "nope.png"), graphPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Merge(tt.graph, tt.table, outPath)
			if !errors.Is(err, errs.ErrIO) {
				t.Errorf("Merge() error = %v, want ErrIO", err)
			}
			if _, err := os.Stat(outPath); !os.IsNotExist(err) {
				t.Error("Merge() should not write output on failure")
			}
		})
	}
}

func TestMergeUnreadableInput(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "graph_image.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Merge(bad, bad, filepath.Join(dir, "merged.png"))
	if !errors.Is(err, errs.ErrIO) {
		t.Errorf("Merge(unreadable) error = %v, want ErrIO", err)
	}
}
