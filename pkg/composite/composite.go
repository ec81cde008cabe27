// Package composite stacks the flowsheet graph image over the vector table
// image.
//
// The table is rescaled with a Lanczos filter to the exact width of the
// graph, keeping its aspect ratio, and pasted directly below it:
//
//	err := composite.Merge("graph_image.png", "vector_image.png", "merged_image.png")
//
// Missing or undecodable inputs and unwritable outputs wrap [errs.ErrIO].
package composite

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/circuitviz/pkg/errs"
)

// Stack places top at the origin and bottom, rescaled to the width of top,
// directly beneath it. The rescaled height is truncated and at least 1.
func Stack(top, bottom image.Image) (*image.NRGBA, error) {
	tb, bb := top.Bounds(), bottom.Bounds()
	if tb.Empty() || bb.Empty() {
		return nil, fmt.Errorf("%w: cannot stack empty image (%dx%d over %dx%d)",
			errs.ErrIO, tb.Dx(), tb.Dy(), bb.Dx(), bb.Dy())
	}

	width := tb.Dx()
	height := max(int(float64(width)*float64(bb.Dy())/float64(bb.Dx())), 1)
	scaled := imaging.Resize(bottom, width, height, imaging.Lanczos)

	canvas := imaging.New(width, tb.Dy()+height, color.Black)
	canvas = imaging.Paste(canvas, top, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, scaled, image.Pt(0, tb.Dy()))
	return canvas, nil
}

// Merge stacks the images at graphPath and tablePath and writes the result
// to outPath as PNG. It returns the bounds of the merged image.
func Merge(graphPath, tablePath, outPath string) (image.Rectangle, error) {
	top, err := open(graphPath)
	if err != nil {
		return image.Rectangle{}, err
	}
	bottom, err := open(tablePath)
	if err != nil {
		return image.Rectangle{}, err
	}

	merged, err := Stack(top, bottom)
	if err != nil {
		return image.Rectangle{}, err
	}
	if err := save(merged, outPath); err != nil {
		return image.Rectangle{}, err
	}
	return merged.Bounds(), nil
}

func open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open image %s: %v", errs.ErrIO, path, err)
	}
	return img, nil
}

func save(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", errs.ErrIO, path, err)
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("%w: encode %s: %v", errs.ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", errs.ErrIO, path, err)
	}
	return nil
}
