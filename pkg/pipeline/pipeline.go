// Package pipeline runs the complete vector → flowsheet → image pipeline.
//
// # Architecture
//
// A run is a fixed sequence of stages. Each stage's output feeds the next
// and any error aborts the run:
//
//  1. Load: read the circuit vector from a file
//  2. Validate (optional): check the circuit is structurally sound
//  3. Encode: build the flowsheet document and serialize it to text
//  4. Decode: parse the text back into the document that gets rendered
//  5. Graph: render the flowsheet PNG
//  6. Table: render the vector table PNG
//  7. Composite: stack the two images into the merged PNG
//
// Every path is passed explicitly through [Options]; nothing depends on the
// process working directory.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Run(ctx, pipeline.Options{
//	    VectorPath: "vector_data.txt",
//	    OutputDir:  "output_img",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.MergedPath)
//
// Options can also be loaded from a TOML file with [LoadConfig].
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circuitviz/pkg/circuit"
	"github.com/matzehuels/circuitviz/pkg/flowsheet"
)

// =============================================================================
// Default Values
// =============================================================================

// Default file names, relative to Options.OutputDir.
const (
	DefaultOutputDir    = "."
	DefaultDocumentName = "graph_data.txt"
	DefaultGraphName    = "graph_image.png"
	DefaultTableName    = "vector_image.png"
	DefaultMergedName   = "merged_image.png"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// Field tags name the keys accepted in a TOML config file.
type Options struct {
	// Input
	VectorPath string `toml:"vector"`

	// Outputs. Empty paths default to well-known names inside OutputDir.
	OutputDir    string `toml:"output_dir"`
	DocumentPath string `toml:"document"`
	GraphPath    string `toml:"graph"`
	TablePath    string `toml:"table"`
	MergedPath   string `toml:"merged"`

	// Behavior
	ShowLabels   bool `toml:"show_labels"`   // print stream names on edges
	Validate     bool `toml:"validate"`      // reject structurally invalid circuits
	KeepDocument bool `toml:"keep_document"` // write the intermediate document to DocumentPath

	// Runtime options (not configurable from file)
	Logger *log.Logger `toml:"-"`
}

// SetDefaults fills empty output paths and the logger.
func (o *Options) SetDefaults() {
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.DocumentPath == "" {
		o.DocumentPath = filepath.Join(o.OutputDir, DefaultDocumentName)
	}
	if o.GraphPath == "" {
		o.GraphPath = filepath.Join(o.OutputDir, DefaultGraphName)
	}
	if o.TablePath == "" {
		o.TablePath = filepath.Join(o.OutputDir, DefaultTableName)
	}
	if o.MergedPath == "" {
		o.MergedPath = filepath.Join(o.OutputDir, DefaultMergedName)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults checks required fields and applies defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.VectorPath == "" {
		return fmt.Errorf("vector path is required")
	}
	o.SetDefaults()

	outputs := map[string]string{"graph": o.GraphPath, "table": o.TablePath, "merged": o.MergedPath}
	if o.KeepDocument {
		outputs["document"] = o.DocumentPath
	}
	seen := make(map[string]string, len(outputs))
	for name, p := range outputs {
		clean := filepath.Clean(p)
		if clean == filepath.Clean(o.VectorPath) {
			return fmt.Errorf("%s output would overwrite the vector file %s", name, o.VectorPath)
		}
		if other, ok := seen[clean]; ok {
			return fmt.Errorf("%s and %s outputs share the path %s", other, name, p)
		}
		seen[clean] = name
	}
	return nil
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies the run in logs and hooks.
	RunID string

	// Vector is the loaded circuit vector.
	Vector circuit.Vector

	// Document is the flowsheet as decoded from its text form.
	Document *flowsheet.Document

	// Text is the serialized document.
	Text []byte

	// Written output paths. DocumentPath is empty unless the document was kept.
	DocumentPath string
	GraphPath    string
	TablePath    string
	MergedPath   string

	// Stats contains counts and timings.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Units        int
	NodeCount    int
	EdgeCount    int
	MergedWidth  int
	MergedHeight int
	Stages       []StageTiming
	Total        time.Duration
}

// StageTiming records how long one stage ran.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}
