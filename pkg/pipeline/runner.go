package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/circuitviz/pkg/circuit"
	"github.com/matzehuels/circuitviz/pkg/composite"
	"github.com/matzehuels/circuitviz/pkg/flowsheet"
	"github.com/matzehuels/circuitviz/pkg/observability"
	"github.com/matzehuels/circuitviz/pkg/render"
)

// Runner executes pipeline runs.
//
// The Runner holds only its logger; every run starts from scratch and
// nothing is kept between runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// run carries the state of a single execution.
type run struct {
	ctx    context.Context
	logger *log.Logger
	result *Result
}

// Run executes every stage in order. The first failing stage aborts the run
// and its error is returned wrapped with the stage name. Outputs written by
// earlier stages are left in place.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	rn := r.start(ctx, opts)
	hooks := observability.Pipeline()
	hooks.OnRunStart(ctx, rn.result.RunID, opts.VectorPath)
	start := time.Now()

	err := rn.execute(opts)
	rn.result.Stats.Total = time.Since(start)
	hooks.OnRunComplete(ctx, rn.result.RunID, rn.result.Stats.Total, err)
	if err != nil {
		return nil, err
	}

	rn.logger.Info("pipeline complete",
		"units", rn.result.Stats.Units,
		"nodes", rn.result.Stats.NodeCount,
		"edges", rn.result.Stats.EdgeCount,
		"duration", rn.result.Stats.Total.Round(time.Millisecond))
	return rn.result, nil
}

func (r *Runner) start(ctx context.Context, opts Options) *run {
	id := uuid.NewString()
	return &run{
		ctx:    ctx,
		logger: opts.Logger.With("run", id[:8]),
		result: &Result{RunID: id},
	}
}

func (rn *run) execute(opts Options) error {
	res := rn.result

	if err := rn.stage(observability.StageLoad, func() (err error) {
		res.Vector, err = circuit.ReadFile(opts.VectorPath)
		return err
	}); err != nil {
		return err
	}
	rn.logger.Debug("loaded vector", "path", opts.VectorPath, "values", len(res.Vector))

	if opts.Validate {
		if err := rn.stage(observability.StageValidate, func() error {
			return circuit.Validate(res.Vector)
		}); err != nil {
			return err
		}
	}

	if err := rn.stage(observability.StageEncode, func() error {
		doc, err := flowsheet.Encode(res.Vector)
		if err != nil {
			return err
		}
		if res.Text, err = doc.MarshalText(); err != nil {
			return err
		}
		if opts.KeepDocument {
			if err := doc.WriteFile(opts.DocumentPath); err != nil {
				return err
			}
			res.DocumentPath = opts.DocumentPath
			rn.logger.Infof("Graph document saved to %s", opts.DocumentPath)
		}
		return nil
	}); err != nil {
		return err
	}
	rn.logger.Debug("encoded flowsheet", "document", string(res.Text))

	if err := rn.stage(observability.StageDecode, func() (err error) {
		res.Document, err = flowsheet.Parse(res.Text)
		return err
	}); err != nil {
		return err
	}
	res.Stats.Units = res.Vector.Units()
	res.Stats.NodeCount = len(res.Document.Nodes)
	res.Stats.EdgeCount = len(res.Document.Edges)

	if err := rn.stage(observability.StageGraph, func() error {
		return render.WriteGraph(rn.ctx, res.Document, render.Options{ShowLabels: opts.ShowLabels}, opts.GraphPath)
	}); err != nil {
		return err
	}
	res.GraphPath = opts.GraphPath
	rn.logger.Infof("Graph saved to %s", opts.GraphPath)

	if err := rn.stage(observability.StageTable, func() error {
		return render.WriteTable(rn.ctx, res.Vector, opts.TablePath)
	}); err != nil {
		return err
	}
	res.TablePath = opts.TablePath
	rn.logger.Infof("Vector image saved to %s", opts.TablePath)

	if err := rn.stage(observability.StageComposite, func() error {
		bounds, err := composite.Merge(opts.GraphPath, opts.TablePath, opts.MergedPath)
		res.Stats.MergedWidth, res.Stats.MergedHeight = bounds.Dx(), bounds.Dy()
		return err
	}); err != nil {
		return err
	}
	res.MergedPath = opts.MergedPath
	rn.logger.Infof("Merged image saved to %s", opts.MergedPath)
	return nil
}

// stage runs fn as the named stage, reporting it to the hooks and
// recording its duration.
func (rn *run) stage(name string, fn func() error) error {
	hooks := observability.Pipeline()
	hooks.OnStageStart(rn.ctx, name)

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	hooks.OnStageComplete(rn.ctx, name, elapsed, err)
	rn.result.Stats.Stages = append(rn.result.Stats.Stages, StageTiming{Stage: name, Duration: elapsed})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	rn.logger.Debug("stage complete", "stage", name, "duration", elapsed)
	return nil
}

// Encode loads the vector at path and returns it with its flowsheet document.
func (r *Runner) Encode(ctx context.Context, path string) (circuit.Vector, *flowsheet.Document, error) {
	v, err := circuit.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", observability.StageLoad, err)
	}
	doc, err := flowsheet.Encode(v)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", observability.StageEncode, err)
	}
	r.Logger.Debug("encoded flowsheet", "units", v.Units(), "nodes", len(doc.Nodes), "edges", len(doc.Edges))
	return v, doc, nil
}

// Check loads the vector at path and runs the validity checker on it.
func (r *Runner) Check(ctx context.Context, path string) (circuit.Vector, error) {
	v, err := circuit.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", observability.StageLoad, err)
	}
	if err := circuit.Validate(v); err != nil {
		return v, fmt.Errorf("%s: %w", observability.StageValidate, err)
	}
	return v, nil
}
