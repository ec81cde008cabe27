// Package observability provides hooks for instrumenting circuitviz runs.
//
// The pipeline reports the start and end of each stage to the registered
// [PipelineHooks]. The default implementation does nothing, so libraries can
// call hooks unconditionally and only binaries that care register one:
//
//	func main() {
//	    observability.SetPipelineHooks(&myHooks{})
//	    // ... run pipeline
//	}
//
// Libraries emit events like this:
//
//	observability.Pipeline().OnStageStart(ctx, observability.StageRender)
//	// ... render ...
//	observability.Pipeline().OnStageComplete(ctx, observability.StageRender, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Stage names reported by the pipeline, in execution order.
const (
	StageLoad      = "load"
	StageValidate  = "validate"
	StageEncode    = "encode"
	StageDecode    = "decode"
	StageGraph     = "graph"
	StageTable     = "table"
	StageComposite = "composite"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the rendering pipeline.
type PipelineHooks interface {
	OnRunStart(ctx context.Context, runID, vectorPath string)
	OnRunComplete(ctx context.Context, runID string, duration time.Duration, err error)

	OnStageStart(ctx context.Context, stage string)
	OnStageComplete(ctx context.Context, stage string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRunStart(context.Context, string, string)                    {}
func (NoopPipelineHooks) OnRunComplete(context.Context, string, time.Duration, error)   {}
func (NoopPipelineHooks) OnStageStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnStageComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any run.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
