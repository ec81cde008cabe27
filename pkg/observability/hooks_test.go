package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnRunStart(ctx, "run", "vector_data.txt")
	p.OnStageStart(ctx, StageLoad)
	p.OnStageComplete(ctx, StageLoad, time.Second, nil)
	p.OnRunComplete(ctx, "run", time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should keep existing hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	ctx := context.Background()
	Pipeline().OnStageStart(ctx, StageGraph)
	Pipeline().OnStageComplete(ctx, StageGraph, time.Millisecond, nil)

	if len(custom.started) != 1 || custom.started[0] != StageGraph {
		t.Errorf("started = %v, want [%s]", custom.started, StageGraph)
	}
	if len(custom.completed) != 1 || custom.completed[0] != StageGraph {
		t.Errorf("completed = %v, want [%s]", custom.completed, StageGraph)
	}
}

type testPipelineHooks struct {
	NoopPipelineHooks
	started   []string
	completed []string
}

func (h *testPipelineHooks) OnStageStart(_ context.Context, stage string) {
	h.started = append(h.started, stage)
}

func (h *testPipelineHooks) OnStageComplete(_ context.Context, stage string, _ time.Duration, _ error) {
	h.completed = append(h.completed, stage)
}
