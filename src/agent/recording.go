package agent

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/tripsmith/tripsmith/src/aisdk"
)

// ExecutionRecord captures one tool invocation for later persistence.
type ExecutionRecord struct {
	Tool     string
	Input    json.RawMessage
	Output   string
	Error    string
	Duration time.Duration
}

// ExecutionRecorder collects execution records for a single run. Safe
// for concurrent use.
type ExecutionRecorder struct {
	mu      sync.Mutex
	records []ExecutionRecord
}

func NewExecutionRecorder() *ExecutionRecorder {
	return &ExecutionRecorder{}
}

func (r *ExecutionRecorder) add(record ExecutionRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
}

// Records returns a copy of the collected records in execution order.
func (r *ExecutionRecorder) Records() []ExecutionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ExecutionRecord, len(r.records))
	copy(out, r.records)
	return out
}

type recorderContextKey struct{}

// WithRecorder attaches a recorder to the context. Tool executions made
// under this context are captured when RecordingMiddleware is registered.
func WithRecorder(ctx context.Context, recorder *ExecutionRecorder) context.Context {
	return context.WithValue(ctx, recorderContextKey{}, recorder)
}

// RecorderFromContext returns the attached recorder, or nil.
func RecorderFromContext(ctx context.Context) *ExecutionRecorder {
	recorder, _ := ctx.Value(recorderContextKey{}).(*ExecutionRecorder)
	return recorder
}

// RecordingMiddleware captures tool executions into the context's
// recorder. A context without a recorder passes through untouched, so
// the toolbox can be shared between recorded and unrecorded runs.
func RecordingMiddleware() ToolMiddleware {
	return func(next ToolExecutor) ToolExecutor {
		return func(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error) {
			recorder := RecorderFromContext(ctx)
			if recorder == nil {
				return next(ctx, call)
			}

			start := time.Now()
			result, err := next(ctx, call)

			record := ExecutionRecord{
				Tool:     call.Function.Name,
				Input:    call.Function.Arguments,
				Duration: time.Since(start),
			}
			switch {
			case err != nil:
				record.Error = err.Error()
			case result != nil && result.IsError:
				record.Error = string(result.Content)
			case result != nil:
				record.Output = string(result.Content)
			}
			recorder.add(record)

			return result, err
		}
	}
}
