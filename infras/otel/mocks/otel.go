package mocks

import (
	"context"
	"hallbook/infras/otel"
	"sync"
)

type otelImpl struct {
	recorder *Recorder
}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	if o.recorder != nil {
		o.recorder.record(spanName)
	}

	return ctx, NewScope()
}

func NewOtel() otel.Otel {
	return &otelImpl{}
}

// Recorder keeps the span names opened through it, in order.
type Recorder struct {
	mu    sync.Mutex
	spans []string
}

func NewRecorder() (*Recorder, otel.Otel) {
	recorder := &Recorder{}

	return recorder, &otelImpl{recorder: recorder}
}

func (r *Recorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.spans = append(r.spans, name)
}

func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.spans...)
}
