package mocks

import (
	"context"
	"sync"

	"zonetag/infras/otel"
)

// Otel hands out scopes that remember the errors traced through them.
type Otel struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	o.spans = append(o.spans, spanName)
	o.mu.Unlock()

	return ctx, &scopeImpl{parent: o}
}

// Spans returns the span names opened so far.
func (o *Otel) Spans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.spans...)
}

// Errors returns every error passed to TraceError.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]error(nil), o.errors...)
}

func (o *Otel) record(err error) {
	o.mu.Lock()
	o.errors = append(o.errors, err)
	o.mu.Unlock()
}

func NewOtel() *Otel {
	return &Otel{}
}
