package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"zonetag/config"
	"zonetag/infras/otel"
)

func TestNew_WithoutEndpointUsesNoop(t *testing.T) {
	cfg := &config.Config{}

	ot := otel.New(cfg)

	ctx, scope := ot.NewScope(context.Background(), "service", "service.Test")
	assert.NotNil(t, ctx)

	assert.NotPanics(t, func() {
		scope.SetAttributes(map[string]any{
			"bool":    true,
			"string":  "value",
			"int":     1,
			"int64":   int64(2),
			"float64": 1.5,
			"slice":   []string{"a"},
			"other":   struct{}{},
		})
		scope.AddEvent("event")
		scope.TraceIfError(nil)
		scope.TraceIfError(errors.New("boom"))
		scope.End()
	})
}
