package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/buildtrigger/internal/adapters/logger"
	"go.trai.ch/buildtrigger/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer used by the function.
const InstrumentationName = "go.trai.ch/buildtrigger"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewBridge(log)))
			otel.SetTracerProvider(tp)
			return NewOTelTracer(InstrumentationName), nil
		},
	})
}
