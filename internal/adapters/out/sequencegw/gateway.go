// Package sequencegw lets editing sessions persist a board through the save-sequence
// command. Every save runs inside its own trace span.
package sequencegw

import (
	"context"
	"log/slog"

	"routeboard/internal/core/application/usecases/commands"
	"routeboard/internal/core/domain/model/kernel"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "routeboard/sequencegw"

type sequenceSaver interface {
	Handle(ctx context.Context, cmd commands.SaveSequenceCommand) error
}

// Gateway implements ports.SequenceGateway on top of SaveSequenceCommandHandler.
type Gateway struct {
	saver  sequenceSaver
	tracer trace.Tracer
	logger *slog.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(g *Gateway) {
		g.tracer = tp.Tracer(instrumentationName)
	}
}

// WithLogger sets the logger used for failed saves.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger.With("component", "sequencegw")
	}
}

func New(saver sequenceSaver, opts ...Option) *Gateway {
	g := &Gateway{
		saver:  saver,
		tracer: otel.Tracer(instrumentationName),
		logger: slog.Default().With("component", "sequencegw"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SaveOrder stores ids as the sequence of day. Errors are returned unwrapped;
// the session reports them as persistence failures.
func (g *Gateway) SaveOrder(ctx context.Context, day kernel.Day, ids []kernel.UUID) error {
	ctx, span := g.tracer.Start(ctx, "sequence.save",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("routeboard.day", day.String()),
			attribute.Int("routeboard.order_count", len(ids)),
		),
	)
	defer span.End()

	cmd, err := commands.NewSaveSequenceCommand(day, ids)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid sequence")
		return err
	}

	if err := g.saver.Handle(ctx, cmd); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.logger.ErrorContext(ctx, "failed to save sequence",
			"day", day.String(),
			"orders", len(ids),
			"error", err,
		)
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
