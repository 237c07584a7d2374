package console

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// newTurnContext attaches a fresh sampled span context so every log line of a turn
// carries the same trace ID.
func newTurnContext(ctx context.Context) context.Context {
	traceID := trace.TraceID(uuid.New())

	var spanID trace.SpanID

	spanUUID := uuid.New()
	copy(spanID[:], spanUUID[:len(spanID)])

	sc := trace.NewSpanContext(trace.SpanContextConfig{ //nolint:exhaustruct
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})

	return trace.ContextWithSpanContext(ctx, sc)
}

func (s *Server) loggerMiddleware() func(next handler) handler {
	return func(next handler) handler {
		return func(ctx context.Context) error {
			start := time.Now().UTC()

			ctx = newTurnContext(ctx)

			err := next(ctx)

			var traceID string

			if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
				traceID = sc.TraceID().String()
			}

			choice, _ := choiceFromContext(ctx)

			s.l.LogInfo(
				"type: turn, choice: %q, traceID: %s, latency: %s, err: %v",
				choice,
				traceID,
				time.Since(start),
				err,
			)

			return err
		}
	}
}

// recoverMiddleware keeps the loop alive when a turn panics. Hotel operations finish
// their state change before returning, so the hotel stays consistent.
func (s *Server) recoverMiddleware() func(next handler) handler {
	return func(next handler) handler {
		return func(ctx context.Context) (err error) {
			defer func() {
				if re := recover(); re != nil {
					rerr, ok := re.(error)
					if !ok {
						rerr = fmt.Errorf("%v: %w", re, ErrPanic)
					}

					s.l.LogErrorf("type: panic, error: %v", rerr)
					s.println("Something went wrong, please try again.")

					err = nil
				}
			}()

			return next(ctx)
		}
	}
}

func (s *Server) applyMiddlewares(h handler, middlewares ...func(handler) handler) handler {
	for _, middleware := range middlewares {
		h = middleware(h)
	}

	return h
}
