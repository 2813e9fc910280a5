package obslog

import (
	"context"
	"time"
)

// UseCaseEvent captures lightweight execution telemetry for a use case
// invocation (app.ScheduleUseCase, app.ImportUseCase, and so on).
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver discards every event. Used in tests and whenever
// telemetry is not wired.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// LogUseCaseObserver reports events through the package-level Logger.
type LogUseCaseObserver struct{}

func (LogUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	fields := make([]interface{}, 0, 6+len(event.Fields)*2)
	fields = append(fields,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		fields = append(fields, k, v)
	}
	if event.Err != nil {
		fields = append(fields, "error", event.Err.Error())
		Error("use_case", fields...)
		return
	}
	Info("use_case", fields...)
}
