package app

import (
	"time"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/scheduler"
)

// ScheduleRequest is the use-case-level input to a scheduling run. Now is
// optional; when nil the use case supplies the real wall clock exactly
// once, at the boundary — the scheduler core itself never reads it.
type ScheduleRequest struct {
	Now             *time.Time
	ProjectScope    []string // optional goal-id filter
	IncludeArchived bool
	DryRun          bool
}

func NewScheduleRequest() ScheduleRequest {
	return ScheduleRequest{}
}

// ScheduleResponse mirrors scheduler.Result at the use-case boundary, with
// its own request-scoped bookkeeping layered on top.
type ScheduleResponse struct {
	GeneratedAt     time.Time
	ScheduledBlocks []domain.PlacedBlock
	Overloaded      []string
	Warnings        []domain.Warning
	TotalMinutes    int
}

func NewScheduleResponse(generatedAt time.Time, result scheduler.Result) *ScheduleResponse {
	total := 0
	for _, b := range result.ScheduledBlocks {
		total += b.DurationMinutes
	}
	return &ScheduleResponse{
		GeneratedAt:     generatedAt,
		ScheduledBlocks: result.ScheduledBlocks,
		Overloaded:      result.Overloaded,
		Warnings:        result.Warnings,
		TotalMinutes:    total,
	}
}

type ScheduleErrorCode string

const (
	ScheduleErrNoItems       ScheduleErrorCode = "NO_ITEMS"
	ScheduleErrDataIntegrity ScheduleErrorCode = "DATA_INTEGRITY"
	ScheduleErrInternalError ScheduleErrorCode = "INTERNAL_ERROR"
)

type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
}

func (e *ScheduleError) Error() string {
	return string(e.Code) + ": " + e.Message
}
