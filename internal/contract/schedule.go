package contract

import "github.com/corvidae/daywise/internal/app"

type ScheduleRequest = app.ScheduleRequest

func NewScheduleRequest() ScheduleRequest {
	return app.NewScheduleRequest()
}

type ScheduleResponse = app.ScheduleResponse

type ScheduleErrorCode = app.ScheduleErrorCode

const (
	ScheduleErrNoItems       ScheduleErrorCode = app.ScheduleErrNoItems
	ScheduleErrDataIntegrity ScheduleErrorCode = app.ScheduleErrDataIntegrity
	ScheduleErrInternalError ScheduleErrorCode = app.ScheduleErrInternalError
)

type ScheduleError = app.ScheduleError
