package app

import "context"

type ScheduleUseCase interface {
	Plan(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error)
}
