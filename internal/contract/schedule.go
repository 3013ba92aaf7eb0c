package contract

import (
	"github.com/alexanderramin/confplan/internal/app"
	"github.com/alexanderramin/confplan/internal/domain"
)

type ScheduleRequest = app.ScheduleRequest

func NewScheduleRequest(talks []domain.Talk) ScheduleRequest {
	return app.NewScheduleRequest(talks)
}

type ScheduleResponse = app.ScheduleResponse
