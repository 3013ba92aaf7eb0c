package service

import "github.com/alexanderramin/confplan/internal/app"

type ScheduleService = app.ScheduleUseCase
