package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/confplan/internal/app"
	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/alexanderramin/confplan/internal/scheduler"
	"github.com/google/uuid"
)

type scheduleService struct {
	observer UseCaseObserver
}

func NewScheduleService(observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{observer: combineObservers(observers)}
}

func (s *scheduleService) Plan(ctx context.Context, req app.ScheduleRequest) (resp *app.ScheduleResponse, err error) {
	startedAt := time.Now().UTC()
	runID := uuid.New().String()
	fields := map[string]any{
		"run_id":     runID,
		"talk_count": len(req.Talks),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan-schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	generatedAt := startedAt
	if req.Now != nil {
		generatedAt = *req.Now
	}

	lowerBound := scheduler.LowerBound(req.Talks)
	fields["lower_bound"] = lowerBound

	tracks, err := scheduler.Organize(req.Talks)
	if err != nil {
		var unplaceable *domain.UnplaceableTalkError
		if errors.As(err, &unplaceable) {
			fields["unplaceable_talk"] = unplaceable.Talk.Description
		}
		return nil, fmt.Errorf("organizing talks: %w", err)
	}
	fields["track_count"] = len(tracks)

	var total time.Duration
	for _, t := range req.Talks {
		total += t.Duration
	}

	return &app.ScheduleResponse{
		RunID:        runID,
		GeneratedAt:  generatedAt,
		Tracks:       tracks,
		TalkCount:    len(req.Talks),
		TotalMinutes: int(total / time.Minute),
		LowerBound:   lowerBound,
	}, nil
}
