package app

import (
	"time"

	"github.com/alexanderramin/confplan/internal/domain"
)

type ScheduleRequest struct {
	Talks []domain.Talk
	Now   *time.Time
}

func NewScheduleRequest(talks []domain.Talk) ScheduleRequest {
	return ScheduleRequest{Talks: talks}
}

type ScheduleResponse struct {
	RunID        string
	GeneratedAt  time.Time
	Tracks       []*domain.Track
	TalkCount    int
	TotalMinutes int
	LowerBound   int
}

// IdleMinutes is the unused session time across all tracks.
func (r *ScheduleResponse) IdleMinutes() int {
	var capacity time.Duration
	for _, tr := range r.Tracks {
		capacity += tr.Capacity()
	}
	return int(capacity/time.Minute) - r.TotalMinutes
}
