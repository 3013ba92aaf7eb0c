package scheduler

import (
	"time"

	"github.com/alexanderramin/confplan/internal/domain"
)

// Organize distributes talks over as few tracks as a First-Fit-Decreasing
// pass finds. Talks are sorted longest first; each pass offers every pending
// talk once to a fresh track, and the track is closed when the pass ends.
//
// The result is not guaranteed optimal. A pass that places nothing means the
// longest pending talk does not fit an empty track, and Organize returns an
// *domain.UnplaceableTalkError for it instead of looping.
func Organize(talks []domain.Talk) ([]*domain.Track, error) {
	pending := SortTalks(talks)
	var tracks []*domain.Track

	for len(pending) > 0 {
		track := domain.NewTrack()
		var rest []domain.Talk
		for _, talk := range pending {
			if !track.Add(talk) {
				rest = append(rest, talk)
			}
		}
		if len(rest) == len(pending) {
			return nil, &domain.UnplaceableTalkError{Talk: pending[0]}
		}
		tracks = append(tracks, track)
		pending = rest
	}

	return tracks, nil
}

// LowerBound is the fewest tracks any packing could use: the total talk
// duration divided by one track's capacity, rounded up.
func LowerBound(talks []domain.Talk) int {
	var total time.Duration
	for _, t := range talks {
		total += t.Duration
	}
	if total <= 0 {
		return 0
	}
	capacity := domain.NewTrack().Capacity()
	return int((total + capacity - 1) / capacity)
}
