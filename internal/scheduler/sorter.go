package scheduler

import (
	"sort"

	"github.com/alexanderramin/confplan/internal/domain"
)

// SortTalks returns the talks ordered longest first. Talks of equal duration
// keep their input order. The argument is not modified.
func SortTalks(talks []domain.Talk) []domain.Talk {
	sorted := make([]domain.Talk, len(talks))
	copy(sorted, talks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Duration > sorted[j].Duration
	})
	return sorted
}
