package scheduler

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/alexanderramin/confplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomTalks(rng *rand.Rand) []domain.Talk {
	n := rng.Intn(40)
	talks := make([]domain.Talk, n)
	for i := range talks {
		minutes := 5
		if rng.Intn(4) > 0 {
			minutes = (rng.Intn(48) + 1) * 5 // 5–240
		}
		talks[i] = testutil.Talk(fmt.Sprintf("talk-%d", i), minutes)
	}
	return talks
}

// TestOrganize_Invariants property-tests capacity, coverage and placement
// ordering over random talk sets that always fit an empty track.
func TestOrganize_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		talks := randomTalks(rng)

		tracks, err := Organize(talks)
		require.NoError(t, err, "trial %d", trial)

		// Invariant 1: no session exceeds its window
		for i, tr := range tracks {
			for _, s := range []*domain.Session{tr.Morning(), tr.Afternoon()} {
				assert.LessOrEqual(t, s.TalkDuration(), s.TotalTime(),
					"trial %d track %d: session over capacity", trial, i+1)
			}
		}

		// Invariant 2: every talk scheduled exactly once
		assert.Equal(t, testutil.Multiset(talks), testutil.Multiset(testutil.ScheduledTalks(tracks)),
			"trial %d: scheduled talks must equal input", trial)

		// Invariant 3: at least the theoretical minimum of tracks, none empty
		assert.GreaterOrEqual(t, len(tracks), LowerBound(talks), "trial %d", trial)
		for i, tr := range tracks {
			assert.Positive(t, tr.Len(), "trial %d track %d is empty", trial, i+1)
		}

		for i, tr := range tracks {
			// Invariant 4: longest offered first, so each session is non-increasing
			for _, s := range []*domain.Session{tr.Morning(), tr.Afternoon()} {
				st := s.Talks()
				for j := 1; j < len(st); j++ {
					assert.GreaterOrEqual(t, st[j-1].Duration, st[j].Duration,
						"trial %d track %d: shorter talk placed before longer", trial, i+1)
				}
			}

			// Invariant 5: afternoon talks did not fit the morning
			for _, talk := range tr.Afternoon().Talks() {
				assert.False(t, tr.Morning().Fits(talk),
					"trial %d track %d: %s fit the morning", trial, i+1, talk)
			}

			// Invariant 6: talks in later tracks did not fit this one
			for _, later := range tracks[i+1:] {
				for _, talk := range later.Talks() {
					assert.False(t, tr.Fits(talk),
						"trial %d track %d: %s should have been placed here", trial, i+1, talk)
				}
			}
		}
	}
}

func TestOrganize_OversizedAlwaysReported(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		talks := randomTalks(rng)
		oversized := testutil.Talk("oversized", 241+rng.Intn(300))
		pos := rng.Intn(len(talks) + 1)
		talks = append(talks[:pos], append([]domain.Talk{oversized}, talks[pos:]...)...)

		_, err := Organize(talks)
		var unplaceable *domain.UnplaceableTalkError
		require.ErrorAs(t, err, &unplaceable, "trial %d", trial)
		assert.Equal(t, oversized, unplaceable.Talk, "trial %d", trial)
	}
}
