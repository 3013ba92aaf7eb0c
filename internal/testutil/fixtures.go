package testutil

import (
	"time"

	"github.com/alexanderramin/confplan/internal/domain"
)

// Talk builds a talk of the given length in minutes.
func Talk(description string, minutes int) domain.Talk {
	return domain.NewTalk(description, time.Duration(minutes)*time.Minute)
}

// SampleTalks returns the 19-talk conference fixture in input order.
func SampleTalks() []domain.Talk {
	return []domain.Talk{
		Talk("Writing Fast Tests Against Enterprise Rails", 60),
		Talk("Overdoing it in Python", 45),
		Talk("Lua for the Masses", 30),
		Talk("Ruby Errors from Mismatched Gem Versions", 45),
		Talk("Common Ruby Errors", 45),
		Talk("Rails for Python Developers", 5),
		Talk("Communicating Over Distance", 60),
		Talk("Accounting-Driven Development", 45),
		Talk("Woah", 30),
		Talk("Sit Down and Write", 30),
		Talk("Pair Programming vs Noise", 45),
		Talk("Rails Magic", 60),
		Talk("Ruby on Rails: Why We Should Move On", 60),
		Talk("Clojure Ate Scala (on my project)", 45),
		Talk("Programming in the Boondocks of Seattle", 30),
		Talk("Ruby vs. Clojure for Back-End Development", 30),
		Talk("Ruby on Rails Legacy App Maintenance", 60),
		Talk("A World Without HackerNews", 30),
		Talk("User Interface CSS in Rails Apps", 30),
	}
}

// Multiset counts talks by description and duration.
func Multiset(talks []domain.Talk) map[domain.Talk]int {
	counts := make(map[domain.Talk]int, len(talks))
	for _, t := range talks {
		counts[t]++
	}
	return counts
}

// ScheduledTalks flattens tracks into their talks, morning before afternoon.
func ScheduledTalks(tracks []*domain.Track) []domain.Talk {
	var out []domain.Talk
	for _, tr := range tracks {
		out = append(out, tr.Talks()...)
	}
	return out
}
