package domain

import (
	"fmt"
	"time"
)

// ClockTime returns the time of day h:m on a fixed reference date. Only the
// clock part is meaningful.
func ClockTime(h, m int) time.Time {
	return time.Date(0, time.January, 1, h, m, 0, 0, time.UTC)
}

// Session is a fixed time window holding talks in presentation order. The
// summed talk duration never exceeds the window.
type Session struct {
	start time.Time
	end   time.Time
	talks []Talk
}

// Slot is a talk together with the clock time it begins.
type Slot struct {
	At   time.Time
	Talk Talk
}

// NewSession creates an empty session. end must be strictly after start.
func NewSession(start, end time.Time) (*Session, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end %s is not after start %s",
			ErrInvalidWindow, end.Format(time.TimeOnly), start.Format(time.TimeOnly))
	}
	return &Session{start: start, end: end}, nil
}

// mustSession is for the fixed windows of a Track, which are always valid.
func mustSession(start, end time.Time) *Session {
	s, err := NewSession(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Session) Start() time.Time { return s.start }

func (s *Session) End() time.Time { return s.end }

// TotalTime is the length of the window.
func (s *Session) TotalTime() time.Duration {
	return s.end.Sub(s.start)
}

// TalkDuration sums the durations of the talks currently in the session.
func (s *Session) TalkDuration() time.Duration {
	var total time.Duration
	for _, t := range s.talks {
		total += t.Duration
	}
	return total
}

func (s *Session) Remaining() time.Duration {
	return s.TotalTime() - s.TalkDuration()
}

// Fits reports whether talk can be appended without overrunning the window.
// A talk that exactly fills the remaining time fits.
func (s *Session) Fits(talk Talk) bool {
	return s.TalkDuration()+talk.Duration <= s.TotalTime()
}

// Add appends talk if it fits and is a no-op otherwise. Callers that need to
// know the outcome check Fits first.
func (s *Session) Add(talk Talk) {
	if s.Fits(talk) {
		s.talks = append(s.talks, talk)
	}
}

// Talks returns a copy of the talks in presentation order.
func (s *Session) Talks() []Talk {
	out := make([]Talk, len(s.talks))
	copy(out, s.talks)
	return out
}

func (s *Session) Len() int {
	return len(s.talks)
}

// Slots pairs each talk with its start time, beginning at the session start
// and advancing by each preceding talk's duration.
func (s *Session) Slots() []Slot {
	slots := make([]Slot, 0, len(s.talks))
	at := s.start
	for _, t := range s.talks {
		slots = append(slots, Slot{At: at, Talk: t})
		at = at.Add(t.Duration)
	}
	return slots
}
