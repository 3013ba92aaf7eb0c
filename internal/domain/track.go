package domain

import "time"

// Fixed session windows of a conference day.
var (
	MorningStart   = ClockTime(9, 0)
	MorningEnd     = ClockTime(12, 0)
	AfternoonStart = ClockTime(13, 0)
	AfternoonEnd   = ClockTime(17, 0)
)

// Track is one conference day: a morning and an afternoon session.
type Track struct {
	morning   *Session
	afternoon *Session
}

func NewTrack() *Track {
	return &Track{
		morning:   mustSession(MorningStart, MorningEnd),
		afternoon: mustSession(AfternoonStart, AfternoonEnd),
	}
}

func (t *Track) Morning() *Session { return t.morning }

func (t *Track) Afternoon() *Session { return t.afternoon }

// Add places talk in the morning if it fits there, otherwise in the
// afternoon. It returns false and leaves the track unchanged when neither
// session has room.
func (t *Track) Add(talk Talk) bool {
	if t.morning.Fits(talk) {
		t.morning.Add(talk)
		return true
	}
	if t.afternoon.Fits(talk) {
		t.afternoon.Add(talk)
		return true
	}
	return false
}

// Fits reports whether either session could take talk, without mutating.
func (t *Track) Fits(talk Talk) bool {
	return t.morning.Fits(talk) || t.afternoon.Fits(talk)
}

// Talks returns the morning talks followed by the afternoon talks.
func (t *Track) Talks() []Talk {
	return append(t.morning.Talks(), t.afternoon.Talks()...)
}

func (t *Track) Len() int {
	return t.morning.Len() + t.afternoon.Len()
}

func (t *Track) TalkDuration() time.Duration {
	return t.morning.TalkDuration() + t.afternoon.TalkDuration()
}

// Capacity is the combined length of both sessions.
func (t *Track) Capacity() time.Duration {
	return t.morning.TotalTime() + t.afternoon.TotalTime()
}
