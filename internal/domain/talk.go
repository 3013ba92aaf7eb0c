package domain

import (
	"fmt"
	"time"
)

// LightningDuration is the fixed length of a lightning talk.
const LightningDuration = 5 * time.Minute

// LightningLabel is the duration label rendered for lightning talks.
const LightningLabel = "lightning"

// Talk is a single conference talk. The description is opaque to scheduling;
// only the duration takes part in packing.
type Talk struct {
	Description string
	Duration    time.Duration
}

func NewTalk(description string, duration time.Duration) Talk {
	return Talk{Description: description, Duration: duration}
}

// Minutes returns the duration in whole minutes.
func (t Talk) Minutes() int {
	return int(t.Duration / time.Minute)
}

func (t Talk) IsLightning() bool {
	return t.Duration == LightningDuration
}

// Label returns "lightning" for five-minute talks and "<n>min" otherwise.
func (t Talk) Label() string {
	if t.IsLightning() {
		return LightningLabel
	}
	return fmt.Sprintf("%dmin", t.Minutes())
}

func (t Talk) String() string {
	return t.Description + " " + t.Label()
}
