package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/confplan/internal/domain"
)

const (
	clockLayout     = "15:04:05"
	lunchLabel      = "Lunch"
	networkingLabel = "Networking Event"
)

// FormatTalk renders "<description> <duration-label>".
func FormatTalk(t domain.Talk) string {
	return t.String()
}

// FormatSession renders one "<clock> <talk>" line per talk, each starting
// where the previous one ended.
func FormatSession(s *domain.Session) string {
	var b strings.Builder
	for _, slot := range s.Slots() {
		fmt.Fprintf(&b, "%s %s\n", slot.At.Format(clockLayout), FormatTalk(slot.Talk))
	}
	return b.String()
}

// FormatTrack renders the morning talks, the lunch break at the end of the
// morning window, the afternoon talks and the networking event at the end of
// the afternoon window.
func FormatTrack(tr *domain.Track) string {
	var b strings.Builder
	b.WriteString(FormatSession(tr.Morning()))
	fmt.Fprintf(&b, "%s %s\n", tr.Morning().End().Format(clockLayout), lunchLabel)
	b.WriteString(FormatSession(tr.Afternoon()))
	fmt.Fprintf(&b, "%s %s\n", tr.Afternoon().End().Format(clockLayout), networkingLabel)
	return b.String()
}

// FormatSchedule renders every track under a 1-based "Track N" heading with a
// blank line after each track.
func FormatSchedule(tracks []*domain.Track) string {
	var b strings.Builder
	for i, tr := range tracks {
		fmt.Fprintf(&b, "Track %d\n", i+1)
		b.WriteString(FormatTrack(tr))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatScheduleStyled is FormatSchedule for terminals.
func FormatScheduleStyled(tracks []*domain.Track) string {
	var b strings.Builder
	for i, tr := range tracks {
		b.WriteString(Header(fmt.Sprintf("Track %d", i+1)))
		b.WriteString("\n")
		writeStyledSession(&b, tr.Morning())
		writeStyledBreak(&b, tr.Morning(), lunchLabel)
		writeStyledSession(&b, tr.Afternoon())
		writeStyledBreak(&b, tr.Afternoon(), networkingLabel)
		b.WriteString("\n")
	}
	return b.String()
}

func writeStyledSession(b *strings.Builder, s *domain.Session) {
	for _, slot := range s.Slots() {
		label := Dim(slot.Talk.Label())
		if slot.Talk.IsLightning() {
			label = StyleLightning.Render(slot.Talk.Label())
		}
		fmt.Fprintf(b, "%s  %s %s\n",
			StyleClock.Render(slot.At.Format(clockLayout)), StyleFg.Render(slot.Talk.Description), label)
	}
}

func writeStyledBreak(b *strings.Builder, s *domain.Session, label string) {
	fmt.Fprintf(b, "%s  %s\n", StyleClock.Render(s.End().Format(clockLayout)), StyleBreak.Render(label))
}
