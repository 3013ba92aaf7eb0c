package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/confplan/internal/contract"
	"github.com/alexanderramin/confplan/internal/domain"
)

const utilisationWidth = 10

// FormatSummary renders per-track session usage followed by totals.
func FormatSummary(resp *contract.ScheduleResponse) string {
	rows := make([][]string, 0, len(resp.Tracks))
	for i, tr := range resp.Tracks {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			sessionUsage(tr.Morning()),
			sessionUsage(tr.Afternoon()),
			strconv.Itoa(tr.Len()),
			strconv.Itoa(minutes(tr.Capacity() - tr.TalkDuration())),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"Track", "Morning", "Afternoon", "Talks", "Idle"}, rows, 0, 3, 4))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d talks, %d min over %d tracks (lower bound %d), %d min idle\n",
		Dim("Total:"), resp.TalkCount, resp.TotalMinutes, len(resp.Tracks), resp.LowerBound, resp.IdleMinutes())
	return b.String()
}

// FormatTalkList renders parsed talks as a table in input order.
func FormatTalkList(talks []domain.Talk) string {
	if len(talks) == 0 {
		return Dim("No talks.") + "\n"
	}
	rows := make([][]string, 0, len(talks))
	var total time.Duration
	for i, t := range talks {
		rows = append(rows, []string{strconv.Itoa(i + 1), t.Description, t.Label()})
		total += t.Duration
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"#", "Talk", "Duration"}, rows, 0, 2))
	fmt.Fprintf(&b, "\n%s %d talks, %d min\n", Dim("Total:"), len(talks), minutes(total))
	return b.String()
}

func sessionUsage(s *domain.Session) string {
	pct := 0.0
	if total := s.TotalTime(); total > 0 {
		pct = float64(s.TalkDuration()) / float64(total)
	}
	return fmt.Sprintf("%d/%d %s", minutes(s.TalkDuration()), minutes(s.TotalTime()), RenderUtilisation(pct, utilisationWidth))
}

func minutes(d time.Duration) int {
	return int(d / time.Minute)
}
