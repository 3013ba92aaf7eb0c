package importer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/alexanderramin/confplan/internal/domain"
)

// ErrParseFailure indicates a duration token that looks like "<n>min" but
// does not hold a valid integer.
var ErrParseFailure = errors.New("invalid talk duration")

const (
	promptMarker    = ">"
	minutesSuffix   = "min"
	defaultDuration = domain.LightningDuration
)

// maxMinutes is the largest minute count a time.Duration can hold.
const maxMinutes = math.MaxInt64 / int64(time.Minute)

// ParseError reports a line that was excluded from the talk pool.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseTalk reads a talk from a line such as "> Common Ruby Errors 45min".
// The duration token may sit anywhere among the words. Words containing ">"
// or "lightning" are dropped; a lightning talk keeps the five-minute default,
// so an explicit "<n>min" token on the same line takes precedence.
func ParseTalk(line string) (domain.Talk, error) {
	duration := defaultDuration
	var words []string

	for _, word := range strings.Fields(line) {
		switch {
		case strings.Contains(word, promptMarker):
			continue
		case strings.Contains(word, domain.LightningLabel):
			continue
		case strings.Contains(word, minutesSuffix):
			digits := strings.ReplaceAll(word, minutesSuffix, "")
			if isDigits(digits) {
				d, err := parseMinutes(digits, word)
				if err != nil {
					return domain.Talk{}, err
				}
				duration = d
				continue
			}
		}
		words = append(words, word)
	}

	return domain.NewTalk(strings.Join(words, " "), duration), nil
}

// ParseDuration reads a single duration token ("45min" or "lightning").
func ParseDuration(token string) (time.Duration, error) {
	token = strings.TrimSpace(token)
	if token == domain.LightningLabel {
		return domain.LightningDuration, nil
	}
	digits, ok := strings.CutSuffix(token, minutesSuffix)
	if !ok || !isDigits(digits) {
		return 0, fmt.Errorf("%w: %q", ErrParseFailure, token)
	}
	return parseMinutes(digits, token)
}

// parseMinutes converts a digit string to a duration, rejecting counts that
// would overflow time.Duration.
func parseMinutes(digits, token string) (time.Duration, error) {
	minutes, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || minutes > maxMinutes {
		return 0, fmt.Errorf("%w: %q", ErrParseFailure, token)
	}
	return time.Duration(minutes) * time.Minute, nil
}

// ParseLines parses one talk per non-blank line. Lines that fail to parse
// are left out of the result and reported as *ParseError.
func ParseLines(r io.Reader) ([]domain.Talk, []error) {
	var talks []domain.Talk
	var errs []error

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		talk, err := ParseTalk(text)
		if err != nil {
			errs = append(errs, &ParseError{Line: lineNo, Text: strings.TrimSpace(text), Err: err})
			continue
		}
		talks = append(talks, talk)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("reading talks: %w", err))
	}

	return talks, errs
}

// isDigits reports whether every rune is a digit. The empty string counts,
// so a bare "min" token is treated as a malformed duration.
func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
