package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/confplan/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrMissingTitle indicates a talk entry without a title.
var ErrMissingTitle = errors.New("talk title is required")

// TalkFile is the structured JSON/YAML form of a talk list.
type TalkFile struct {
	Talks []TalkEntry `json:"talks" yaml:"talks"`
}

// TalkEntry is one talk in a TalkFile. Duration uses the same tokens as the
// line format ("45min", "lightning"); empty means lightning.
type TalkEntry struct {
	Title    string `json:"title" yaml:"title"`
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// EntryError reports a TalkFile entry that was excluded from the talk pool.
type EntryError struct {
	Index int
	Title string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("talks[%d] %q: %v", e.Index, e.Title, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// LoadFile reads talks from path. Files ending in .json, .yaml or .yml are
// decoded as a TalkFile; anything else is parsed line by line. Per-talk
// problems are returned in the second result; the error result is reserved
// for files that cannot be read or decoded at all.
func LoadFile(path string) ([]domain.Talk, []error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var tf TalkFile
		if err := decodeFile(path, func(data []byte) error { return json.Unmarshal(data, &tf) }); err != nil {
			return nil, nil, err
		}
		talks, errs := tf.Convert()
		return talks, errs, nil
	case ".yaml", ".yml":
		var tf TalkFile
		if err := decodeFile(path, func(data []byte) error { return yaml.Unmarshal(data, &tf) }); err != nil {
			return nil, nil, err
		}
		talks, errs := tf.Convert()
		return talks, errs, nil
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening talk file: %w", err)
		}
		defer f.Close()
		talks, errs := ParseLines(f)
		return talks, errs, nil
	}
}

// Convert turns the entries into talks, skipping entries that fail validation.
func (tf *TalkFile) Convert() ([]domain.Talk, []error) {
	talks := make([]domain.Talk, 0, len(tf.Talks))
	var errs []error

	for i, entry := range tf.Talks {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			errs = append(errs, &EntryError{Index: i, Err: ErrMissingTitle})
			continue
		}
		duration := domain.LightningDuration
		if entry.Duration != "" {
			d, err := ParseDuration(entry.Duration)
			if err != nil {
				errs = append(errs, &EntryError{Index: i, Title: title, Err: err})
				continue
			}
			duration = d
		}
		talks = append(talks, domain.NewTalk(title, duration))
	}

	return talks, errs
}

func decodeFile(path string, decode func([]byte) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading talk file: %w", err)
	}
	if err := decode(data); err != nil {
		return fmt.Errorf("decoding talk file %s: %w", filepath.Base(path), err)
	}
	return nil
}
