// Package dataset loads and serves the local sentence collection: a
// four-column CSV of full form, short form, difficulty tier, and
// grammatical explanation.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"pronoms/internal/game"
)

// ErrEmptyDataset is returned when the resource has no usable data
// record after the header.
var ErrEmptyDataset = errors.New("dataset contains no sentences")

// Record is one sentence pair from the dataset.
type Record struct {
	FullForm    string
	ShortForm   string
	Difficulty  game.Difficulty
	Explanation string
}

// difficultyTokens maps the CSV tier tokens to the canonical tiers.
var difficultyTokens = map[string]game.Difficulty{
	"facil":   game.DifficultyEasy,
	"mitja":   game.DifficultyMedium,
	"dificil": game.DifficultyHard,
}

// ParseDifficulty resolves a CSV tier token.
func ParseDifficulty(token string) (game.Difficulty, bool) {
	d, ok := difficultyTokens[strings.TrimSpace(token)]
	return d, ok
}

// WarnFunc receives a note about a skipped record. line is 1-based and
// counts the header.
type WarnFunc func(line int, reason string)

// Parse reads the CSV resource. The first record is a header and is
// discarded. Records with the wrong column count or an unknown
// difficulty token are skipped via warn; a resource that yields no
// valid record is an ErrEmptyDataset.
func Parse(r io.Reader, warn WarnFunc) ([]Record, error) {
	if warn == nil {
		warn = func(int, string) {}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = false

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records []Record
	line := 1
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			warn(line, fmt.Sprintf("unparseable record: %v", err))
			continue
		}
		if len(fields) != 4 {
			warn(line, fmt.Sprintf("expected 4 fields, got %d", len(fields)))
			continue
		}

		diff, ok := ParseDifficulty(fields[2])
		if !ok {
			warn(line, fmt.Sprintf("invalid difficulty level %q", strings.TrimSpace(fields[2])))
			continue
		}

		records = append(records, Record{
			FullForm:    strings.TrimSpace(fields[0]),
			ShortForm:   strings.TrimSpace(fields[1]),
			Difficulty:  diff,
			Explanation: strings.TrimSpace(fields[3]),
		})
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	return records, nil
}

// LoadFile parses the CSV file at path.
func LoadFile(path string, warn WarnFunc) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Parse(f, warn)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return records, nil
}

// Collection serves random sentences from a loaded dataset.
type Collection struct {
	records []Record
	rng     *rand.Rand
}

// NewCollection wraps records for random selection. seed is accepted so
// tests can be deterministic; pass anything (e.g. time.Now().UnixNano())
// otherwise.
func NewCollection(records []Record, seed int64) *Collection {
	return &Collection{
		records: records,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Len returns the number of loaded records.
func (c *Collection) Len() int {
	return len(c.records)
}

// Random picks a record uniformly, with replacement.
func (c *Collection) Random() Record {
	return c.records[c.rng.Intn(len(c.records))]
}

// FindByFullForm locates the record whose trimmed full form matches.
// Used when resuming a saved local-mode session.
func (c *Collection) FindByFullForm(full string) (Record, bool) {
	full = strings.TrimSpace(full)
	for _, rec := range c.records {
		if rec.FullForm == full {
			return rec, true
		}
	}
	return Record{}, false
}

// Grade compares a candidate against the canonical short form: exact
// string equality after trimming surrounding whitespace from both. No
// case folding, no diacritic normalization.
func Grade(candidate, canonical string) bool {
	return strings.TrimSpace(candidate) == strings.TrimSpace(canonical)
}
