package definer

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ParagraphBreak separates paragraphs within a single Origin.
const ParagraphBreak = "<br>"

// Definition is a single meaning of a word with its usage examples.
type Definition struct {
	PartOfSpeech string   `json:"part_of_speech"`
	Meaning      string   `json:"meaning"`
	Examples     []string `json:"examples"`
}

// String formats the definition with one example per line.
func (d Definition) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s : %s", d.PartOfSpeech, d.Meaning)
	for _, example := range d.Examples {
		fmt.Fprintf(&sb, "\n- %s", example)
	}
	return sb.String()
}

// Origin is the etymology of a word for one part of speech.
// Multi-paragraph text is joined with ParagraphBreak.
type Origin struct {
	PartOfSpeech string `json:"part_of_speech"`
	Origin       string `json:"origin"`
}

// Paragraphs splits the origin text on ParagraphBreak.
func (o Origin) Paragraphs() []string {
	if o.Origin == "" {
		return nil
	}
	return strings.Split(o.Origin, ParagraphBreak)
}

// Word is the aggregate of everything known about one word across sources.
// A Word is never patched: a refresh builds a new Word that replaces the
// stored one.
type Word struct {
	// Overview holds at most two summaries, short then long.
	Overview []string `json:"overview"`

	PrimaryDefs        []Definition   `json:"vocab_defs"`
	SecondaryDefGroups [][]Definition `json:"macmillan_defs"`
	WikiDefs           []Definition   `json:"wiki_defs"`

	EtymOrigins []Origin `json:"etym_origins"`
	WikiOrigins []Origin `json:"wiki_origins"`

	StockImages []string `json:"stock_images"`

	SlangDefs []Definition `json:"urban_defs,omitempty"`

	// Sources lists the identifier of each contributing source once,
	// in extraction-priority order.
	Sources []string `json:"sources"`

	// LastUpdated is the construction time in Unix milliseconds.
	LastUpdated int64 `json:"last_updated"`
}

// HasDefinitions reports whether any definition-bearing source contributed.
// Words without definitions are never materialized.
func (w *Word) HasDefinitions() bool {
	return len(w.PrimaryDefs) > 0 || len(w.SecondaryDefGroups) > 0 || len(w.WikiDefs) > 0
}

// UpdatedAt returns LastUpdated as a time.
func (w *Word) UpdatedAt() time.Time {
	return time.UnixMilli(w.LastUpdated)
}

// IsStale reports whether the word is at least maxAge old at now.
func (w *Word) IsStale(now time.Time, maxAge time.Duration) bool {
	return now.Sub(w.UpdatedAt()) >= maxAge
}

// Validate returns an error if the word cannot be served from cache.
func (w *Word) Validate() error {
	if w.LastUpdated <= 0 {
		return Errorf(EINVALID, "word last_updated required")
	}
	if len(w.Overview) > 2 {
		return Errorf(EINVALID, "word overview has %d entries, at most 2 allowed", len(w.Overview))
	}
	return nil
}

// MarshalWord serializes a word for storage and transport.
func MarshalWord(w *Word) (string, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("marshal word: %w", err)
	}
	return string(b), nil
}

// UnmarshalWord parses a serialized word and validates it.
// Returns EINVALID for malformed or incomplete records.
func UnmarshalWord(data string) (*Word, error) {
	var w Word
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return nil, Errorf(EINVALID, "malformed word record: %v", err)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// WordKey returns the store key holding the serialized word.
func WordKey(word string) string {
	return "word:" + word
}

// LookupsKey returns the store key holding the lookup counter for word.
func LookupsKey(word string) string {
	return "lookups:" + word
}
