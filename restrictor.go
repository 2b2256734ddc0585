package definer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Restrictor flags text containing any blocked keyword.
// It is immutable after construction and safe for concurrent use.
type Restrictor struct {
	keywords []string
}

// NewRestrictor creates a Restrictor from a keyword list.
// Keywords are matched case-insensitively; blank keywords are ignored.
func NewRestrictor(keywords []string) *Restrictor {
	r := &Restrictor{keywords: make([]string, 0, len(keywords))}
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		r.keywords = append(r.keywords, keyword)
	}
	return r
}

// restrictorFile is the on-disk keyword list format.
type restrictorFile struct {
	BlockedKeywords []string `json:"blocked_keywords"`
}

// LoadRestrictor reads a JSON keyword list of the form
// {"blocked_keywords": ["..."]}.
func LoadRestrictor(r io.Reader) (*Restrictor, error) {
	var f restrictorFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, Errorf(EINVALID, "invalid restricted keyword list: %v", err)
	}
	if f.BlockedKeywords == nil {
		return nil, Errorf(EINVALID, "restricted keyword list has no blocked_keywords")
	}
	return NewRestrictor(f.BlockedKeywords), nil
}

// OpenRestrictor loads the keyword list at path.
// Callers must treat an error as fatal: imagery is never served unfiltered.
func OpenRestrictor(path string) (*Restrictor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open restricted keyword list: %w", err)
	}
	defer f.Close()

	return LoadRestrictor(f)
}

// IsRestricted reports whether text contains any blocked keyword.
func (r *Restrictor) IsRestricted(text string) bool {
	text = strings.ToLower(text)
	for _, keyword := range r.keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// Len returns the number of keywords.
func (r *Restrictor) Len() int {
	return len(r.keywords)
}
