package mock

import "github.com/fwojciec/definer"

// Compile-time interface verification.
var (
	_ definer.Source    = (*Source)(nil)
	_ definer.Sanitizer = (*Sanitizer)(nil)
)

// Source is a mock implementation of definer.Source.
type Source struct {
	NameFn    func() string
	URLFn     func(word string) (string, error)
	ExtractFn func(word, html string) (*definer.Result, error)
}

func (s *Source) Name() string {
	return s.NameFn()
}

func (s *Source) URL(word string) (string, error) {
	return s.URLFn(word)
}

func (s *Source) Extract(word, html string) (*definer.Result, error) {
	return s.ExtractFn(word, html)
}

// Sanitizer is a mock implementation of definer.Sanitizer.
type Sanitizer struct {
	SanitizeWordFn func(w *definer.Word)
}

func (s *Sanitizer) SanitizeWord(w *definer.Word) {
	s.SanitizeWordFn(w)
}
