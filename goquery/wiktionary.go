package goquery

import (
	"net/url"

	"github.com/fwojciec/definer"
)

// WiktionaryHost identifies the collaborative wiki.
const WiktionaryHost = "en.wiktionary.org"

// wiktionaryLanguage is the id of the language heading whose section is read.
const wiktionaryLanguage = "English"

var _ definer.Source = (*Wiktionary)(nil)

// Wiktionary extracts definitions and etymologies from the English section
// of a wiki article.
type Wiktionary struct {
	site
}

// NewWiktionary creates the wiki source.
func NewWiktionary(opts ...Option) *Wiktionary {
	return &Wiktionary{site: newSite(WiktionaryHost, opts)}
}

// URL returns the article for word.
func (w *Wiktionary) URL(word string) (string, error) {
	return w.baseURL + "/wiki/" + url.PathEscape(word), nil
}

// Extract walks the siblings of the language heading's section. Headings,
// definition lists and etymology paragraphs are flat siblings there, so
// origins are stitched to the definitions that follow them.
func (w *Wiktionary) Extract(_, html string) (*definer.Result, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	anchor, err := find(doc.Selection, "#"+wiktionaryLanguage)
	if err != nil {
		return nil, err
	}
	container := anchor.Parent().Parent()
	if container.Length() == 0 {
		return nil, definer.Errorf(definer.EMARKUP, "language section container not found")
	}

	s := newStitcher(wiktionaryLanguage)
	for c := container.Get(0).FirstChild; c != nil; c = c.NextSibling {
		if !s.feed(c) {
			break
		}
	}
	definitions, origins := s.finish()

	return &definer.Result{
		Kind:        definer.ResultWiki,
		Definitions: definitions,
		Origins:     origins,
	}, nil
}
