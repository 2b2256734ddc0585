package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/definer"
)

// site holds the identity and address shared by every source.
type site struct {
	host    string
	baseURL string
}

// Option configures a source.
type Option func(*site)

// WithBaseURL points a source at a different origin, e.g. a test server.
// The source keeps its host as its name.
func WithBaseURL(u string) Option {
	return func(s *site) {
		s.baseURL = strings.TrimSuffix(u, "/")
	}
}

func newSite(host string, opts []Option) site {
	s := site{host: host, baseURL: "https://" + host}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Name returns the site host.
func (s *site) Name() string {
	return s.host
}

// parse loads a document for querying.
func parse(body string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, definer.Errorf(definer.EMARKUP, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// find returns the first match of selector under sel, or EMARKUP naming
// the missing anchor.
func find(sel *goquery.Selection, selector string) (*goquery.Selection, error) {
	match := sel.Find(selector).First()
	if match.Length() == 0 {
		return nil, definer.Errorf(definer.EMARKUP, "anchor %q not found", selector)
	}
	return match, nil
}

// mismatch reports an echoed word that differs from the query.
func mismatch(echoed, word string) error {
	return definer.Errorf(definer.ENOTFOUND, "source echoed %q for %q", echoed, word)
}

// stripNewlines removes line breaks kept verbatim from text nodes.
func stripNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "")
}
