package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/definer"
	"golang.org/x/net/html"
)

// EtymonlineHost identifies the etymology site.
const EtymonlineHost = "www.etymonline.com"

var _ definer.Source = (*Etymonline)(nil)

// Etymonline extracts one origin per homograph entry of a search page.
type Etymonline struct {
	site
}

// NewEtymonline creates the etymology source.
func NewEtymonline(opts ...Option) *Etymonline {
	return &Etymonline{site: newSite(EtymonlineHost, opts)}
}

// URL returns the search page for word.
func (e *Etymonline) URL(word string) (string, error) {
	return e.baseURL + "/search?q=" + url.QueryEscape(word), nil
}

var etymologyPolicy = Policy{
	Wrap:           DefaultWrap,
	Emphasis:       []string{"span", "a"},
	EmphasisMarker: true,
	AnchorSpacing:  true,
}

// Abbreviated parts of speech used in entry headings.
var partsOfSpeech = map[string]string{
	"(n.)":      "noun",
	"(v.)":      "verb",
	"(adj.)":    "adjective",
	"(adv.)":    "adverb",
	"(interj.)": "interjection",
	"(prep.)":   "preposition",
	"(pron.)":   "pronoun",
}

var homographNumber = regexp.MustCompile(`[0-9]+`)

// PartOfSpeech maps an entry heading abbreviation such as "(n.1)" to its
// full name. Unknown or blank abbreviations map to the empty string.
func PartOfSpeech(abbr string) string {
	abbr = strings.TrimSpace(homographNumber.ReplaceAllString(abbr, ""))
	return partsOfSpeech[abbr]
}

// Extract reads entries in page order, which the site ranks by relevance.
// Scanning stops at the first entry for a different word.
func (e *Etymonline) Extract(word, html string) (*definer.Result, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	first := doc.Find("[class^='word__name']").First()
	if first.Length() == 0 {
		return nil, definer.Errorf(definer.ENOTFOUND, "no entries for %q", word)
	}
	entries := first.Parent().Parent().Parent().Children().Filter("[class^='word']")

	result := &definer.Result{Kind: definer.ResultOrigins}
	entries.EachWithBreak(func(_ int, entry *goquery.Selection) bool {
		name := entry.Find("[class^='word__name']").First()
		if name.Length() == 0 {
			return false
		}

		texts := textChildren(name.Get(0))
		if len(texts) == 0 || strings.TrimSpace(texts[0]) != word {
			return false
		}

		var paragraphs []string
		name.Parent().Find("section").First().Find("p").Each(func(_ int, p *goquery.Selection) {
			paragraphs = append(paragraphs, RenderSelection(p, etymologyPolicy))
		})

		result.Origins = append(result.Origins, definer.Origin{
			PartOfSpeech: PartOfSpeech(texts[len(texts)-1]),
			Origin:       strings.Join(paragraphs, definer.ParagraphBreak),
		})
		return true
	})

	if len(result.Origins) == 0 {
		return nil, definer.Errorf(definer.ENOTFOUND, "no entries for %q", word)
	}
	return result, nil
}

// textChildren returns the direct text children of n.
func textChildren(n *html.Node) []string {
	var texts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			texts = append(texts, c.Data)
		}
	}
	return texts
}
