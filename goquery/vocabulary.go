package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/definer"
)

// VocabularyHost identifies the primary dictionary.
const VocabularyHost = "www.vocabulary.com"

var _ definer.Source = (*Vocabulary)(nil)

// Vocabulary extracts short and long overviews plus a flat definition list.
type Vocabulary struct {
	site
}

// NewVocabulary creates the primary dictionary source.
func NewVocabulary(opts ...Option) *Vocabulary {
	return &Vocabulary{site: newSite(VocabularyHost, opts)}
}

// URL returns the definition fragment endpoint for word.
func (v *Vocabulary) URL(word string) (string, error) {
	return v.baseURL + "/dictionary/definition.ajax?search=" + url.QueryEscape(word) + "&lang=en", nil
}

// overviewPolicy additionally keeps italics used for cited words.
var overviewPolicy = DefaultPolicy.With("i")

// Extract parses the definition fragment. The echoed headword must equal
// word exactly; the site substitutes near matches for unknown words.
func (v *Vocabulary) Extract(word, html string) (*definer.Result, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	area, err := find(doc.Selection, ".word-area")
	if err != nil {
		return nil, err
	}
	headword, err := find(area, "h1")
	if err != nil {
		return nil, err
	}
	if echoed := Text(headword); echoed != word {
		return nil, mismatch(echoed, word)
	}

	result := &definer.Result{Kind: definer.ResultDefinitions}
	for _, selector := range []string{".short", ".long"} {
		if overview := RenderSelection(area.Find(selector).First(), overviewPolicy); overview != "" {
			result.Overview = append(result.Overview, overview)
		}
	}

	definitions, err := find(doc.Selection, ".word-definitions")
	if err != nil {
		return nil, err
	}
	list, err := find(definitions, "ol")
	if err != nil {
		return nil, err
	}

	list.ChildrenFiltered("li").Each(func(_ int, item *goquery.Selection) {
		def := item.Find(".definition").First()
		pos := item.Find(".definition .pos-icon").First()
		if def.Length() == 0 || pos.Length() == 0 {
			return
		}

		examples := []string{}
		item.Find(".example").Each(func(_ int, example *goquery.Selection) {
			examples = append(examples, stripNewlines(Text(example)))
		})

		result.Definitions = append(result.Definitions, definer.Definition{
			PartOfSpeech: Text(pos),
			Meaning:      Text(def),
			Examples:     examples,
		})
	})

	return result, nil
}
