package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/definer"
)

// UrbanDictionaryHost identifies the slang site.
const UrbanDictionaryHost = "www.urbandictionary.com"

// SlangPartOfSpeech is recorded for every slang definition.
const SlangPartOfSpeech = "slang"

var _ definer.Source = (*UrbanDictionary)(nil)

// UrbanDictionary extracts slang definitions for the exact query word.
type UrbanDictionary struct {
	site
}

// NewUrbanDictionary creates the slang source.
func NewUrbanDictionary(opts ...Option) *UrbanDictionary {
	return &UrbanDictionary{site: newSite(UrbanDictionaryHost, opts)}
}

// URL returns the definition page for word.
func (u *UrbanDictionary) URL(word string) (string, error) {
	return u.baseURL + "/define.php?term=" + url.QueryEscape(word), nil
}

var slangPolicy = Policy{
	Wrap:          DefaultWrap,
	Emphasis:      []string{"a"},
	AnchorSpacing: true,
}

// Extract keeps entries whose headword equals word, each with exactly one
// example.
func (u *UrbanDictionary) Extract(word, html string) (*definer.Result, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	result := &definer.Result{Kind: definer.ResultDefinitions}
	doc.Find(".definition").Each(func(_ int, entry *goquery.Selection) {
		if RenderSelection(entry.Find(".word").First(), slangPolicy) != word {
			return
		}
		meaning := RenderSelection(entry.Find(".meaning").First(), slangPolicy)
		if meaning == "" {
			return
		}
		example := stripNewlines(RenderSelection(entry.Find(".example").First(), slangPolicy))

		result.Definitions = append(result.Definitions, definer.Definition{
			PartOfSpeech: SlangPartOfSpeech,
			Meaning:      meaning,
			Examples:     []string{example},
		})
	})

	if len(result.Definitions) == 0 {
		return nil, definer.Errorf(definer.ENOTFOUND, "no slang entries for %q", word)
	}
	return result, nil
}
