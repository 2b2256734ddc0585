package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/definer"
)

// MacmillanHost identifies the secondary dictionary.
const MacmillanHost = "www.macmillandictionary.com"

// SensePartOfSpeech is recorded for every sense definition; the site does
// not expose a part of speech per definition.
const SensePartOfSpeech = "noun"

var _ definer.Source = (*Macmillan)(nil)

// Macmillan extracts definitions grouped by nested sense entry.
type Macmillan struct {
	site
}

// NewMacmillan creates the secondary dictionary source.
func NewMacmillan(opts ...Option) *Macmillan {
	return &Macmillan{site: newSite(MacmillanHost, opts)}
}

// URL returns the American English entry page for word.
func (m *Macmillan) URL(word string) (string, error) {
	return m.baseURL + "/us/dictionary/american/" + url.PathEscape(word), nil
}

// sensePolicy drops links and labels while keeping their text.
var sensePolicy = Policy{
	Wrap:          DefaultWrap,
	Emphasis:      []string{"a", "span"},
	AnchorSpacing: true,
}

// Extract parses the entry page into sense groups.
func (m *Macmillan) Extract(_, html string) (*definer.Result, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	area, err := find(doc.Selection, ".left-content")
	if err != nil {
		return nil, err
	}
	list := area.Find("ol").Has(".SENSE-BODY").First()
	if list.Length() == 0 {
		return nil, definer.Errorf(definer.EMARKUP, "anchor %q not found", "ol .SENSE-BODY")
	}

	result := &definer.Result{Kind: definer.ResultSenseGroups}
	list.ChildrenFiltered("li").Each(func(_ int, item *goquery.Selection) {
		body := item.Find(".SENSE-BODY").First()
		if body.Length() == 0 {
			return
		}

		var sense []definer.Definition
		body.Find(".dflex").Each(func(_ int, entry *goquery.Selection) {
			meaning := entry.Find(".DEFINITION").First()
			if meaning.Length() == 0 {
				return
			}

			examples := []string{}
			entry.Find(".EXAMPLES").First().ChildrenFiltered("p").Each(func(_ int, p *goquery.Selection) {
				examples = append(examples, stripNewlines(RenderSelection(p, sensePolicy)))
			})

			sense = append(sense, definer.Definition{
				PartOfSpeech: SensePartOfSpeech,
				Meaning:      RenderSelection(meaning, sensePolicy),
				Examples:     examples,
			})
		})

		if len(sense) > 0 {
			result.SenseGroups = append(result.SenseGroups, sense)
		}
	})

	return result, nil
}
