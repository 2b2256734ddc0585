package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/definer"
	"golang.org/x/net/html"
)

// Wiki rendering policies.
var (
	wikiMeaningPolicy = Policy{
		Wrap:          append(DefaultWrap[:len(DefaultWrap):len(DefaultWrap)], "span"),
		Emphasis:      []string{"a"},
		AnchorSpacing: true,
	}
	wikiExamplePolicy = Policy{
		Wrap:           DefaultWrap,
		Emphasis:       []string{"span"},
		EmphasisMarker: true,
		AnchorSpacing:  true,
	}
	wikiOriginPolicy = Policy{
		Wrap:          DefaultWrap,
		Emphasis:      []string{"span"},
		AnchorSpacing: true,
	}
)

// stitcher walks the flat siblings of a wiki language section and assigns
// each etymology paragraph to the part of speech of the definitions that
// follow it.
//
// Etymology text accumulates in pending. It is flushed when a new
// paragraph arrives after definitions were seen, either for the first
// origin or under a different etymology heading.
type stitcher struct {
	anchor string

	inSection    bool
	done         bool
	currentTitle string
	pending      string
	pendingTitle string
	nextDefTitle string
	lastDefTitle string

	definitions []definer.Definition
	origins     []definer.Origin
}

func newStitcher(anchor string) *stitcher {
	return &stitcher{anchor: anchor}
}

// feed consumes the next sibling. It reports false once the section ended.
func (s *stitcher) feed(n *html.Node) bool {
	if s.done {
		return false
	}
	if n.Type != html.ElementNode {
		return true
	}

	if !s.inSection {
		sel := goquery.NewDocumentFromNode(n).Selection
		s.inSection = sel.Is("#"+s.anchor) || sel.Find("#"+s.anchor).Length() > 0
		return true
	}

	switch n.Data {
	case "h2", "hr":
		s.done = true
		return false
	case "h3", "h4", "h5":
		s.heading(n)
	case "div":
		if !hasClass(n, "mw-heading") {
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "h2":
				s.done = true
				return false
			case "h3", "h4", "h5":
				s.heading(c)
			}
		}
	case "ol":
		s.list(n)
	case "p":
		if strings.HasPrefix(s.currentTitle, "etymology") {
			s.paragraph(n)
		}
	}
	return true
}

// heading records the normalized heading title.
func (s *stitcher) heading(n *html.Node) {
	sel := goquery.NewDocumentFromNode(n).Selection
	if headline := sel.Find(".mw-headline").First(); headline.Length() > 0 {
		s.currentTitle = strings.ToLower(Text(headline))
		return
	}
	s.currentTitle = strings.ToLower(Render(n, DefaultPolicy))
}

// list emits one definition per item under the current heading.
func (s *stitcher) list(n *html.Node) {
	for item := n.FirstChild; item != nil; item = item.NextSibling {
		if item.Type != html.ElementNode {
			continue
		}

		meaning := Render(item, wikiMeaningPolicy)
		if meaning == "" {
			continue
		}

		examples := []string{}
		sel := goquery.NewDocumentFromNode(item).Selection
		sel.Find("dl").First().ChildrenFiltered("dd").Each(func(_ int, dd *goquery.Selection) {
			examples = append(examples, RenderSelection(dd, wikiExamplePolicy))
		})

		s.definitions = append(s.definitions, definer.Definition{
			PartOfSpeech: nounAlias(s.currentTitle),
			Meaning:      meaning,
			Examples:     examples,
		})

		if s.nextDefTitle == "" {
			s.nextDefTitle = s.currentTitle
		}
		s.lastDefTitle = s.currentTitle
	}
}

// paragraph adds etymology text, first flushing what accumulated under an
// earlier heading once the definitions it introduced have been seen.
func (s *stitcher) paragraph(n *html.Node) {
	if s.pending != "" &&
		(len(s.origins) == 0 || s.currentTitle != s.pendingTitle) &&
		s.nextDefTitle != "" {
		s.flush(s.nextDefTitle)
		s.pendingTitle = s.currentTitle
	}

	if s.pending != "" {
		s.pending += definer.ParagraphBreak
	}
	s.pending += Render(n, wikiOriginPolicy)
	s.nextDefTitle = ""
}

func (s *stitcher) flush(partOfSpeech string) {
	s.origins = append(s.origins, definer.Origin{
		PartOfSpeech: partOfSpeech,
		Origin:       s.pending,
	})
	s.pending = ""
}

// finish flushes trailing etymology text, tagged with nextDefTitle,
// possibly empty. The one exception is a page laid out with its definitions
// before its only etymology: nothing has been flushed yet, so that origin
// takes the title of the last definitions seen (lastDefTitle).
func (s *stitcher) finish() ([]definer.Definition, []definer.Origin) {
	if s.pending != "" {
		partOfSpeech := s.nextDefTitle
		if partOfSpeech == "" && len(s.origins) == 0 {
			partOfSpeech = s.lastDefTitle
		}
		s.flush(partOfSpeech)
	}
	return s.definitions, s.origins
}

// nounAlias folds headings that introduce noun-like entries.
func nounAlias(title string) string {
	switch title {
	case "numeral", "number", "letter":
		return "noun"
	default:
		return title
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}
