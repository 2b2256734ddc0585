// Package goquery implements definer.Source for each supported dictionary
// site using CSS selectors over the parsed document.
package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DefaultWrap lists the elements whose markup survives rendering.
var DefaultWrap = []string{"b", "strong", "em", "mark", "cite", "dfn"}

// EmphasisTag wraps pass-through elements when Policy.EmphasisMarker is set.
const EmphasisTag = "i"

// Policy controls which markup Render keeps.
type Policy struct {
	// Wrap elements are rendered recursively and re-wrapped in their own tag.
	Wrap []string

	// Emphasis elements are rendered recursively without their own tag.
	Emphasis []string

	// EmphasisMarker wraps Emphasis elements in <i></i>.
	EmphasisMarker bool

	// AnchorSpacing appends a space after each retained element so that
	// adjacent segments do not run together.
	AnchorSpacing bool
}

// DefaultPolicy keeps DefaultWrap markup and drops everything else.
var DefaultPolicy = Policy{Wrap: DefaultWrap, AnchorSpacing: true}

// With returns a copy of p whose Wrap list also contains tags.
func (p Policy) With(tags ...string) Policy {
	p.Wrap = append(slices.Clone(p.Wrap), tags...)
	return p
}

// Render reconstructs display text from the children of n.
// Text nodes are kept verbatim, Wrap and Emphasis elements are rendered
// recursively, and any other element is dropped with its subtree.
func Render(n *html.Node, p Policy) string {
	if n == nil {
		return ""
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				sb.WriteString(c.Data)
			}
		case html.ElementNode:
			switch {
			case slices.Contains(p.Wrap, c.Data):
				sb.WriteString("<" + c.Data + ">")
				sb.WriteString(Render(c, p))
				sb.WriteString("</" + c.Data + ">")
			case slices.Contains(p.Emphasis, c.Data):
				if p.EmphasisMarker {
					sb.WriteString("<" + EmphasisTag + ">")
				}
				sb.WriteString(Render(c, p))
				if p.EmphasisMarker {
					sb.WriteString("</" + EmphasisTag + ">")
				}
			default:
				continue
			}
			if p.AnchorSpacing {
				sb.WriteByte(' ')
			}
		}
	}

	return tidy(sb.String())
}

// RenderSelection renders the first node of sel.
func RenderSelection(sel *goquery.Selection, p Policy) string {
	if sel.Length() == 0 {
		return ""
	}
	return Render(sel.Get(0), p)
}

// Text renders the first node of sel with DefaultPolicy.
func Text(sel *goquery.Selection) string {
	return RenderSelection(sel, DefaultPolicy)
}

var punctuation = strings.NewReplacer(
	" ,", ",",
	" !", "!",
	" ?", "?",
	" .", ".",
	" )", ")",
)

// tidy trims and applies the cosmetic spacing rewrites.
func tidy(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "  ", " ")
	return punctuation.Replace(s)
}
