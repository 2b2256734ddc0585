// Package bluemonday implements definer.Sanitizer with a bluemonday policy
// restricted to the emphasis markup the frontend renders.
package bluemonday

import (
	"net/url"
	"strings"

	"github.com/fwojciec/definer"
	"github.com/microcosm-cc/bluemonday"
)

// AllowedElements lists the tags that survive sanitizing.
var AllowedElements = []string{"b", "strong", "em", "mark", "cite", "dfn", "i", "span"}

var _ definer.Sanitizer = (*Sanitizer)(nil)

// Sanitizer scrubs every text field of a Word. Image URLs that are not
// absolute http(s) URLs are dropped.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer allowing AllowedElements without
// attributes.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(AllowedElements...)
	return &Sanitizer{policy: p}
}

// Sanitize scrubs a single fragment.
func (s *Sanitizer) Sanitize(fragment string) string {
	return strings.TrimSpace(s.policy.Sanitize(fragment))
}

// SanitizeWord scrubs w in place.
func (s *Sanitizer) SanitizeWord(w *definer.Word) {
	for i := range w.Overview {
		w.Overview[i] = s.Sanitize(w.Overview[i])
	}
	s.definitions(w.PrimaryDefs)
	for _, group := range w.SecondaryDefGroups {
		s.definitions(group)
	}
	s.definitions(w.WikiDefs)
	s.definitions(w.SlangDefs)
	s.origins(w.EtymOrigins)
	s.origins(w.WikiOrigins)

	images := w.StockImages[:0]
	for _, image := range w.StockImages {
		if u, err := url.Parse(image); err == nil && (u.Scheme == "https" || u.Scheme == "http") && u.Host != "" {
			images = append(images, image)
		}
	}
	w.StockImages = images
}

func (s *Sanitizer) definitions(defs []definer.Definition) {
	for i := range defs {
		defs[i].PartOfSpeech = s.Sanitize(defs[i].PartOfSpeech)
		defs[i].Meaning = s.Sanitize(defs[i].Meaning)
		for j := range defs[i].Examples {
			defs[i].Examples[j] = s.Sanitize(defs[i].Examples[j])
		}
	}
}

// origins sanitizes each paragraph separately so the paragraph break, which
// the policy does not allow, is preserved.
func (s *Sanitizer) origins(origins []definer.Origin) {
	for i := range origins {
		paragraphs := origins[i].Paragraphs()
		for j := range paragraphs {
			paragraphs[j] = s.Sanitize(paragraphs[j])
		}
		origins[i].Origin = strings.Join(paragraphs, definer.ParagraphBreak)
	}
}
