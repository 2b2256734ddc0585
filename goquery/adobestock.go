package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/definer"
)

// AdobeStockHost identifies the stock imagery search.
const AdobeStockHost = "stock.adobe.com"

// MaxImages caps the number of images collected per word.
const MaxImages = 6

var _ definer.Source = (*AdobeStock)(nil)

// AdobeStock collects image URLs from a stock search, filtered through a
// Restrictor.
type AdobeStock struct {
	site
	restrictor *definer.Restrictor
}

// NewAdobeStock creates the imagery source. The restrictor is required.
func NewAdobeStock(restrictor *definer.Restrictor, opts ...Option) *AdobeStock {
	return &AdobeStock{site: newSite(AdobeStockHost, opts), restrictor: restrictor}
}

// URL returns the search page for word.
// Restricted words are refused before any request is made.
func (a *AdobeStock) URL(word string) (string, error) {
	if a.restrictor.IsRestricted(word) {
		return "", definer.Errorf(definer.ERESTRICTED, "image search refused for restricted word")
	}
	return a.baseURL + "/search?k=" + url.QueryEscape(word), nil
}

// Extract collects up to MaxImages image URLs whose alt text is not
// restricted.
func (a *AdobeStock) Extract(word, html string) (*definer.Result, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	result := &definer.Result{Kind: definer.ResultImages}
	doc.Find(".search-result-cell").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		img := cell.Find("img").First()
		alt, ok := img.Attr("alt")
		if !ok || a.restrictor.IsRestricted(alt) {
			return true
		}
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return true
		}

		result.Images = append(result.Images, src)
		return len(result.Images) < MaxImages
	})

	if len(result.Images) == 0 {
		return nil, definer.Errorf(definer.ENOTFOUND, "no images for %q", word)
	}
	return result, nil
}
