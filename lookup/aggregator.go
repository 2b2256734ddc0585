// Package lookup builds words from their sources and serves them from a
// cache with staleness-based refresh.
package lookup

import (
	"context"
	"net/url"
	"slices"
	"time"

	"github.com/fwojciec/definer"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds the fetch and extraction of each source call. Waiting
// on the host limiter gets its own window of the same length, so a busy host
// delays a source instead of starving its fetch.
const DefaultTimeout = 10 * time.Second

var _ definer.Aggregator = (*Aggregator)(nil)

// Aggregator composes a Word from up to six sources in two concurrent
// phases. Definition sources run first; the remaining sources are consulted
// only when at least one definition was found.
//
// A nil source is skipped. A failing source contributes nothing and never
// cancels its siblings. Source calls are detached from the caller's
// cancellation and bounded only by Timeout, so a departed caller cannot
// leave a partially built word behind.
type Aggregator struct {
	Fetcher definer.Fetcher

	Primary   definer.Source
	Secondary definer.Source
	Wiki      definer.Source

	Etymology definer.Source
	Imagery   definer.Source
	Slang     definer.Source

	// Limiter paces requests per host. Optional.
	Limiter definer.HostLimiter

	// Sanitizer scrubs the assembled word. Optional.
	Sanitizer definer.Sanitizer

	// Timeout bounds each source call. Defaults to DefaultTimeout.
	Timeout time.Duration

	// Now stamps LastUpdated. Defaults to time.Now.
	Now func() time.Time
}

// Aggregate queries every source for word and composes the results.
// Returns ENOTFOUND when no definition source has an entry.
func (a *Aggregator) Aggregate(ctx context.Context, word string) (*definer.Word, error) {
	ctx = context.WithoutCancel(ctx)

	var primary, secondary, wiki *definer.Result

	var defs errgroup.Group
	defs.Go(func() error { primary = a.contribute(ctx, a.Primary, word, definer.ResultDefinitions); return nil })
	defs.Go(func() error { secondary = a.contribute(ctx, a.Secondary, word, definer.ResultSenseGroups); return nil })
	defs.Go(func() error { wiki = a.contribute(ctx, a.Wiki, word, definer.ResultWiki); return nil })
	_ = defs.Wait()

	w := &definer.Word{}
	if primary != nil {
		w.Overview = primary.Overview[:min(len(primary.Overview), 2)]
		w.PrimaryDefs = primary.Definitions
	}
	if secondary != nil {
		w.SecondaryDefGroups = secondary.SenseGroups
	}
	if wiki != nil {
		w.WikiDefs = wiki.Definitions
		w.WikiOrigins = wiki.Origins
	}
	if !w.HasDefinitions() {
		return nil, definer.Errorf(definer.ENOTFOUND, "no data for %q", word)
	}

	var etymology, imagery, slang *definer.Result

	var extras errgroup.Group
	extras.Go(func() error { etymology = a.contribute(ctx, a.Etymology, word, definer.ResultOrigins); return nil })
	extras.Go(func() error { imagery = a.contribute(ctx, a.Imagery, word, definer.ResultImages); return nil })
	extras.Go(func() error { slang = a.contribute(ctx, a.Slang, word, definer.ResultDefinitions); return nil })
	_ = extras.Wait()

	if etymology != nil {
		w.EtymOrigins = etymology.Origins
	}
	if imagery != nil {
		w.StockImages = imagery.Images
	}
	if slang != nil {
		w.SlangDefs = slang.Definitions
	}

	contributions := []struct {
		source definer.Source
		result *definer.Result
	}{
		{a.Primary, primary},
		{a.Secondary, secondary},
		{a.Wiki, wiki},
		{a.Etymology, etymology},
		{a.Imagery, imagery},
		{a.Slang, slang},
	}
	for _, c := range contributions {
		if c.result.IsEmpty() {
			continue
		}
		if name := c.source.Name(); !slices.Contains(w.Sources, name) {
			w.Sources = append(w.Sources, name)
		}
	}

	if a.Sanitizer != nil {
		a.Sanitizer.SanitizeWord(w)
	}
	w.LastUpdated = a.now().UnixMilli()

	return w, nil
}

// contribute runs one source end to end. Any failure, or a result of an
// unexpected kind, yields nil.
func (a *Aggregator) contribute(ctx context.Context, source definer.Source, word string, kind definer.ResultKind) *definer.Result {
	if source == nil {
		return nil
	}

	u, err := source.URL(word)
	if err != nil {
		return nil
	}

	if a.Limiter != nil {
		parsed, err := url.Parse(u)
		if err != nil {
			return nil
		}
		if err := a.wait(ctx, parsed.Host); err != nil {
			return nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout())
	defer cancel()

	body, err := a.Fetcher.Fetch(ctx, u)
	if err != nil {
		return nil
	}

	result, err := source.Extract(word, body)
	if err != nil || result == nil || result.Kind != kind {
		return nil
	}
	return result
}

// wait blocks on the host limiter within its own timeout window.
func (a *Aggregator) wait(ctx context.Context, host string) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout())
	defer cancel()
	return a.Limiter.Wait(ctx, host)
}

func (a *Aggregator) timeout() time.Duration {
	if a.Timeout <= 0 {
		return DefaultTimeout
	}
	return a.Timeout
}

func (a *Aggregator) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}
