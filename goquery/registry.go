package goquery

import (
	"sort"

	"github.com/fwojciec/definer"
)

// Registry maps short source names to sources, for operator tooling that
// addresses one source at a time.
type Registry struct {
	sources map[string]definer.Source
}

// NewRegistry creates a Registry holding every supported source.
func NewRegistry(restrictor *definer.Restrictor, opts ...Option) *Registry {
	r := &Registry{sources: make(map[string]definer.Source)}
	r.Register("vocabulary", NewVocabulary(opts...))
	r.Register("macmillan", NewMacmillan(opts...))
	r.Register("wiktionary", NewWiktionary(opts...))
	r.Register("etymonline", NewEtymonline(opts...))
	r.Register("adobestock", NewAdobeStock(restrictor, opts...))
	r.Register("urbandictionary", NewUrbanDictionary(opts...))
	return r
}

// Get returns the source registered under name.
// Returns ENOTFOUND if no source is registered under name.
func (r *Registry) Get(name string) (definer.Source, error) {
	source, ok := r.sources[name]
	if !ok {
		return nil, definer.Errorf(definer.ENOTFOUND, "unknown source %q", name)
	}
	return source, nil
}

// Register adds a source under name, replacing any previous one.
func (r *Registry) Register(name string, source definer.Source) {
	r.sources[name] = source
}

// List returns the registered names in lexical order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
