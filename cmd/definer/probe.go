package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/definer"
)

// Run executes the probe command. It reports every extraction error, so
// operators can tell a missing entry from markup drift.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	if c.List {
		for _, name := range deps.Registry.List() {
			fmt.Fprintln(deps.Stdout, name)
		}
		return nil
	}
	if c.Source == "" || c.Word == "" {
		return fmt.Errorf("usage: definer probe <source> <word>")
	}

	source, err := deps.Registry.Get(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Available sources: %s\n", strings.Join(deps.Registry.List(), ", "))
		return err
	}

	var html string
	if c.File != "" {
		b, err := os.ReadFile(c.File)
		if err != nil {
			return err
		}
		html = string(b)
	} else {
		u, err := source.URL(c.Word)
		if err != nil {
			return fmt.Errorf("%s declined %q: %w", source.Name(), c.Word, err)
		}
		fmt.Fprintf(deps.Stdout, "url: %s\n", u)
		html, err = deps.Fetcher.Fetch(deps.Ctx, u)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", u, err)
		}
	}

	result, err := source.Extract(c.Word, html)
	if err != nil {
		return fmt.Errorf("%s: %s (%s)", source.Name(), definer.ErrorMessage(err), definer.ErrorCode(err))
	}

	fmt.Fprintf(deps.Stdout, "source: %s\n", source.Name())
	PrintResult(deps.Stdout, result)
	return nil
}

// PrintResult writes a human-readable rendition of result.
func PrintResult(w io.Writer, result *definer.Result) {
	fmt.Fprintf(w, "kind: %s\n", result.Kind)
	for _, overview := range result.Overview {
		fmt.Fprintf(w, "overview: %s\n", overview)
	}
	for _, def := range result.Definitions {
		fmt.Fprintln(w, def)
	}
	for i, group := range result.SenseGroups {
		fmt.Fprintf(w, "sense %d:\n", i+1)
		for _, def := range group {
			fmt.Fprintln(w, def)
		}
	}
	for _, origin := range result.Origins {
		fmt.Fprintf(w, "origin (%s):\n", origin.PartOfSpeech)
		for _, p := range origin.Paragraphs() {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
	for _, image := range result.Images {
		fmt.Fprintf(w, "image: %s\n", image)
	}
}
