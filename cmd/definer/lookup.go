package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/definer"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	w, err := deps.Words.Lookup(deps.Ctx, c.Word)
	if definer.ErrorCode(err) == definer.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "No data for %q.\n", c.Word)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", definer.ErrorMessage(err))
		return err
	}

	data, err := definer.MarshalWord(w)
	if err != nil {
		return err
	}

	if c.Pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(data), "", "  "); err != nil {
			return err
		}
		data = buf.String()
	}

	fmt.Fprintln(deps.Stdout, data)
	return nil
}
