package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"text/tabwriter"
)

// Files lists the candidate dotenv files of the resolved mode.
type Files struct {
	All bool `help:"Also list candidates that do not exist" short:"a"`
}

// Run executes the files command.
func (f *Files) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := settingsFrom(ctx)
	dir, _ := s.root()

	candidates, err := s.loader().Candidates()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout(ctx), 0, 4, 2, ' ', 0)

	for _, c := range candidates {
		if !c.Exists && !f.All {
			continue
		}

		state := "found"
		if !c.Exists {
			state = "missing"
		}

		path := filepath.Join(dir, filepath.FromSlash(c.Name))
		if !f.All {
			_, err = fmt.Fprintln(tw, path)
		} else {
			_, err = fmt.Fprintf(tw, "%s\t%s\n", path, state)
		}

		if err != nil {
			return err
		}
	}

	return tw.Flush()
}
