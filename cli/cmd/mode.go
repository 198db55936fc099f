package cmd

import (
	"context"
	"fmt"
)

// Mode prints the resolved mode.
type Mode struct{}

// Run executes the mode command.
func (m *Mode) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	_, err = fmt.Fprintln(stdout(ctx), settingsFrom(ctx).loader().Mode())

	return err
}
