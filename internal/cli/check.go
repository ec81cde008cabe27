package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// checkCommand creates the check command that runs the validity checker.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [vector-file]",
		Short: "Check that a circuit vector describes a workable circuit",
		Long: `Check that a circuit vector describes a workable circuit.

A circuit is rejected when a unit feeds itself, sends all three streams to the
same place, sends concentrate straight to tailings (or tailings straight to
concentrate), is unreachable from the feed, or when the circuit has no
concentrate or tailings exit. The command exits non-zero on rejection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}

	return cmd
}

// runCheck validates the vector at path and reports the outcome to w.
func (c *CLI) runCheck(ctx context.Context, w io.Writer, path string) error {
	v, err := c.newRunner().Check(ctx, path)
	if err != nil {
		printError(w, "%s", err)
		return err
	}
	printSuccess(w, "Valid circuit")
	printKeyValue(w, "Units", fmt.Sprint(v.Units()))
	return nil
}
