package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circuitviz/pkg/errs"
)

// encodeCommand creates the encode command that prints the graph document.
func (c *CLI) encodeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "encode [vector-file]",
		Short: "Write the NODES/EDGES graph document for a circuit vector",
		Long: `Write the NODES/EDGES graph document for a circuit vector.

The document lists one node per unit plus the Concentrate and Tailings sinks,
then the feed edge and three stream edges per unit. It is written to stdout
unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEncode(cmd.Context(), cmd.OutOrStdout(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// runEncode loads the vector and writes its document to output or stdout.
func (c *CLI) runEncode(ctx context.Context, stdout io.Writer, input, output string) error {
	_, doc, err := c.newRunner().Encode(ctx, input)
	if err != nil {
		return err
	}

	out, err := openOutput(stdout, output)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	if _, err := doc.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	if output != "" {
		c.Logger.Infof("Wrote graph document to %s", output)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(stdout io.Writer, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}
