package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circuitviz/pkg/pipeline"
)

// renderCommand creates the render command that runs the full pipeline.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		configPath string
		flags      pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "render [vector-file]",
		Short: "Render a circuit vector as a flowsheet with its vector table",
		Long: `Render a circuit vector as a flowsheet with its vector table.

The render command reads the first line of the vector file, builds the
flowsheet graph, renders it left to right at 300 dpi, renders the raw vector
as a table, and stacks both into one PNG.

Output paths default to graph_image.png, vector_image.png and
merged_image.png inside the output directory. The intermediate graph
document (graph_data.txt) is only written with --keep-document.

Settings can also come from a TOML file given with --config; flags set on
the command line take precedence over the file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveRenderOptions(cmd, configPath, flags, args)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with render settings")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "output directory (default \".\")")
	cmd.Flags().StringVar(&flags.GraphPath, "graph", "", "flowsheet image path")
	cmd.Flags().StringVar(&flags.TablePath, "table", "", "vector table image path")
	cmd.Flags().StringVar(&flags.MergedPath, "merged", "", "merged image path")
	cmd.Flags().StringVar(&flags.DocumentPath, "document", "", "graph document path (with --keep-document)")
	cmd.Flags().BoolVar(&flags.KeepDocument, "keep-document", false, "write the intermediate graph document")
	cmd.Flags().BoolVar(&flags.ShowLabels, "labels", false, "print stream names on edges")
	cmd.Flags().BoolVar(&flags.Validate, "check", false, "reject structurally invalid circuits before rendering")

	return cmd
}

// resolveRenderOptions layers the config file, explicitly set flags and the
// positional vector path, in increasing order of precedence.
func resolveRenderOptions(cmd *cobra.Command, configPath string, flags pipeline.Options, args []string) (pipeline.Options, error) {
	var opts pipeline.Options
	if configPath != "" {
		loaded, err := pipeline.LoadConfig(configPath)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts = loaded
	}

	overrides := []struct {
		flag  string
		apply func()
	}{
		{"output", func() { opts.OutputDir = flags.OutputDir }},
		{"graph", func() { opts.GraphPath = flags.GraphPath }},
		{"table", func() { opts.TablePath = flags.TablePath }},
		{"merged", func() { opts.MergedPath = flags.MergedPath }},
		{"document", func() { opts.DocumentPath = flags.DocumentPath }},
		{"keep-document", func() { opts.KeepDocument = flags.KeepDocument }},
		{"labels", func() { opts.ShowLabels = flags.ShowLabels }},
		{"check", func() { opts.Validate = flags.Validate }},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			o.apply()
		}
	}

	if len(args) == 1 {
		opts.VectorPath = args[0]
	}
	if opts.VectorPath == "" {
		return pipeline.Options{}, fmt.Errorf("no vector file given (pass it as an argument or set 'vector' in the config)")
	}
	return opts, nil
}

// runRender executes the pipeline and prints a summary of the written files.
func (c *CLI) runRender(ctx context.Context, w io.Writer, opts pipeline.Options) error {
	c.Logger.Infof("Rendering %s", opts.VectorPath)
	prog := newProgress(c.Logger)

	opts.Logger = c.Logger
	res, err := c.newRunner().Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	prog.done("Rendered flowsheet")

	printSuccess(w, "Rendered circuit %s", StyleDim.Render(res.RunID[:8]))
	printStats(w, res.Stats.Units, res.Stats.NodeCount, res.Stats.EdgeCount)
	for _, p := range []string{res.DocumentPath, res.GraphPath, res.TablePath, res.MergedPath} {
		if p != "" {
			printFile(w, p)
		}
	}
	return nil
}
