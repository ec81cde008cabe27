// Package pkg provides the libraries behind circuitviz.
//
// # Overview
//
// circuitviz draws separation circuits. A circuit is given as a flat vector of
// integers: element 0 names the unit receiving the feed, and every following
// triple names where one unit sends its concentrate, intermediate and tailing
// streams. Destinations U and U+1 (for U units) are the Concentrate and
// Tailings sinks.
//
// # Architecture
//
// Data flows through the packages in a single pass:
//
//	vector file
//	     ↓
//	[circuit] package (load, optional validity check)
//	     ↓
//	[flowsheet] package (nodes + edges, NODES/EDGES text document)
//	     ↓
//	[render] package (Graphviz DOT → PNG for the graph and the vector table)
//	     ↓
//	[composite] package (graph stacked over the rescaled table)
//
// [pipeline] wires the stages together with explicit paths and reports each
// stage to [observability] hooks. [errs] holds the error taxonomy every stage
// wraps.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(log.Default())
//	res, err := runner.Run(ctx, pipeline.Options{
//	    VectorPath: "circuit.txt",
//	    OutputDir:  "out",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.MergedPath)
//
// [circuit]: https://pkg.go.dev/github.com/matzehuels/circuitviz/pkg/circuit
// [flowsheet]: https://pkg.go.dev/github.com/matzehuels/circuitviz/pkg/flowsheet
// [render]: https://pkg.go.dev/github.com/matzehuels/circuitviz/pkg/render
// [composite]: https://pkg.go.dev/github.com/matzehuels/circuitviz/pkg/composite
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/circuitviz/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/circuitviz/pkg/observability
// [errs]: https://pkg.go.dev/github.com/matzehuels/circuitviz/pkg/errs
package pkg
