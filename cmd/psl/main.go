// Command psl computes a 2-hop distance-preserving hub labeling for a
// directed, unweighted graph, optionally applying the PSL+ reduction and/or
// the PSL* locality optimization first.
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-psl/psl/engine"
	"github.com/go-psl/psl/graph"
	"github.com/go-psl/psl/label"
	"github.com/go-psl/psl/locality"
	"github.com/go-psl/psl/orchestrator"
	"github.com/go-psl/psl/rank"
	"github.com/go-psl/psl/reader"
	"github.com/go-psl/psl/reduce"
	"github.com/go-psl/psl/statuslog"
	"github.com/go-psl/psl/types"
	"github.com/go-psl/psl/writer"
)

var (
	inputFile  string
	numThreads int
	outputFile string
	showStats  bool
	pslPlus    bool
	pslStar    bool
)

func main() {
	log := logrus.NewEntry(logrus.StandardLogger())

	root := &cobra.Command{
		Use:           "psl",
		Short:         "Compute a 2-hop hub labeling for a directed, unweighted graph (PSL/PSL+/PSL*).",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				log.Debugf("flag -%s=%s", f.Shorthand, f.Value.String())
			})
			return run(log)
		},
	}

	root.Flags().StringVarP(&inputFile, "input", "i", "", "input graph file (DIMACS format by default; dispatched by extension otherwise)")
	root.Flags().IntVarP(&numThreads, "threads", "t", 0, "worker count (default: hardware concurrency)")
	root.Flags().StringVarP(&outputFile, "output", "o", "", "output label file path; empty disables output")
	root.Flags().BoolVarP(&showStats, "stats", "s", false, "print graph and label statistics")
	root.Flags().BoolVarP(&pslPlus, "plus", "p", false, "apply the PSL+ equivalence-class reduction")
	root.Flags().BoolVarP(&pslStar, "star", "r", false, "apply the PSL* locality optimization")
	_ = root.MarkFlagRequired("input")

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("psl failed")
		os.Exit(1)
	}
}

func run(log *logrus.Entry) error {
	runID := uuid.New()
	log = log.WithField("run", runID.String())

	g, err := readInput(inputFile)
	if err != nil {
		return errors.Wrap(err, "reading input graph")
	}

	if showStats {
		stats := statuslog.ComputeGraphStats(g.NumVertices(), g.NumEdges(), func(v int) int { return g.Degree(types.Vertex(v)) })
		stats.Log(log)
	}

	g, err = buildRankedGraph(log, g)
	if err != nil {
		return errors.Wrap(err, "ranking graph")
	}

	var classes *reduce.Classes
	var oldToNew []types.Vertex
	if pslPlus {
		g, classes, oldToNew = applyReduction(log, g)
		if showStats {
			stats := statuslog.ComputeGraphStats(g.NumVertices(), g.NumEdges(), func(v int) int { return g.Degree(types.Vertex(v)) })
			stats.Log(log)
		}
	}

	var bwd *graph.Graph
	statuslog.Scoped(log, "reversing graph", func() { bwd = g.Reverse() })

	pool := orchestrator.New(numThreads)
	log.Infof("running with %d workers", pool.NumWorkers)

	var labels *engine.Labels
	statuslog.Scoped(log, "computing labels", func() {
		if pslStar {
			loc := locality.Build(g, bwd)
			labels = engine.RunWithLocality(g, bwd, loc, pool)
		} else {
			labels = engine.Run(g, bwd, pool)
		}
	})

	if showStats {
		logLabelStats(log, labels)
	}

	if outputFile != "" {
		if err := writeOutput(log, outputFile, labels, classes, oldToNew); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}

	return nil
}

func readInput(path string) (*graph.Graph, error) {
	if path == "" {
		return nil, errors.New("-i/--input is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".el", ".edges", ".edgelist":
		return reader.EdgeList(f)
	case ".snap":
		return reader.Snap(f)
	case ".metis", ".graph":
		return reader.Metis(f)
	default:
		return reader.Dimacs(f)
	}
}

// buildRankedGraph computes the default degree-based rank and reorders g by
// it, failing fast if the rank is ever malformed — §7's canonical
// invariant-violation example — rather than handing graph.ReorderByRank a
// rank it assumes is already a permutation.
func buildRankedGraph(log *logrus.Entry, g *graph.Graph) (*graph.Graph, error) {
	var ranked *graph.Graph
	var rankErr error
	statuslog.Scoped(log, "ranking and reordering graph", func() {
		r := rank.ByDegree(g)
		if rankErr = rank.EnsurePermutation(r); rankErr != nil {
			return
		}
		ranked = g.ReorderByRank(r)
	})
	if rankErr != nil {
		return nil, rankErr
	}
	return ranked, nil
}

// applyReduction computes the PSL+ equivalence classes and removes every
// non-representative vertex, returning the compacted graph alongside the
// classes and the oldToNew map reduce.Apply produced — both are needed
// downstream, by writer.WriteLabels and reduce.Reconstruct, to recover an
// unreduced-vertex distance from a query over the compacted graph.
func applyReduction(log *logrus.Entry, g *graph.Graph) (*graph.Graph, *reduce.Classes, []types.Vertex) {
	var compacted *graph.Graph
	var classes *reduce.Classes
	var oldToNew []types.Vertex
	statuslog.Scoped(log, "applying PSL+ reduction", func() {
		classes = reduce.Compute(g)
		compacted, oldToNew = reduce.Apply(g, classes)
	})
	return compacted, classes, oldToNew
}

func logLabelStats(log *logrus.Entry, labels *engine.Labels) {
	fwdSizes := sizesOf(labels.FWD)
	bwdSizes := sizesOf(labels.BWD)
	stats := statuslog.ComputeLabelStats(fwdSizes, bwdSizes, labelBytes(labels))
	stats.Log(log)
}

func sizesOf(ls []label.Label) []int {
	sizes := make([]int, len(ls))
	for i := range ls {
		sizes[i] = ls[i].Size()
	}
	return sizes
}

func labelBytes(labels *engine.Labels) int64 {
	var total int64
	for _, set := range [2][]label.Label{labels.FWD, labels.BWD} {
		for _, l := range set {
			total += int64(l.Size()) * (4 + 1) // Vertex (uint32) + Distance (uint8) per entry
		}
	}
	return total
}

func writeOutput(log *logrus.Entry, path string, labels *engine.Labels, classes *reduce.Classes, oldToNew []types.Vertex) error {
	var err error
	statuslog.Scoped(log, "writing label file", func() {
		var f *os.File
		f, err = os.Create(path)
		if err != nil {
			err = errors.Wrapf(err, "creating %q", path)
			return
		}
		defer f.Close()
		err = writer.WriteLabels(f, labels.FWD, labels.BWD, classes, oldToNew)
	})
	return err
}
