package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// resetFlags restores the package-level flag variables to their defaults so
// tests don't leak state into one another.
func resetFlags() {
	inputFile, outputFile = "", ""
	numThreads = 0
	showStats, pslPlus, pslStar = false, false, false
}

func TestRunEndToEndOnPathGraph(t *testing.T) {
	resetFlags()
	defer resetFlags()

	dir := t.TempDir()
	in := filepath.Join(dir, "graph.dimacs")
	out := filepath.Join(dir, "labels.txt")
	require.NoError(t, os.WriteFile(in, []byte("p sp 4 3\na 1 2\na 2 3\na 3 4\n"), 0o644))

	inputFile = in
	outputFile = out
	showStats = true

	log := logrus.NewEntry(logrus.New())
	require.NoError(t, run(log))

	contents, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(contents), "V 4\n")
}

func TestRunWithReductionAndLocality(t *testing.T) {
	resetFlags()
	defer resetFlags()

	dir := t.TempDir()
	in := filepath.Join(dir, "graph.dimacs")
	out := filepath.Join(dir, "labels.txt")
	// S5-equivalent: vertices 2 and 3 (1-based: 3 and 4) share the open
	// neighborhood {4}, and the only other edge is 0->1.
	require.NoError(t, os.WriteFile(in, []byte("p sp 5 3\na 1 2\na 3 5\na 4 5\n"), 0o644))

	inputFile = in
	outputFile = out
	pslPlus = true
	pslStar = true

	log := logrus.NewEntry(logrus.New())
	require.NoError(t, run(log))

	contents, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(contents), "f ")
}

func TestRunFailsOnMissingInput(t *testing.T) {
	resetFlags()
	defer resetFlags()

	log := logrus.NewEntry(logrus.New())
	err := run(log)
	require.Error(t, err)
}

func TestRunFailsOnUnreadableFile(t *testing.T) {
	resetFlags()
	defer resetFlags()

	inputFile = filepath.Join(t.TempDir(), "does-not-exist.dimacs")
	log := logrus.NewEntry(logrus.New())
	require.Error(t, run(log))
}
