// Package statuslog replaces the original implementation's
// external/status_log.h: a scoped timer that logs a start line, does the
// caller's work, and logs a "done [Xms]" line when the scope closes.
// Component packages never print directly; they return data or log through
// here at Info level via logrus.
package statuslog

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Timer logs msg immediately and logs the elapsed time when Done is called.
type Timer struct {
	msg   string
	start time.Time
	log   *logrus.Entry
}

// Start begins a scoped timer, logging msg at Info level.
func Start(log *logrus.Entry, msg string) *Timer {
	log.Infof("%s ...", msg)
	return &Timer{msg: msg, start: time.Now(), log: log}
}

// Done logs the elapsed time since Start.
func (t *Timer) Done() {
	t.log.Infof("%s ... done [%dms]", t.msg, time.Since(t.start).Milliseconds())
}

// Scoped runs fn under a Timer, guaranteeing Done is logged even if fn
// panics.
func Scoped(log *logrus.Entry, msg string, fn func()) {
	timer := Start(log, msg)
	defer timer.Done()
	fn()
}

// GraphStats mirrors graph.h::showStats: vertex/edge counts and the
// degree distribution's extremes and average.
type GraphStats struct {
	NumVertices int
	NumEdges    int
	MinDegree   int
	MaxDegree   int
	AvgDegree   float64
}

// ComputeGraphStats walks every vertex's degree once.
func ComputeGraphStats(numVertices, numEdges int, degree func(v int) int) GraphStats {
	if numVertices == 0 {
		return GraphStats{}
	}
	minDeg, maxDeg, total := int(^uint(0)>>1), 0, 0
	for v := 0; v < numVertices; v++ {
		d := degree(v)
		if d < minDeg {
			minDeg = d
		}
		if d > maxDeg {
			maxDeg = d
		}
		total += d
	}
	return GraphStats{
		NumVertices: numVertices,
		NumEdges:    numEdges,
		MinDegree:   minDeg,
		MaxDegree:   maxDeg,
		AvgDegree:   float64(total) / float64(numVertices),
	}
}

// Log reports the graph statistics at Info level.
func (s GraphStats) Log(log *logrus.Entry) {
	log.Infof("graph: %d vertices, %d edges, degree min=%d max=%d avg=%.2f",
		s.NumVertices, s.NumEdges, s.MinDegree, s.MaxDegree, s.AvgDegree)
}

// SizeStats mirrors hub_labels.h::showLabelStats's per-direction
// min/max/avg/total over a set of labels.
type SizeStats struct {
	Min, Max   int
	Avg        float64
	TotalCount int
}

func computeSizeStats(sizes []int) SizeStats {
	if len(sizes) == 0 {
		return SizeStats{}
	}
	minSize, maxSize, total := sizes[0], sizes[0], 0
	for _, s := range sizes {
		if s < minSize {
			minSize = s
		}
		if s > maxSize {
			maxSize = s
		}
		total += s
	}
	return SizeStats{Min: minSize, Max: maxSize, Avg: float64(total) / float64(len(sizes)), TotalCount: total}
}

// LabelStats mirrors hub_labels.h::showLabelStats and computeTotalBytes:
// per-direction size distribution plus the labels' total byte footprint.
type LabelStats struct {
	FWD        SizeStats
	BWD        SizeStats
	TotalBytes int64
}

// ComputeLabelStats takes the per-vertex label sizes (caller-computed via
// label.Label.Size, so this package stays free of a dependency on the
// label/engine packages) and the already-summed byte footprint.
func ComputeLabelStats(fwdSizes, bwdSizes []int, totalBytes int64) LabelStats {
	return LabelStats{
		FWD:        computeSizeStats(fwdSizes),
		BWD:        computeSizeStats(bwdSizes),
		TotalBytes: totalBytes,
	}
}

// Log reports the label statistics at Info level.
func (s LabelStats) Log(log *logrus.Entry) {
	log.Infof("forward labels: min=%d max=%d avg=%.2f", s.FWD.Min, s.FWD.Max, s.FWD.Avg)
	log.Infof("backward labels: min=%d max=%d avg=%.2f", s.BWD.Min, s.BWD.Max, s.BWD.Avg)
	log.Infof("label pairs: fwd=%d bwd=%d total=%d", s.FWD.TotalCount, s.BWD.TotalCount, s.FWD.TotalCount+s.BWD.TotalCount)
	log.Infof("label memory: %.2f MiB", float64(s.TotalBytes)/(1024.0*1024.0))
}
