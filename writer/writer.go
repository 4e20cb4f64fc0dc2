// Package writer implements the label file output §6 specifies: a plain
// line-oriented text format read back by nothing in this repository (it is
// the handoff artifact to external query tooling). The header and "o"/"i"
// lines follow the original's hub_labels.h::saveToFile; the "f" mapping
// lines use the combined layout described on WriteLabels.
package writer

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/go-psl/psl/label"
	"github.com/go-psl/psl/reduce"
	"github.com/go-psl/psl/types"
)

// WriteLabels writes the "V <n>" header, one "o"/"i" line pair per vertex,
// and, when classes is non-nil, one "f i fi part newId" line per
// pre-reduction vertex: fi is its representative, part its equivalence
// class, and newId its post-removal index in the reduced graph ("x" if it
// did not survive reduction). oldToNew must be the slice reduce.Apply
// returned alongside classes; together the two let a caller replay §4.9's
// reconstruction rule (see reduce.Reconstruct) without re-running reduce.
// Compute. §9's Open Question about the output format notes distances must
// never reach INFINITY; WriteLabels returns an error for such an entry
// rather than silently truncating a bad label.
func WriteLabels(w io.Writer, fwd, bwd []label.Label, classes *reduce.Classes, oldToNew []types.Vertex) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("V " + strconv.Itoa(len(fwd)) + "\n"); err != nil {
		return errors.Wrap(err, "writing label file header")
	}

	for v := range fwd {
		if err := writeLine(bw, "o", v, &fwd[v]); err != nil {
			return err
		}
		if err := writeLine(bw, "i", v, &bwd[v]); err != nil {
			return err
		}
	}

	if classes != nil {
		for i, fi := range classes.F {
			newID := "x"
			if oldToNew[i] != types.NoVertex {
				newID = strconv.Itoa(int(oldToNew[i]))
			}
			line := "f " + strconv.Itoa(i) + " " + strconv.Itoa(int(fi)) + " " +
				strconv.Itoa(int(classes.Part[i])) + " " + newID + "\n"
			if _, err := bw.WriteString(line); err != nil {
				return errors.Wrap(err, "writing representative mapping")
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing label file")
	}
	return nil
}

func writeLine(bw *bufio.Writer, tag string, v int, l *label.Label) error {
	if _, err := bw.WriteString(tag + " " + strconv.Itoa(v)); err != nil {
		return errors.Wrapf(err, "writing %q line for vertex %d", tag, v)
	}
	var writeErr error
	l.ForEach(func(hub types.Vertex, dist types.Distance) {
		if writeErr != nil {
			return
		}
		if dist >= types.Infinity {
			writeErr = errors.Errorf("vertex %d has an INFINITY-valued label entry (hub %d); refusing to write it", v, hub)
			return
		}
		_, writeErr = bw.WriteString(" " + strconv.Itoa(int(hub)) + " " + strconv.Itoa(int(dist)))
	})
	if writeErr != nil {
		return writeErr
	}
	_, err := bw.WriteString("\n")
	return errors.Wrapf(err, "writing %q line for vertex %d", tag, v)
}
