// Package reader implements the input-graph parsers §6 names as external
// collaborators: DIMACS, plain edge-list, SNAP and METIS. Each funnels into
// graph.FromEdgeList so every format shares one CSR-construction path.
// Parse errors are wrapped with github.com/pkg/errors so the file path and
// offending line survive up to the caller, matching the input-format error
// kind of the original error taxonomy.
package reader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-psl/psl/graph"
	"github.com/go-psl/psl/types"
)

// parseError reports a malformed line with its 1-based line number.
func parseError(format string, lineNo int, args ...interface{}) error {
	return errors.Errorf("line %d: "+format, append([]interface{}{lineNo}, args...)...)
}

func parseUint(field string, lineNo int) (uint64, error) {
	v, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return 0, parseError("invalid integer %q", lineNo, field)
	}
	return v, nil
}

// Dimacs reads the DIMACS format: lines starting 'c' are comments, a single
// 'p <name> V E' line declares counts, and each 'a u v' line declares a
// 1-based directed edge. Mirrors graph.h::readDimacs.
func Dimacs(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	var n int
	var edges [][2]types.Vertex

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) != 4 {
				return nil, parseError("malformed 'p' line", lineNo)
			}
			v, err := parseUint(fields[2], lineNo)
			if err != nil {
				return nil, err
			}
			n = int(v)
		case "a":
			if len(fields) != 3 {
				return nil, parseError("malformed 'a' line", lineNo)
			}
			u, err := parseUint(fields[1], lineNo)
			if err != nil {
				return nil, err
			}
			v, err := parseUint(fields[2], lineNo)
			if err != nil {
				return nil, err
			}
			if u == 0 || v == 0 {
				return nil, parseError("vertex ids are 1-based, got 0", lineNo)
			}
			edges = append(edges, [2]types.Vertex{types.Vertex(u - 1), types.Vertex(v - 1)})
		default:
			return nil, parseError("unrecognized line prefix %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading dimacs input")
	}
	if err := checkBounds(n, edges, lineNo); err != nil {
		return nil, err
	}
	return graph.FromEdgeList(n, edges), nil
}

// EdgeList reads the plain edge-list format: each line 'u v', 1-based. The
// vertex count is inferred as the largest id seen. Mirrors
// graph.h::readFromEdgeList.
func EdgeList(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	var edges [][2]types.Vertex
	maxVertex := 0

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		u, err := parseUint(fields[0], lineNo)
		if err != nil {
			return nil, err
		}
		v, err := parseUint(fields[1], lineNo)
		if err != nil {
			return nil, err
		}
		if u == 0 || v == 0 {
			return nil, parseError("vertex ids are 1-based, got 0", lineNo)
		}
		from, to := int(u-1), int(v-1)
		if from > maxVertex {
			maxVertex = from
		}
		if to > maxVertex {
			maxVertex = to
		}
		edges = append(edges, [2]types.Vertex{types.Vertex(from), types.Vertex(to)})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading edge-list input")
	}
	n := maxVertex + 1
	if err := checkBounds(n, edges, lineNo); err != nil {
		return nil, err
	}
	return graph.FromEdgeList(n, edges), nil
}

// Snap reads the SNAP format: lines starting '#' are comments, each data
// line 'u v' is 0-based, and exact duplicate edges are removed. Mirrors
// graph.h::readSnap (deduplication there happens via sort+unique; here
// graph.FromEdgeList's own dedup handles it).
func Snap(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	var edges [][2]types.Vertex
	maxVertex := 0

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, parseError("expected 'u v', got %q", lineNo, line)
		}
		u, err := parseUint(fields[0], lineNo)
		if err != nil {
			return nil, err
		}
		v, err := parseUint(fields[1], lineNo)
		if err != nil {
			return nil, err
		}
		if int(u) > maxVertex {
			maxVertex = int(u)
		}
		if int(v) > maxVertex {
			maxVertex = int(v)
		}
		edges = append(edges, [2]types.Vertex{types.Vertex(u), types.Vertex(v)})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading snap input")
	}
	n := maxVertex + 1
	if err := checkBounds(n, edges, lineNo); err != nil {
		return nil, err
	}
	return graph.FromEdgeList(n, edges), nil
}

// Metis reads the METIS undirected adjacency format: a 'V E' header
// followed by one line per vertex listing its 1-based neighbors. Every
// undirected entry is expanded into both directed arcs before CSR
// construction, matching how the other readers arrive at a directed graph.
func Metis(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	var n int
	var edges [][2]types.Vertex

	lineNo := 0
	header := false
	vertex := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '%' {
			continue
		}
		fields := strings.Fields(line)

		if !header {
			if len(fields) < 2 {
				return nil, parseError("malformed 'V E' header", lineNo)
			}
			v, err := parseUint(fields[0], lineNo)
			if err != nil {
				return nil, err
			}
			n = int(v)
			header = true
			continue
		}

		from := types.Vertex(vertex)
		for _, field := range fields {
			to, err := parseUint(field, lineNo)
			if err != nil {
				return nil, err
			}
			if to == 0 {
				return nil, parseError("vertex ids are 1-based, got 0", lineNo)
			}
			toVertex := types.Vertex(to - 1)
			edges = append(edges, [2]types.Vertex{from, toVertex}, [2]types.Vertex{toVertex, from})
		}
		vertex++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading metis input")
	}
	if vertex != n {
		return nil, errors.Errorf("metis header declared %d vertices, found %d adjacency lines", n, vertex)
	}
	if err := checkBounds(n, edges, lineNo); err != nil {
		return nil, err
	}
	return graph.FromEdgeList(n, edges), nil
}

// checkBounds rejects any edge endpoint outside [0, n), the invariant
// graph.FromEdgeList assumes its caller has already enforced.
func checkBounds(n int, edges [][2]types.Vertex, lineNo int) error {
	for _, e := range edges {
		if int(e[0]) >= n || int(e[1]) >= n {
			return errors.Errorf("edge (%d,%d) out of range for %d vertices (near line %d)", e[0], e[1], n, lineNo)
		}
	}
	return nil
}
