// Package maze: dual-lattice wall construction.
package maze

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mazespan/mazespan/core"
	"github.com/mazespan/mazespan/grid"
	"github.com/mazespan/mazespan/spantree"
)

// dualID formats a dual vertex from doubled lattice coordinates.
// Dual points always land on half-units, so the halved components
// print as "…0.5" and never collide with cell IDs.
func dualID(r2, c2 int) string {
	return fmt.Sprintf("%g,%g", float64(r2)/2, float64(c2)/2)
}

// wallSegment maps the base edge u-v onto its crossing wall: the edge
// midpoint plus and minus the quarter-turn of the half-offset. All
// arithmetic runs on doubled integers to stay exact.
func wallSegment(u, v string) (string, string, error) {
	r1, c1, err := grid.ParseID(u)
	if err != nil {
		return "", "", fmt.Errorf("maze: wall for %s-%s: %w", u, v, err)
	}
	r2, c2, err := grid.ParseID(v)
	if err != nil {
		return "", "", fmt.Errorf("maze: wall for %s-%s: %w", u, v, err)
	}
	sr, sc := r1+r2, c1+c2
	dr, dc := r1-r2, c1-c2

	return dualID(sr+dc, sc+dr), dualID(sr-dc, sc-dr), nil
}

// Dual renders a tree state on the dual lattice: every base edge the
// state does not use becomes one wall segment crossing it. The state
// need not be a spanning tree; walls are whatever base edges it
// leaves uncrossed.
//
// The result is an unweighted core.Graph whose vertices are dual
// lattice points, so it answers the same queries as any other graph
// here.
//
// Complexity: O(E log E) over the base edges.
func Dual(g *core.Graph, t *spantree.Tree) (*core.Graph, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if t == nil {
		return nil, ErrNilTree
	}

	walls := core.NewGraph()
	for _, e := range g.Edges() {
		if t.HasEdge(e.From, e.To) {
			continue
		}
		a, b, err := wallSegment(e.From, e.To)
		if err != nil {
			return nil, err
		}
		if err := walls.AddEdge(a, b, 0); err != nil {
			return nil, fmt.Errorf("maze: dual edge %s-%s: %w", a, b, err)
		}
	}

	return walls, nil
}

// Boundary adds the rectangle's perimeter walls to a wall graph,
// leaving two gaps: an entry above cell "0,0" and an exit below cell
// "rows-1,cols-1". Perimeter segments never coincide with interior
// walls, whose segments always cross into the rectangle.
//
// Complexity: O(rows + cols).
func Boundary(walls *core.Graph, rows, cols int) error {
	if walls == nil {
		return core.ErrNilGraph
	}
	if rows < 1 || cols < 1 {
		return fmt.Errorf("maze: boundary %dx%d: %w", rows, cols, grid.ErrBadDims)
	}

	add := func(ar, ac, br, bc int) error {
		return walls.AddEdge(dualID(ar, ac), dualID(br, bc), 0)
	}

	for c := 0; c < cols; c++ {
		// Top run at r=-0.5; the entry gap replaces the segment over
		// the start cell.
		if c != 0 {
			if err := add(-1, 2*c-1, -1, 2*c+1); err != nil {
				return err
			}
		}
		// Bottom run at r=rows-0.5; the exit gap replaces the segment
		// under the end cell.
		if c != cols-1 {
			if err := add(2*rows-1, 2*c-1, 2*rows-1, 2*c+1); err != nil {
				return err
			}
		}
	}
	for r := 0; r < rows; r++ {
		// Left and right runs are solid.
		if err := add(2*r-1, -1, 2*r+1, -1); err != nil {
			return err
		}
		if err := add(2*r-1, 2*cols-1, 2*r+1, 2*cols-1); err != nil {
			return err
		}
	}

	return nil
}

// WallPos maps a dual vertex ID onto the plane, (x=column, y=-row),
// the same frame grid.Pos uses for cells.
func WallPos(id string) (float64, float64, error) {
	rs, cs, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("maze: wall id %q: %w", id, grid.ErrBadID)
	}
	r, err := strconv.ParseFloat(rs, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("maze: wall id %q: %w", id, grid.ErrBadID)
	}
	c, err := strconv.ParseFloat(cs, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("maze: wall id %q: %w", id, grid.ErrBadID)
	}

	return c, -r, nil
}
