package transform

import "github.com/arcdag/solver/grid"

// rotate90 rotates g clockwise by 90 degrees.
func rotate90(g grid.Grid) grid.Grid {
	out, _ := grid.NewGrid(g.Height, g.Width, 0)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			// (r,c) -> (c, height-1-r)
			out.Pixels[c*out.Width+(g.Height-1-r)] = g.Pixels[r*g.Width+c]
		}
	}
	return out
}

// mirrorH flips g left-right.
func mirrorH(g grid.Grid) grid.Grid {
	out, _ := grid.NewGrid(g.Width, g.Height, 0)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			out.Pixels[r*out.Width+(g.Width-1-c)] = g.Pixels[r*g.Width+c]
		}
	}
	return out
}

// rigidTransform returns the grid obtained by rotating g clockwise by
// rotations*90 degrees, then optionally mirroring it horizontally. This
// enumerates the 8 elements of the square's symmetry group (dihedral
// group D4): rigid_0..rigid_3 are the 4 rotations, rigid_4..rigid_7 are
// each rotation composed with a horizontal flip.
func rigidTransform(g grid.Grid, rotations int, flip bool) grid.Grid {
	out := g
	for i := 0; i < rotations%4; i++ {
		out = rotate90(out)
	}
	if flip {
		out = mirrorH(out)
	}
	return out.WithOffset(0, 0)
}

// rigidFn builds the Func for rigid_<idx>, idx in [0,7].
func rigidFn(idx int) Func {
	rotations := idx % 4
	flip := idx >= 4
	return func(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
		out := rigidTransform(s.First(), rotations, flip)
		if maxTotalPixels > 0 && out.Area() > maxTotalPixels {
			return nil, false, false
		}
		return []grid.Grid{out}, false, true
	}
}

// RigidInverse returns the index j such that rigid_j undoes rigid_i,
// i.e. rigid_j(rigid_i(g)) == g for every grid g. Used only by tests,
// since the square's symmetry group is self-inverse under flips and
// has order-4 rotation inverses.
func RigidInverse(i int) int {
	rotations := i % 4
	flip := i >= 4
	if !flip {
		// pure rotation: inverse rotates the remaining way around
		if rotations == 0 {
			return 0
		}
		return 4 - rotations
	}
	// rotation composed with flip is its own inverse in D4's flip coset
	return i
}
