package transform

import "github.com/arcdag/solver/grid"

// filterColFn builds the Func for filterCol_<colour>: keep pixels equal
// to colour, zero everything else.
func filterColFn(colour int8) Func {
	return func(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
		in := s.First()
		out := in.Clone()
		for i, p := range out.Pixels {
			if p != colour {
				out.Pixels[i] = 0
			}
		}
		if maxTotalPixels > 0 && out.Area() > maxTotalPixels {
			return nil, false, false
		}
		return []grid.Grid{out}, false, true
	}
}

// invertFn maps colour 0 <-> 1 across every pixel, leaving other
// colours untouched: a binary swap for predominantly two-colour tasks.
func invertFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	in := s.First()
	out := in.Clone()
	for i, p := range out.Pixels {
		switch p {
		case 0:
			out.Pixels[i] = 1
		case 1:
			out.Pixels[i] = 0
		}
	}
	if maxTotalPixels > 0 && out.Area() > maxTotalPixels {
		return nil, false, false
	}
	return []grid.Grid{out}, false, true
}

// colorMapFn applies the identity colour permutation. It is a deliberate
// no-op seed: an implementer wiring a learned or configured colour
// mapping has a single place (this function body) to plug it in without
// touching the registry's shape. Kept distinct from identity so its cost
// and name remain independently addressable by the piece extractor.
func colorMapFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	in := s.First()
	out := in.Clone()
	if maxTotalPixels > 0 && out.Area() > maxTotalPixels {
		return nil, false, false
	}
	return []grid.Grid{out}, false, true
}
