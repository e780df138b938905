package transform

import (
	"sort"

	"github.com/arcdag/solver/grid"
	"github.com/arcdag/solver/internal/gridconn"
)

// identityFn returns s unchanged. Registered with cost 1, unlisted: it
// exists so a DAG root can be looked up through the same Library
// machinery as every other transform, not so the DAG expands it.
func identityFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	return s.Images, s.IsVector, true
}

// transposeFn swaps rows and columns of the first image.
func transposeFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	in := s.First()
	out, _ := grid.NewGrid(in.Height, in.Width, 0)
	for r := 0; r < in.Height; r++ {
		for c := 0; c < in.Width; c++ {
			out.Pixels[c*out.Width+r] = in.Pixels[r*in.Width+c]
		}
	}
	if maxTotalPixels > 0 && out.Area() > maxTotalPixels {
		return nil, false, false
	}
	return []grid.Grid{out}, false, true
}

// flipHFn mirrors the first image left-right.
func flipHFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	out := mirrorH(s.First())
	if maxTotalPixels > 0 && out.Area() > maxTotalPixels {
		return nil, false, false
	}
	return []grid.Grid{out}, false, true
}

// flipVFn mirrors the first image top-bottom.
func flipVFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	in := s.First()
	out, _ := grid.NewGrid(in.Width, in.Height, 0)
	for r := 0; r < in.Height; r++ {
		for c := 0; c < in.Width; c++ {
			out.Pixels[(in.Height-1-r)*out.Width+c] = in.Pixels[r*in.Width+c]
		}
	}
	if maxTotalPixels > 0 && out.Area() > maxTotalPixels {
		return nil, false, false
	}
	return []grid.Grid{out}, false, true
}

// toOriginFn resets the first image's offset to (0,0); pixels unchanged.
func toOriginFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	out := s.First().WithOffset(0, 0)
	return []grid.Grid{out}, false, true
}

// compressFn strips every row and every column that is entirely zero,
// compacting the remainder in their original relative order. A grid
// with no non-zero pixel at all compresses to a single 0-valued pixel.
func compressFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	in := s.First()
	keepRow := make([]bool, in.Height)
	for r := 0; r < in.Height; r++ {
		for c := 0; c < in.Width; c++ {
			if in.Safe(r, c) != 0 {
				keepRow[r] = true
				break
			}
		}
	}
	keepCol := make([]bool, in.Width)
	for c := 0; c < in.Width; c++ {
		for r := 0; r < in.Height; r++ {
			if in.Safe(r, c) != 0 {
				keepCol[c] = true
				break
			}
		}
	}
	var rows, cols []int
	for r, ok := range keepRow {
		if ok {
			rows = append(rows, r)
		}
	}
	for c, ok := range keepCol {
		if ok {
			cols = append(cols, c)
		}
	}
	if len(rows) == 0 || len(cols) == 0 {
		out, _ := grid.NewGrid(1, 1, 0)
		return []grid.Grid{out}, false, true
	}
	out, _ := grid.NewGrid(len(cols), len(rows), 0)
	for ri, r := range rows {
		for ci, c := range cols {
			out.Pixels[ri*out.Width+ci] = in.Safe(r, c)
		}
	}
	if maxTotalPixels > 0 && out.Area() > maxTotalPixels {
		return nil, false, false
	}
	return []grid.Grid{out}, false, true
}

// extractPatternFn trims the first image down to the bounding box of its
// non-zero pixels, keeping any interior zero rows/columns inside that
// box (unlike compress, which strips every all-zero row/column no
// matter where it sits). A grid with no non-zero pixel extracts to a
// single 0-valued pixel.
func extractPatternFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	in := s.First()
	minR, minC, maxR, maxC := in.Height, in.Width, -1, -1
	for r := 0; r < in.Height; r++ {
		for c := 0; c < in.Width; c++ {
			if in.Safe(r, c) == 0 {
				continue
			}
			if r < minR {
				minR = r
			}
			if c < minC {
				minC = c
			}
			if r > maxR {
				maxR = r
			}
			if c > maxC {
				maxC = c
			}
		}
	}
	if maxR < 0 {
		out, _ := grid.NewGrid(1, 1, 0)
		return []grid.Grid{out}, false, true
	}
	h, w := maxR-minR+1, maxC-minC+1
	out, _ := grid.NewGrid(w, h, 0)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			out.Pixels[r*w+c] = in.Safe(minR+r, minC+c)
		}
	}
	out = out.WithOffset(in.X+minC, in.Y+minR)
	if maxTotalPixels > 0 && out.Area() > maxTotalPixels {
		return nil, false, false
	}
	return []grid.Grid{out}, false, true
}

// replicateFn doubles the first image by juxtaposing it with a
// horizontal mirror of itself: a deterministic, bounded structural
// transform, distinct from open-ended tiling-to-any-size behaviour,
// which stays out of the core and is left to a narrow specialist.
func replicateFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	in := s.First()
	mirror := mirrorH(in)
	out, _ := grid.NewGrid(in.Width*2, in.Height, 0)
	for r := 0; r < in.Height; r++ {
		for c := 0; c < in.Width; c++ {
			out.Pixels[r*out.Width+c] = in.Pixels[r*in.Width+c]
			out.Pixels[r*out.Width+in.Width+c] = mirror.Pixels[r*mirror.Width+c]
		}
	}
	if maxTotalPixels > 0 && out.Area() > maxTotalPixels {
		return nil, false, false
	}
	return []grid.Grid{out}, false, true
}

// cutFn produces a vector State whose images are the 4-connected
// non-zero components of the first image, each cropped to its own
// bounding box and offset to its original position. Components are
// ordered by gridconn.Components' row-major discovery order, a
// determinism contract the piece extractor relies on.
func cutFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	in := s.First()
	if in.Width == 0 || in.Height == 0 {
		return nil, false, false
	}
	g, err := gridconn.New(in.Width, in.Height, in.Pixels, gridconn.Conn4)
	if err != nil {
		return nil, false, false
	}
	comps := g.Components()
	if len(comps) == 0 {
		return nil, false, false
	}
	images := make([]grid.Grid, 0, len(comps))
	total := 0
	for _, comp := range comps {
		minR, minC, maxR, maxC := in.Height, in.Width, 0, 0
		for _, cell := range comp {
			if cell.Row < minR {
				minR = cell.Row
			}
			if cell.Col < minC {
				minC = cell.Col
			}
			if cell.Row > maxR {
				maxR = cell.Row
			}
			if cell.Col > maxC {
				maxC = cell.Col
			}
		}
		h, w := maxR-minR+1, maxC-minC+1
		img, _ := grid.NewGrid(w, h, 0)
		for _, cell := range comp {
			img.Pixels[(cell.Row-minR)*w+(cell.Col-minC)] = cell.Value
		}
		img = img.WithOffset(in.X+minC, in.Y+minR)
		total += img.Area()
		images = append(images, img)
	}
	if maxTotalPixels > 0 && total > maxTotalPixels {
		return nil, false, false
	}
	return images, true, true
}

// splitColsFn produces a vector State with one image per distinct
// non-zero colour present in the first image, each image the full
// frame with only that colour's pixels kept. Colours are ordered
// ascending for determinism.
func splitColsFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	in := s.First()
	present := make(map[int8]bool)
	for _, p := range in.Pixels {
		if p != 0 {
			present[p] = true
		}
	}
	if len(present) == 0 {
		return nil, false, false
	}
	colours := make([]int8, 0, len(present))
	for c := range present {
		colours = append(colours, c)
	}
	sort.Slice(colours, func(i, j int) bool { return colours[i] < colours[j] })

	images := make([]grid.Grid, 0, len(colours))
	total := 0
	for _, colour := range colours {
		out := in.Clone()
		for i, p := range out.Pixels {
			if p != colour {
				out.Pixels[i] = 0
			}
		}
		total += out.Area()
		images = append(images, out)
	}
	if maxTotalPixels > 0 && total > maxTotalPixels {
		return nil, false, false
	}
	return images, true, true
}

// fillHolesFn fills every zero pixel that is not reachable from the
// border (an enclosed hole) with the majority non-zero colour in the
// image. Returns ok=false if the image has no enclosed holes or no
// non-zero colour to fill with.
func fillHolesFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	in := s.First()
	if in.Width == 0 || in.Height == 0 {
		return nil, false, false
	}
	g, err := gridconn.New(in.Width, in.Height, in.Pixels, gridconn.Conn4)
	if err != nil {
		return nil, false, false
	}
	outside := g.Outside()

	counts := make(map[int8]int)
	for _, p := range in.Pixels {
		if p != 0 {
			counts[p]++
		}
	}
	if len(counts) == 0 {
		return nil, false, false
	}
	var majority int8
	best := -1
	for colour := int8(0); colour <= grid.MaxColour; colour++ {
		if counts[colour] > best {
			best = counts[colour]
			majority = colour
		}
	}

	out := in.Clone()
	filled := false
	for i, p := range out.Pixels {
		if p == 0 && !outside[i] {
			out.Pixels[i] = majority
			filled = true
		}
	}
	if !filled {
		return nil, false, false
	}
	if maxTotalPixels > 0 && out.Area() > maxTotalPixels {
		return nil, false, false
	}
	return []grid.Grid{out}, false, true
}

// removeNoiseFn zeroes every connected component of size 1 (an isolated
// pixel with no same-or-different-coloured non-zero neighbour). Returns
// ok=false if there is nothing to remove.
func removeNoiseFn(s grid.State, maxTotalPixels int) ([]grid.Grid, bool, bool) {
	in := s.First()
	if in.Width == 0 || in.Height == 0 {
		return nil, false, false
	}
	g, err := gridconn.New(in.Width, in.Height, in.Pixels, gridconn.Conn4)
	if err != nil {
		return nil, false, false
	}
	out := in.Clone()
	removed := false
	for _, comp := range g.Components() {
		if len(comp) != 1 {
			continue
		}
		cell := comp[0]
		out.Pixels[cell.Row*out.Width+cell.Col] = 0
		removed = true
	}
	if !removed {
		return nil, false, false
	}
	if maxTotalPixels > 0 && out.Area() > maxTotalPixels {
		return nil, false, false
	}
	return []grid.Grid{out}, false, true
}
