package gridconn

// Components returns every maximal connected region of non-zero cells,
// in row-major discovery order (row ascending, then column ascending,
// ties among neighbors broken by the fixed offset order) — the
// determinism the DAG and piece extractor require downstream. Unlike a
// same-value grouping, a component may mix colours: Cut needs any
// 4-connected non-zero pixels merged into one piece regardless of
// which colours they are.
//
// Complexity: O(Width*Height*d) time, O(Width*Height) memory, d = 4 or 8.
func (g *Graph) Components() [][]Cell {
	total := g.Width * g.Height
	visited := make([]bool, total)
	var components [][]Cell

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			startIdx := g.index(row, col)
			if visited[startIdx] || g.at(row, col) == 0 {
				continue
			}
			queue := []int{startIdx}
			visited[startIdx] = true
			var comp []Cell

			for qi := 0; qi < len(queue); qi++ {
				idx := queue[qi]
				r0, c0 := idx/g.Width, idx%g.Width
				comp = append(comp, Cell{Row: r0, Col: c0, Value: g.at(r0, c0)})

				for _, d := range g.neighborOffsets {
					nr, nc := r0+d[1], c0+d[0]
					if !g.InBounds(nr, nc) || g.at(nr, nc) == 0 {
						continue
					}
					nIdx := g.index(nr, nc)
					if !visited[nIdx] {
						visited[nIdx] = true
						queue = append(queue, nIdx)
					}
				}
			}
			components = append(components, comp)
		}
	}
	return components
}

// Outside returns, for every zero-valued cell, whether it is reachable
// from the grid's border through other zero cells — i.e. whether it is
// background rather than an enclosed hole. FillHoles fills exactly the
// cells this reports false for.
//
// Complexity: O(Width*Height*d) time, O(Width*Height) memory.
func (g *Graph) Outside() []bool {
	total := g.Width * g.Height
	outside := make([]bool, total)
	var queue []int

	enqueue := func(row, col int) {
		if !g.InBounds(row, col) || g.at(row, col) != 0 {
			return
		}
		idx := g.index(row, col)
		if !outside[idx] {
			outside[idx] = true
			queue = append(queue, idx)
		}
	}
	for col := 0; col < g.Width; col++ {
		enqueue(0, col)
		enqueue(g.Height-1, col)
	}
	for row := 0; row < g.Height; row++ {
		enqueue(row, 0)
		enqueue(row, g.Width-1)
	}
	for qi := 0; qi < len(queue); qi++ {
		idx := queue[qi]
		r0, c0 := idx/g.Width, idx%g.Width
		for _, d := range g.neighborOffsets {
			enqueue(r0+d[1], c0+d[0])
		}
	}
	return outside
}
