package gridgraph

// Components partitions all populated cells into pipe networks: maximal
// sets of cells reachable from one another under Connected.
// Seeds are taken in row-major order; each component lists its cells in BFS
// order from its seed.
//
// The rule is reciprocal for every pipe in the table, so following
// outgoing connections from any seed yields the whole network.
//
// Time:   O(N) for N populated cells (4 neighbours each).
// Memory: O(N) for the seen set and output.
func (g *Grid) Components() [][]Coord {
	seen := make(map[Coord]bool, len(g.cells))
	var comps [][]Coord

	for _, seed := range g.Coords() {
		if seen[seed] {
			continue
		}
		queue := []Coord{seed}
		seen[seed] = true

		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Neighbors(queue[qi]) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
