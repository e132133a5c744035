package slot

import "sort"

// Cluster is a connected group of same-kind paying-symbol cells together
// with any wild cells that extend it. A wild may belong to more than one
// Cluster simultaneously, which is why Cluster stores its own position
// set rather than the grid owning a single cluster-id per cell.
type Cluster struct {
	Symbol    Symbol
	Positions []Position
}

func (c Cluster) Size() int {
	return len(c.Positions)
}

// WildPositions returns the subset of the cluster's cells that are wild
// (extension cells) rather than the paying-symbol core, per g.
func (c Cluster) WildPositions(g *Grid) []Position {
	var out []Position
	for _, p := range c.Positions {
		if g.At(p).IsWild() {
			out = append(out, p)
		}
	}
	return out
}

// union-find over the 25 grid cells, indexed r*GridCols+c.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

func idx(p Position) int {
	return p.Row*GridCols + p.Col
}

// DetectClusters runs the two-phase cluster algorithm: union same-kind
// paying cells via 4-adjacency, then independently extend each resulting
// component with every wild cell transitively 4-adjacent to it. Returned
// clusters are filtered to size >= 5 and sorted into a fixed, reproducible
// order (by paying-symbol rank, then by the cluster's smallest position,
// then by its full row-major position list).
func DetectClusters(g *Grid) []Cluster {
	uf := newUnionFind(GridRows * GridCols)

	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			p := Position{Row: r, Col: c}
			s := g.At(p)
			if !s.IsPaying() {
				continue
			}
			for _, n := range []Position{{Row: r, Col: c + 1}, {Row: r + 1, Col: c}} {
				if !n.inBounds() {
					continue
				}
				if g.At(n) == s {
					uf.union(idx(p), idx(n))
				}
			}
		}
	}

	componentCells := make(map[int][]Position)
	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			p := Position{Row: r, Col: c}
			if !g.At(p).IsPaying() {
				continue
			}
			root := uf.find(idx(p))
			componentCells[root] = append(componentCells[root], p)
		}
	}

	var clusters []Cluster
	for _, core := range componentCells {
		kind := g.At(core[0])
		extended := extendWithWilds(g, core)
		if len(extended) < minClusterSize {
			continue
		}
		clusters = append(clusters, Cluster{Symbol: kind, Positions: extended})
	}

	sort.Slice(clusters, func(i, j int) bool {
		ci, cj := clusters[i], clusters[j]
		pi, pj := ci.Symbol.payIndex(), cj.Symbol.payIndex()
		if pi != pj {
			return pi < pj
		}
		mi, mj := minPosition(ci.Positions), minPosition(cj.Positions)
		if mi != mj {
			return mi.less(mj)
		}
		// Two same-kind clusters can share a wild as their smallest cell;
		// their row-major position lists still differ, so compare those.
		for k := 0; k < len(ci.Positions) && k < len(cj.Positions); k++ {
			if ci.Positions[k] != cj.Positions[k] {
				return ci.Positions[k].less(cj.Positions[k])
			}
		}
		return len(ci.Positions) < len(cj.Positions)
	})

	return clusters
}

// extendWithWilds performs a multi-source BFS from core's cells over
// wild-only 4-adjacency, so a wild chain of any length joins the
// component, and returns core plus every reached wild, in row-major
// order. Each call is independent, which is exactly what lets a single
// wild cell join more than one cluster across separate calls.
func extendWithWilds(g *Grid, core []Position) []Position {
	visited := make(map[Position]bool, len(core))
	result := make([]Position, 0, len(core))
	for _, p := range core {
		visited[p] = true
		result = append(result, p)
	}

	queue := append([]Position{}, core...)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range neighbors4(p) {
			if visited[n] {
				continue
			}
			if !g.At(n).IsWild() {
				continue
			}
			visited[n] = true
			result = append(result, n)
			queue = append(queue, n)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].less(result[j]) })
	return result
}

func minPosition(positions []Position) Position {
	m := positions[0]
	for _, p := range positions[1:] {
		if p.less(m) {
			m = p
		}
	}
	return m
}

// IsWildPosition reports whether the cell at p currently holds a wild,
// i.e. whether p would be a wild-extension cell rather than a core
// paying-symbol cell of any cluster containing it.
func IsWildPosition(g *Grid, p Position) bool {
	return g.At(p).IsWild()
}
