package main

import (
	"math"
)

type ChainMode int

const (
	ExactChain ChainMode = iota
	TracingChain
)

type gridKey struct {
	x int64
	y int64
}

// gridIndex is a spatial hash from quantized coordinates to segment
// indices. Cell size equals the chaining tolerance, so any point within
// tolerance of a query point lands in the query cell or one of its eight
// neighbors.
type gridIndex struct {
	cell  float64
	cells map[gridKey][]int
}

func newGridIndex(cell float64) *gridIndex {
	if cell <= 0 {
		cell = 1e-9
	}
	return &gridIndex{
		cell:  cell,
		cells: map[gridKey][]int{},
	}
}

func (g *gridIndex) keyFor(p Point) gridKey {
	return gridKey{
		int64(math.Floor(p.x / g.cell)),
		int64(math.Floor(p.y / g.cell)),
	}
}

func (g *gridIndex) Add(p Point, idx int) {
	k := g.keyFor(p)
	g.cells[k] = append(g.cells[k], idx)
}

// Near returns the indices stored within the 3x3 cell neighborhood of p.
// Callers still have to distance-check the candidates; the grid only
// narrows the search.
func (g *gridIndex) Near(p Point) []int {
	found := []int{}
	k := g.keyFor(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			found = append(found, g.cells[gridKey{k.x + dx, k.y + dy}]...)
		}
	}
	return found
}

// Same returns only the indices in exactly p's cell.
func (g *gridIndex) Same(p Point) []int {
	return g.cells[g.keyFor(p)]
}

// ChainSegments assembles the segment soup into maximal continuous paths.
// Every input segment ends up in exactly one path exactly once, possibly
// reversed; ties are broken by ascending segment index so the result is
// deterministic for a given input order.
func ChainSegments(segments []Segment, opt *Options) []Path {
	if opt.chainMode == TracingChain {
		return chainTracing(segments, opt)
	}
	return chainExact(segments, opt)
}

func chainExact(segments []Segment, opt *Options) []Path {
	tolerance := opt.tolerance

	starts := newGridIndex(tolerance)
	ends := newGridIndex(tolerance)
	for i := range segments {
		starts.Add(segments[i].a, i)
		ends.Add(segments[i].b, i)
	}

	used := make([]bool, len(segments))
	paths := []Path{}

	// pick the lowest-index unused candidate whose relevant endpoint lies
	// within tolerance of p
	next := func(p Point, fromStart bool) int {
		index := starts
		if !fromStart {
			index = ends
		}
		best := -1
		for _, i := range index.Near(p) {
			if used[i] {
				continue
			}
			endpoint := segments[i].a
			if !fromStart {
				endpoint = segments[i].b
			}
			if p.DistanceTo(endpoint) <= tolerance && (best == -1 || i < best) {
				best = i
			}
		}
		return best
	}

	for seed := range segments {
		if used[seed] {
			continue
		}
		used[seed] = true
		chain := []Segment{segments[seed]}

		// grow forward from the open end
		for {
			tip := chain[len(chain)-1].b
			if i := next(tip, true); i >= 0 {
				used[i] = true
				chain = append(chain, segments[i])
				continue
			}
			if i := next(tip, false); i >= 0 {
				used[i] = true
				chain = append(chain, segments[i].Reversed())
				continue
			}
			break
		}

		// grow backward from the open start
		for {
			tip := chain[0].a
			if i := next(tip, false); i >= 0 {
				used[i] = true
				chain = append([]Segment{segments[i]}, chain...)
				continue
			}
			if i := next(tip, true); i >= 0 {
				used[i] = true
				reversed := segments[i].Reversed()
				chain = append([]Segment{reversed}, chain...)
				continue
			}
			break
		}

		paths = append(paths, Path{segments: chain})
	}

	return paths
}

// chainTracing chains snapped line soups by endpoint cell plus direction:
// among candidates starting in the cell of the chain's open end, the one
// deviating least from the current heading wins, provided it deviates less
// than the angular tolerance. The direction tie-break is what keeps a chain
// from wandering onto a coincident but differently-oriented stray line;
// when two candidates deviate equally the junction is ambiguous and the
// chain stops rather than guess. The rule is a heuristic carried over for
// compatibility with existing tolerance settings, not a principled matcher.
func chainTracing(segments []Segment, opt *Options) []Path {
	cell := opt.snapGrid
	if cell <= 0 {
		cell = opt.tolerance
	}
	angularTolerance := opt.angularTolerance * math.Pi / 180

	starts := newGridIndex(cell)
	for i := range segments {
		starts.Add(segments[i].a, i)
	}

	used := make([]bool, len(segments))
	paths := []Path{}

	for seed := range segments {
		if used[seed] {
			continue
		}
		used[seed] = true
		chain := []Segment{segments[seed]}

		for {
			last := &chain[len(chain)-1]
			heading := last.Direction()

			best := -1
			bestDeviation := angularTolerance
			tied := false
			for _, i := range starts.Same(last.b) {
				if used[i] {
					continue
				}
				deviation := math.Abs(angleDifference(segments[i].Direction(), heading))
				if deviation < bestDeviation {
					bestDeviation = deviation
					best = i
					tied = false
				} else if best != -1 && deviation == bestDeviation {
					tied = true
				}
			}
			if best == -1 || tied {
				break
			}
			used[best] = true
			chain = append(chain, segments[best])
		}

		paths = append(paths, Path{segments: chain})
	}

	return paths
}

// angleDifference normalizes a-b into (-pi, pi].
func angleDifference(a, b float64) float64 {
	d := a - b
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
