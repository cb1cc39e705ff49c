package main

import (
	"math"
)

type MoveKind int

const (
	MoveRetract MoveKind = iota
	MoveRapidXY
	MovePlunge
	MoveSetFeedXY
	MoveCutLine
	MoveCutArc
)

// Move is one planned machine motion with absolute targets. Plunge carries
// a feed only when the modal feed changes; CutArc carries the arc center as
// an offset from the move's start point, which is the convention arc motion
// commands use.
type Move struct {
	kind MoveKind

	x float64
	y float64
	z float64

	feed float64

	i   float64
	j   float64
	ccw bool
}

// cursor is the planner's running tool state. Coordinates start NaN
// ("position unknown") so the first contour always gets a full
// retract/rapid/plunge cycle.
type cursor struct {
	x    float64
	y    float64
	z    float64
	feed float64
}

func newCursor() cursor {
	return cursor{
		x: math.NaN(),
		y: math.NaN(),
		z: math.NaN(),
	}
}

func (c *cursor) xyWithin(p Point, tolerance float64) bool {
	if math.IsNaN(c.x) || math.IsNaN(c.y) {
		return false
	}
	return Point{c.x, c.y}.DistanceTo(p) <= tolerance
}

func (c *cursor) zAt(z float64) bool {
	epsilon := 1e-9
	return !math.IsNaN(c.z) && math.Abs(c.z-z) <= epsilon
}

// PassDepths returns the per-pass target depths, each negative, stepping
// down by at most stepDown until the full depth is reached.
func PassDepths(depth, stepDown float64) []float64 {
	depth = math.Abs(depth)
	if depth == 0 {
		return nil
	}
	if stepDown <= 0 || stepDown > depth {
		stepDown = depth
	}

	n := int(math.Ceil(depth / stepDown))
	depths := make([]float64, n)
	for i := 1; i <= n; i++ {
		depths[i-1] = -math.Min(depth, float64(i)*stepDown)
	}
	return depths
}

// PlanMoves expands the ordered paths into the full multi-pass move list.
// The elision rules are the point of this function: a retract only happens
// when the tool is not already at safe Z, a rapid/plunge only when the tool
// is not already sitting at the next contour's start at cutting depth, so
// fused continuous contours are cut without ever lifting the tool.
func PlanMoves(paths []Path, opt *Options) []Move {
	moves := []Move{}
	state := newCursor()

	for _, passZ := range PassDepths(opt.depth, opt.stepDown) {
		for p := range paths {
			path := &paths[p]
			start := path.Start()

			if !state.xyWithin(start, opt.tolerance) || !state.zAt(passZ) {
				if !state.zAt(opt.safeZ) {
					moves = append(moves, Move{kind: MoveRetract, z: opt.safeZ})
					state.z = opt.safeZ
				}

				moves = append(moves, Move{kind: MoveRapidXY, x: start.x, y: start.y})
				state.x = start.x
				state.y = start.y

				plunge := Move{kind: MovePlunge, z: passZ}
				if state.feed != opt.zFeed {
					plunge.feed = opt.zFeed
					state.feed = opt.zFeed
				}
				moves = append(moves, plunge)
				state.z = passZ

				if state.feed != opt.xyFeed {
					moves = append(moves, Move{kind: MoveSetFeedXY, feed: opt.xyFeed})
					state.feed = opt.xyFeed
				}
			}

			for s := range path.segments {
				seg := &path.segments[s]
				if seg.kind == ArcSegment {
					// center offset relative to the segment's actual start
					// point, after any origin shift
					moves = append(moves, Move{
						kind: MoveCutArc,
						x:    seg.b.x,
						y:    seg.b.y,
						i:    seg.center.x - seg.a.x,
						j:    seg.center.y - seg.a.y,
						ccw:  seg.ccw,
					})
				} else {
					moves = append(moves, Move{kind: MoveCutLine, x: seg.b.x, y: seg.b.y})
				}
				state.x = seg.b.x
				state.y = seg.b.y
			}
		}

		if !state.zAt(opt.safeZ) {
			moves = append(moves, Move{kind: MoveRetract, z: opt.safeZ})
			state.z = opt.safeZ
		}
	}

	return moves
}
