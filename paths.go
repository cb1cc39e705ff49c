package main

import (
	"math"
)

// Path is an ordered run of segments forming one continuous cut: each
// segment ends within chaining tolerance of where the next one starts.
type Path struct {
	segments []Segment
}

func (p *Path) Start() Point {
	return p.segments[0].a
}

func (p *Path) End() Point {
	return p.segments[len(p.segments)-1].b
}

func (p *Path) Length() float64 {
	total := 0.0
	for i := range p.segments {
		total += p.segments[i].Length()
	}
	return total
}

// Reversed flips the traversal direction: segment order is reversed and
// every segment is individually flipped.
func (p *Path) Reversed() Path {
	segments := make([]Segment, 0, len(p.segments))
	for i := len(p.segments) - 1; i >= 0; i-- {
		segments = append(segments, p.segments[i].Reversed())
	}
	return Path{segments: segments}
}

// MergeCollinear collapses runs of consecutive line segments that continue
// in a straight line into single segments, and drops degenerate zero-length
// segments. Arcs pass through untouched. The collinearity epsilon scales
// with tolerance squared; that matches the tolerances users already rely
// on, it is not a derived bound.
func (p *Path) MergeCollinear(tolerance float64) Path {
	epsilon := 1e-9
	collinearEpsilon := tolerance * tolerance

	merged := []Segment{}
	for i := range p.segments {
		s := p.segments[i]
		if s.Length() <= epsilon {
			continue
		}
		if s.kind != LineSegment || len(merged) == 0 {
			merged = append(merged, s)
			continue
		}

		run := &merged[len(merged)-1]
		if run.kind != LineSegment || run.b.DistanceTo(s.a) > tolerance {
			merged = append(merged, s)
			continue
		}

		// cross product of run direction with the candidate endpoint,
		// relative to the run start
		cross := (run.b.x-run.a.x)*(s.b.y-run.a.y) - (run.b.y-run.a.y)*(s.b.x-run.a.x)
		if math.Abs(cross) <= collinearEpsilon {
			run.b = s.b
		} else {
			merged = append(merged, s)
		}
	}

	return Path{segments: merged}
}

// SortPaths greedily orders paths by travel distance: repeatedly take the
// unvisited path whose start or end is nearest to the cursor, reversing it
// when its end is the nearer point. The cursor starts at the machine
// origin. This is a nearest-neighbor heuristic, not a shortest tour.
func SortPaths(paths []Path) []Path {
	need := map[int]*Path{}
	for i := range paths {
		if len(paths[i].segments) > 0 {
			need[i] = &paths[i]
		}
	}

	sorted := []Path{}
	cursor := Point{0, 0}

	for len(need) > 0 {
		minDist := math.Inf(1)
		minIdx := -1
		minReversed := false

		for i, path := range need {
			dist := cursor.DistanceTo(path.Start())
			reversed := false
			if d := cursor.DistanceTo(path.End()); d < dist {
				dist = d
				reversed = true
			}

			// ties go to the lowest index so map iteration order can't
			// change the result
			if minIdx == -1 || dist < minDist || (dist == minDist && i < minIdx) {
				minDist = dist
				minIdx = i
				minReversed = reversed
			}
		}

		path := need[minIdx]
		if minReversed {
			reversed := path.Reversed()
			sorted = append(sorted, reversed)
		} else {
			sorted = append(sorted, *path)
		}
		cursor = sorted[len(sorted)-1].End()

		delete(need, minIdx)
	}

	return sorted
}

// FusePaths concatenates consecutive paths whose end and start coincide
// within tolerance, so the planner keeps the tool down across the joint
// instead of lifting between two contours that already meet.
func FusePaths(paths []Path, tolerance float64) []Path {
	if len(paths) == 0 {
		return paths
	}

	fused := []Path{paths[0]}
	for i := 1; i < len(paths); i++ {
		last := &fused[len(fused)-1]
		if last.End().DistanceTo(paths[i].Start()) <= tolerance {
			last.segments = append(last.segments, paths[i].segments...)
		} else {
			fused = append(fused, paths[i])
		}
	}

	return fused
}

// PostProcess runs the full path cleanup: collinear merge per path, then
// nearest-travel ordering, then continuous-chain fusion. Paths emptied by
// the merge are dropped.
func PostProcess(paths []Path, opt *Options) []Path {
	cleaned := []Path{}
	for i := range paths {
		merged := paths[i].MergeCollinear(opt.tolerance)
		if len(merged.segments) > 0 {
			cleaned = append(cleaned, merged)
		}
	}

	return FusePaths(SortPaths(cleaned), opt.tolerance)
}
