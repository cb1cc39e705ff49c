package main

import (
	"math"
)

type PlaybackMode int

const (
	RapidMotion PlaybackMode = iota
	CutMotion
)

// PlaybackSegment is one straight or arc motion of the simulated tool,
// indexed by cumulative arc length so playback can scrub to any fraction
// of the program in constant time.
type PlaybackSegment struct {
	a    Point
	b    Point
	mode PlaybackMode

	length     float64
	cumulative float64

	isArc      bool
	center     Point
	radius     float64
	startAngle float64
	endAngle   float64
	ccw        bool
}

type Playback struct {
	segments []PlaybackSegment
}

// BuildPlayback rebuilds the simulated motion sequence from the move list.
// Only XY motion is simulated: retracts and plunges are vertical and
// contribute nothing to the 2D scrub. Arc centers are reconstructed from
// the incremental offsets the moves carry.
func BuildPlayback(moves []Move) *Playback {
	pb := &Playback{}

	// the tool starts at the machine origin; every XY move becomes one
	// playback segment, zero-length ones included
	position := Point{0, 0}
	total := 0.0

	for i := range moves {
		m := &moves[i]

		switch m.kind {
		case MoveRetract, MovePlunge, MoveSetFeedXY:
			continue

		case MoveRapidXY, MoveCutLine:
			target := Point{m.x, m.y}

			mode := CutMotion
			if m.kind == MoveRapidXY {
				mode = RapidMotion
			}

			length := position.DistanceTo(target)
			total += length
			pb.segments = append(pb.segments, PlaybackSegment{
				a:          position,
				b:          target,
				mode:       mode,
				length:     length,
				cumulative: total,
			})
			position = target

		case MoveCutArc:
			target := Point{m.x, m.y}

			center := Point{position.x + m.i, position.y + m.j}
			radius := position.DistanceTo(center)

			startAngle := math.Atan2(position.y-center.y, position.x-center.x)
			endAngle := math.Atan2(target.y-center.y, target.x-center.x)

			arc := Segment{
				kind:       ArcSegment,
				a:          position,
				b:          target,
				center:     center,
				radius:     radius,
				ccw:        m.ccw,
				startAngle: startAngle,
				endAngle:   endAngle,
			}

			length := math.Abs(arc.Sweep()) * radius
			total += length
			pb.segments = append(pb.segments, PlaybackSegment{
				a:          position,
				b:          target,
				mode:       CutMotion,
				length:     length,
				cumulative: total,
				isArc:      true,
				center:     center,
				radius:     radius,
				startAngle: startAngle,
				endAngle:   endAngle,
				ccw:        m.ccw,
			})
			position = target
		}
	}

	return pb
}

// Lengths sums cut and rapid travel separately.
func (pb *Playback) Lengths() (cut, rapid float64) {
	for i := range pb.segments {
		if pb.segments[i].mode == CutMotion {
			cut += pb.segments[i].length
		} else {
			rapid += pb.segments[i].length
		}
	}
	return cut, rapid
}

// TotalLength is the cumulative length of the last segment, or 1 for an
// empty playback so fraction math never divides by zero.
func (pb *Playback) TotalLength() float64 {
	if len(pb.segments) == 0 {
		return 1
	}
	return pb.segments[len(pb.segments)-1].cumulative
}

// PositionAt resolves the tool position at fraction t of the program's
// total length. It reports false when there is no motion to play back.
func (pb *Playback) PositionAt(t float64) (Point, bool) {
	if len(pb.segments) == 0 {
		return Point{}, false
	}

	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	target := t * pb.TotalLength()

	// binary search for the first segment whose cumulative length reaches
	// the target
	lo := 0
	hi := len(pb.segments) - 1
	for lo < hi {
		mid := (lo + hi) / 2
		if pb.segments[mid].cumulative >= target {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	seg := &pb.segments[lo]

	u := 0.0
	if seg.length > 0 {
		u = (target - (seg.cumulative - seg.length)) / seg.length
	}
	if u < 0 {
		u = 0
	}
	if u > 1 {
		u = 1
	}

	if !seg.isArc {
		return Point{
			seg.a.x + (seg.b.x-seg.a.x)*u,
			seg.a.y + (seg.b.y-seg.a.y)*u,
		}, true
	}

	arc := Segment{
		kind:       ArcSegment,
		a:          seg.a,
		b:          seg.b,
		center:     seg.center,
		radius:     seg.radius,
		ccw:        seg.ccw,
		startAngle: seg.startAngle,
		endAngle:   seg.endAngle,
	}
	angle := seg.startAngle + arc.Sweep()*u
	return Point{
		seg.center.x + seg.radius*math.Cos(angle),
		seg.center.y + seg.radius*math.Sin(angle),
	}, true
}
