package main

import (
	"math"
	"testing"
)

func checkPoint(t *testing.T, name string, got, want Point) {
	t.Helper()
	epsilon := 0.00001
	if math.Abs(got.x-want.x) > epsilon || math.Abs(got.y-want.y) > epsilon {
		t.Errorf("%s: got (%v,%v), want (%v,%v)", name, got.x, got.y, want.x, want.y)
	}
}

func checkFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	epsilon := 0.00001
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func TestBulgeArcQuarter(t *testing.T) {
	// bulge for a 90 degree arc is tan(90/4)
	bulge := math.Tan(math.Pi / 8)
	arc := BulgeArc(Point{0, 0}, Point{1, 0}, bulge)

	if arc.kind != ArcSegment {
		t.Fatalf("expected an arc segment")
	}
	if !arc.ccw {
		t.Errorf("positive bulge should be counter-clockwise")
	}

	checkFloat(t, "radius", arc.radius, 1/math.Sqrt2)
	checkPoint(t, "center", arc.center, Point{0.5, 0.5})
	checkFloat(t, "sweep", arc.Sweep(), math.Pi/2)
	checkFloat(t, "length", arc.Length(), math.Pi/2/math.Sqrt2)

	// both endpoints must satisfy the circle equation to high precision
	for _, p := range []Point{arc.a, arc.b} {
		residual := math.Abs(p.DistanceTo(arc.center) - arc.radius)
		if residual > 1e-9 {
			t.Errorf("endpoint (%v,%v) off the circle by %v", p.x, p.y, residual)
		}
	}
}

func TestBulgeArcSemicircle(t *testing.T) {
	arc := BulgeArc(Point{1, 0}, Point{1, 1}, 1.0)

	checkFloat(t, "radius", arc.radius, 0.5)
	checkPoint(t, "center", arc.center, Point{1, 0.5})
	checkFloat(t, "sweep", arc.Sweep(), math.Pi)
	if !arc.ccw {
		t.Errorf("positive bulge should be counter-clockwise")
	}
}

func TestBulgeArcNegative(t *testing.T) {
	bulge := -math.Tan(math.Pi / 8)
	arc := BulgeArc(Point{0, 0}, Point{1, 0}, bulge)

	if arc.ccw {
		t.Errorf("negative bulge should be clockwise")
	}
	checkPoint(t, "center", arc.center, Point{0.5, -0.5})
	checkFloat(t, "sweep", arc.Sweep(), -math.Pi/2)
}

func TestBulgeArcDegenerateChord(t *testing.T) {
	seg := BulgeArc(Point{2, 3}, Point{2, 3}, 0.5)
	if seg.kind != LineSegment {
		t.Errorf("zero chord should degrade to a line")
	}
	if seg.Length() != 0 {
		t.Errorf("degenerate segment should have zero length, got %v", seg.Length())
	}
}

func TestSegmentReversal(t *testing.T) {
	arc := BulgeArc(Point{0, 0}, Point{1, 0}, math.Tan(math.Pi/8))
	rev := arc.Reversed()

	checkPoint(t, "reversed start", rev.a, arc.b)
	checkPoint(t, "reversed end", rev.b, arc.a)
	if rev.ccw == arc.ccw {
		t.Errorf("reversal should flip winding")
	}
	checkFloat(t, "reversed start angle", rev.startAngle, arc.endAngle)
	checkFloat(t, "reversed end angle", rev.endAngle, arc.startAngle)
	checkFloat(t, "reversed length", rev.Length(), arc.Length())
	checkPoint(t, "reversed center", rev.center, arc.center)
}

func TestBoundsArcExtrema(t *testing.T) {
	// semicircle below the chord: from (0,0) ccw to (1,0) about (0.5,0)
	arc := BulgeArc(Point{0, 0}, Point{1, 0}, 1.0)
	minX, minY, maxX, maxY := Bounds([]Segment{arc})

	// the bottom of the circle is inside the sweep, the top is not
	checkFloat(t, "minX", minX, 0)
	checkFloat(t, "minY", minY, -0.5)
	checkFloat(t, "maxX", maxX, 1)
	checkFloat(t, "maxY", maxY, 0)
}

func TestBoundsLines(t *testing.T) {
	segments := []Segment{
		NewLine(Point{-1, 2}, Point{3, -4}),
		NewLine(Point{0, 0}, Point{1, 1}),
	}
	minX, minY, maxX, maxY := Bounds(segments)
	checkFloat(t, "minX", minX, -1)
	checkFloat(t, "minY", minY, -4)
	checkFloat(t, "maxX", maxX, 3)
	checkFloat(t, "maxY", maxY, 2)
}

func TestSnapPoint(t *testing.T) {
	checkPoint(t, "snap", SnapPoint(Point{0.124, -0.126}, 0.05), Point{0.1, -0.15})
	checkPoint(t, "snap disabled", SnapPoint(Point{0.124, -0.126}, 0), Point{0.124, -0.126})
}

func TestShiftOrigin(t *testing.T) {
	segments := []Segment{NewLine(Point{1, 1}, Point{3, 5})}
	ShiftOrigin(segments, OriginCenter)
	checkPoint(t, "center shift start", segments[0].a, Point{-1, -2})
	checkPoint(t, "center shift end", segments[0].b, Point{1, 2})

	segments = []Segment{NewLine(Point{1, 1}, Point{3, 5})}
	ShiftOrigin(segments, OriginBottomLeft)
	checkPoint(t, "bottom-left shift start", segments[0].a, Point{0, 0})

	segments = []Segment{NewLine(Point{1, 1}, Point{3, 5})}
	ShiftOrigin(segments, OriginTopRight)
	checkPoint(t, "top-right shift end", segments[0].b, Point{0, 0})
}
