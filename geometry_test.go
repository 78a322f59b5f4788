package pinwheel

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// --- LayoutSlices tests ---

func TestLayoutSlicesCount(t *testing.T) {
	center := Vec2{X: 200, Y: 200}

	tests := []struct {
		name      string
		itemCount int
		want      int
	}{
		{"empty", 0, 0},
		{"negative", -3, 0},
		{"single", 1, 1},
		{"four", 4, 4},
		{"eight", 8, 8},
		{"thirteen", 13, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutSlices(tt.itemCount, 100, center)
			if len(got) != tt.want {
				t.Errorf("LayoutSlices(%d) returned %d slices, want %d", tt.itemCount, len(got), tt.want)
			}
		})
	}
}

func TestLayoutSlicesFourItems(t *testing.T) {
	// Four slices of exactly π/2 each, the first starting straight up.
	slices := LayoutSlices(4, 100, Vec2{X: 200, Y: 200})
	if len(slices) != 4 {
		t.Fatalf("got %d slices, want 4", len(slices))
	}

	if !almostEqual(slices[0].StartAngle, 3*math.Pi/2) {
		t.Errorf("first slice starts at %v, want 3π/2 (normalized -π/2)", slices[0].StartAngle)
	}

	span := math.Pi / 2
	for i, s := range slices {
		if s.Index != i {
			t.Errorf("slice %d has Index %d", i, s.Index)
		}
		next := slices[(i+1)%4]
		if !almostEqual(s.EndAngle, next.StartAngle) {
			t.Errorf("slice %d end %v does not meet slice %d start %v", i, s.EndAngle, (i+1)%4, next.StartAngle)
		}
		got := NormalizeAngle(next.StartAngle - s.StartAngle)
		if !almostEqual(got, span) {
			t.Errorf("slice %d spans %v, want %v", i, got, span)
		}
	}
}

func TestLayoutSlicesPartition(t *testing.T) {
	// For any item count, spans are contiguous, non-overlapping, and sum to 2π.
	for _, n := range []int{1, 2, 3, 4, 5, 7, 12} {
		slices := LayoutSlices(n, 100, Vec2{})

		sum := 0.0
		for i := range slices {
			next := slices[(i+1)%n]
			span := NormalizeAngle(next.StartAngle - slices[i].StartAngle)
			if n == 1 {
				span = fullCircle
			}
			sum += span
		}
		if !almostEqual(sum, fullCircle) {
			t.Errorf("itemCount=%d: spans sum to %v, want 2π", n, sum)
		}

		// Every probe angle must land in exactly one slice.
		for k := 0; k < 360; k++ {
			angle := float64(k) * math.Pi / 180
			matches := 0
			for _, s := range slices {
				if s.containsAngle(NormalizeAngle(angle)) {
					matches++
				}
			}
			if matches != 1 {
				t.Fatalf("itemCount=%d: angle %v matched %d slices, want exactly 1", n, angle, matches)
			}
		}
	}
}

func TestLayoutSlicesAnchors(t *testing.T) {
	center := Vec2{X: 200, Y: 200}
	radius := 100.0
	slices := LayoutSlices(4, radius, center)

	// Slice 0 spans top to right; its center angle is -π/4, which on screen
	// (Y down) points up and to the right.
	a := slices[0].AnchorPoint
	wantX := center.X + anchorRadiusFactor*radius*math.Cos(-math.Pi/4)
	wantY := center.Y + anchorRadiusFactor*radius*math.Sin(-math.Pi/4)
	if !almostEqual(a.X, wantX) || !almostEqual(a.Y, wantY) {
		t.Errorf("slice 0 anchor = (%v, %v), want (%v, %v)", a.X, a.Y, wantX, wantY)
	}
	if a.Y >= center.Y {
		t.Error("slice 0 anchor should sit above the center on screen")
	}

	for i, s := range slices {
		d := Distance(center, s.AnchorPoint)
		if !almostEqual(d, anchorRadiusFactor*radius) {
			t.Errorf("slice %d anchor distance = %v, want %v", i, d, anchorRadiusFactor*radius)
		}
	}
}

// --- Angle tests ---

func TestNormalizeAngleRange(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"zero", 0, 0},
		{"already normalized", 1.5, 1.5},
		{"negative quarter", -math.Pi / 2, 3 * math.Pi / 2},
		{"full circle", 2 * math.Pi, 0},
		{"past full circle", 5 * math.Pi / 2, math.Pi / 2},
		{"negative full circle", -2 * math.Pi, 0},
		{"three turns plus", 6*math.Pi + 1, 1},
		{"many negative turns", -7*math.Pi - 0.25, math.Pi - 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.angle)
			if !almostEqual(got, tt.want) {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestNormalizeAngleIdempotent(t *testing.T) {
	for _, angle := range []float64{-1e6, -123.456, -math.Pi, -1e-18, 0, 1e-18, 1, math.Pi, 6.28, 1e6} {
		once := NormalizeAngle(angle)
		twice := NormalizeAngle(once)
		if once != twice {
			t.Errorf("NormalizeAngle not idempotent for %v: %v then %v", angle, once, twice)
		}
		if once < 0 || once >= fullCircle {
			t.Errorf("NormalizeAngle(%v) = %v, outside [0, 2π)", angle, once)
		}
	}
}

func TestAngleFromCenter(t *testing.T) {
	center := Vec2{X: 100, Y: 100}

	tests := []struct {
		name string
		p    Vec2
		want float64
	}{
		{"east", Vec2{X: 150, Y: 100}, 0},
		{"south (screen down)", Vec2{X: 100, Y: 150}, math.Pi / 2},
		{"west", Vec2{X: 50, Y: 100}, math.Pi},
		{"north (screen up)", Vec2{X: 100, Y: 50}, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleFromCenter(tt.p, center)
			if !almostEqual(got, tt.want) {
				t.Errorf("AngleFromCenter(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"same point", Vec2{X: 5, Y: 5}, Vec2{X: 5, Y: 5}, 0},
		{"horizontal", Vec2{}, Vec2{X: 3}, 3},
		{"pythagorean", Vec2{}, Vec2{X: 3, Y: 4}, 5},
		{"negative coords", Vec2{X: -1, Y: -1}, Vec2{X: 2, Y: 3}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSliceContainsAngleWrap(t *testing.T) {
	// A slice that wraps across 0: [3π/2, π/2).
	s := Slice{StartAngle: 3 * math.Pi / 2, EndAngle: math.Pi / 2}

	tests := []struct {
		name  string
		angle float64
		want  bool
	}{
		{"just past start", 3*math.Pi/2 + 0.01, true},
		{"at start", 3 * math.Pi / 2, true},
		{"across zero", 0.1, true},
		{"at zero", 0, true},
		{"just before end", math.Pi/2 - 0.01, true},
		{"at end (excluded)", math.Pi / 2, false},
		{"opposite side", math.Pi, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.containsAngle(tt.angle); got != tt.want {
				t.Errorf("containsAngle(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestSliceContainsAngleFullCircle(t *testing.T) {
	// A single-item layout produces start == end, spanning everything.
	slices := LayoutSlices(1, 100, Vec2{})
	for _, angle := range []float64{0, 1, math.Pi, 5, 3 * math.Pi / 2} {
		if !slices[0].containsAngle(angle) {
			t.Errorf("single slice should contain angle %v", angle)
		}
	}
}
