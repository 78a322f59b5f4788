package pinwheel

import "math"

// --- Constants ---

const (
	fullCircle = 2 * math.Pi

	// topAngle is where slice 0 begins: straight up on screen.
	topAngle = -math.Pi / 2

	// anchorRadiusFactor places each slice's anchor point partway along its
	// center angle, used for icon placement and presentation, never for
	// boundary testing.
	anchorRadiusFactor = 0.65
)

// Slice is one angular sector of the radial layout, corresponding to one
// selectable item. Angles are in radians, normalized to [0, 2π), measured in
// screen space (Y down, so increasing angle proceeds clockwise on screen).
// Slices partition the circle into contiguous half-open intervals
// [StartAngle, EndAngle); the last slice wraps across 0 back to the first.
//
// A Slice is immutable once built. Layout changes replace the whole array.
type Slice struct {
	Index       int
	StartAngle  float64
	EndAngle    float64
	CenterAngle float64
	AnchorPoint Vec2
}

// LayoutSlices divides the circle into itemCount equal angular spans starting
// at the top (-π/2) and proceeding clockwise, centered on center. Returns nil
// for itemCount <= 0.
func LayoutSlices(itemCount int, radius float64, center Vec2) []Slice {
	if itemCount <= 0 {
		return nil
	}

	span := fullCircle / float64(itemCount)
	slices := make([]Slice, itemCount)
	for i := range slices {
		start := topAngle + float64(i)*span
		mid := start + span/2

		// Screen-space Y grows downward, so sin(mid) already carries the
		// inverted sign relative to mathematical Y-up.
		anchor := Vec2{
			X: center.X + anchorRadiusFactor*radius*math.Cos(mid),
			Y: center.Y + anchorRadiusFactor*radius*math.Sin(mid),
		}

		slices[i] = Slice{
			Index: i,
			// Each end is computed with the same expression as the next
			// start, so adjacent boundaries are bit-identical and the
			// half-open scan can never fall into a rounding gap.
			StartAngle:  NormalizeAngle(start),
			EndAngle:    NormalizeAngle(topAngle + float64(i+1)*span),
			CenterAngle: NormalizeAngle(mid),
			AnchorPoint: anchor,
		}
	}
	// Close the circle exactly: the last end wraps to the first start.
	slices[itemCount-1].EndAngle = slices[0].StartAngle
	return slices
}

// AngleFromCenter returns the screen-space angle of p as seen from center,
// in the unnormalized atan2 range (-π, π].
func AngleFromCenter(p, center Vec2) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}

// NormalizeAngle maps any finite angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, fullCircle)
	if a < 0 {
		a += fullCircle
	}
	if a >= fullCircle {
		// Adding 2π to a tiny negative remainder can round to exactly 2π.
		a -= fullCircle
	}
	return a
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// containsAngle reports whether a normalized angle falls in the slice's
// half-open interval [StartAngle, EndAngle), accounting for intervals that
// wrap across 0. A slice whose end equals its start spans the full circle
// (single-item layout) and contains every angle.
func (s Slice) containsAngle(angle float64) bool {
	if s.EndAngle == s.StartAngle {
		return true
	}
	if s.EndAngle < s.StartAngle {
		return angle >= s.StartAngle || angle < s.EndAngle
	}
	return angle >= s.StartAngle && angle < s.EndAngle
}
