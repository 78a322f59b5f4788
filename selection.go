package pinwheel

import "math"

// DefaultDeadzone is the minimum analog-stick magnitude, on a [-1, 1] axis
// range, before the stick registers as directional input.
const DefaultDeadzone = 0.3

// SliceAtPoint resolves a pointer position to a slice index, or NoSelection
// when the point lies strictly inside centerRadius or strictly beyond
// outerRadius. Points exactly on either boundary select normally.
func SliceAtPoint(point, center Vec2, centerRadius, outerRadius float64, slices []Slice) int {
	d := Distance(center, point)
	if d < centerRadius || d > outerRadius {
		return NoSelection
	}
	return SliceAtAngle(AngleFromCenter(point, center), slices)
}

// SliceAtAngle resolves an angle (any finite value; normalized internally)
// to a slice index. Returns NoSelection only when no slice matches, which
// cannot happen for a valid non-empty partition.
func SliceAtAngle(angle float64, slices []Slice) int {
	a := NormalizeAngle(angle)
	for i := range slices {
		if slices[i].containsAngle(a) {
			return slices[i].Index
		}
	}
	return NoSelection
}

// SliceFromStick resolves an analog stick displacement to a slice index.
// The stick uses the hardware convention where positive Y points up; the
// sign is inverted here so that pushing up selects the top slice. Within
// the deadzone the result is NoSelection and the caller keeps whatever
// selection it already had — this function is stateless.
func SliceFromStick(x, y, deadzone float64, slices []Slice) int {
	if math.Sqrt(x*x+y*y) < deadzone {
		return NoSelection
	}
	return SliceAtAngle(math.Atan2(-y, x), slices)
}

// NextSliceClockwise returns the slice one step clockwise from current.
// With no current selection (NoSelection) it seeds at index 0, so the first
// discrete step always lands on a slice. Returns NoSelection for an empty
// layout.
func NextSliceClockwise(current, itemCount int) int {
	if itemCount <= 0 {
		return NoSelection
	}
	if current == NoSelection {
		return 0
	}
	return (current + 1) % itemCount
}

// NextSliceCounterClockwise returns the slice one step counter-clockwise
// from current. With no current selection it seeds at the last index; the
// asymmetry with NextSliceClockwise is intentional so either direction's
// first press lands on the nearest slice in that direction.
func NextSliceCounterClockwise(current, itemCount int) int {
	if itemCount <= 0 {
		return NoSelection
	}
	if current == NoSelection {
		return itemCount - 1
	}
	return (current - 1 + itemCount) % itemCount
}
