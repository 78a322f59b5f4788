package pinwheel

// HitTest classifies point against the menu geometry. Points beyond radius
// are Outside (strictly greater: a point at exactly radius still hits a
// slice). Points strictly inside centerRadius are InCenter. Everything else
// resolves to the slice whose half-open angular interval contains the
// point's normalized angle.
//
// A non-empty valid partition always matches; the Outside fallback after a
// full scan is defensive and signals a geometry bug upstream.
func HitTest(point, center Vec2, radius, centerRadius float64, slices []Slice) HitResult {
	d := Distance(center, point)
	if d > radius {
		return HitResult{Kind: HitOutside, Index: NoSelection}
	}
	if d < centerRadius {
		return HitResult{Kind: HitCenter, Index: NoSelection}
	}

	angle := NormalizeAngle(AngleFromCenter(point, center))
	for i := range slices {
		if slices[i].containsAngle(angle) {
			return HitResult{Kind: HitSlice, Index: slices[i].Index}
		}
	}
	return HitResult{Kind: HitOutside, Index: NoSelection}
}

// IsInsideMenu reports whether point lies within the menu's outer radius.
// The boundary is inclusive here, while HitTest excludes exactly radius;
// callers rely on that asymmetry for boundary parity, so both tests keep
// their own comparison.
func IsInsideMenu(point, center Vec2, radius float64) bool {
	return Distance(center, point) <= radius
}
