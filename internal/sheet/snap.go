package sheet

// DefaultOvershoot amplifies the released offset so a gesture commits in the
// direction it was heading instead of settling back. Any value above 1 works.
const DefaultOvershoot = 1.2

// Snap records one release decision.
type Snap struct {
	From        Mode
	To          Mode
	Translation float64
	Released    float64
	EndPos      float64
}

// Changed reports whether the release moved the sheet to another detent.
func (s Snap) Changed() bool {
	return s.From != s.To
}

// Resolve runs the snap algorithm for a sheet resting at from that was
// released translation units away from it. It never fails: metrics with a
// non-positive screen height always resolve to ModeHidden.
func Resolve(from Mode, translation float64, metrics Metrics, overshoot float64) Snap {
	if overshoot <= 0 {
		overshoot = DefaultOvershoot
	}
	released := TargetOffset(from, metrics) + translation
	snap := Snap{
		From:        from,
		Translation: translation,
		Released:    released,
		EndPos:      released * overshoot,
	}
	if metrics.ScreenHeight <= 0 {
		snap.To = ModeHidden
		return snap
	}
	snap.To = BreakpointsFor(metrics).Bucket(snap.EndPos)
	return snap
}
