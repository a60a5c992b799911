package sheet

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is one of the resting detents of the sheet, ordered by increasing
// visible extent.
type Mode int

const (
	ModeHidden Mode = iota
	ModeQuarter
	ModeHalf
	ModeFull
)

// ErrUnknownMode is returned by ParseMode for names outside the detent set.
var ErrUnknownMode = errors.New("unknown sheet mode")

var modeNames = [...]string{
	ModeHidden:  "hidden",
	ModeQuarter: "quarter",
	ModeHalf:    "half",
	ModeFull:    "full",
}

// Modes lists every detent from least to most visible.
func Modes() []Mode {
	return []Mode{ModeHidden, ModeQuarter, ModeHalf, ModeFull}
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the four detents.
func (m Mode) Valid() bool {
	return m >= ModeHidden && m <= ModeFull
}

// Raise returns the next more visible detent, saturating at ModeFull.
func (m Mode) Raise() Mode {
	if m >= ModeFull {
		return ModeFull
	}
	if m < ModeHidden {
		return ModeHidden
	}
	return m + 1
}

// Lower returns the next less visible detent, saturating at ModeHidden.
func (m Mode) Lower() Mode {
	if m <= ModeHidden {
		return ModeHidden
	}
	if m > ModeFull {
		return ModeFull
	}
	return m - 1
}

// ParseMode converts a detent name such as "half" into a Mode.
func ParseMode(value string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	for idx, candidate := range modeNames {
		if candidate == name {
			return Mode(idx), nil
		}
	}
	return ModeHidden, fmt.Errorf("%w: %q", ErrUnknownMode, value)
}

// Metrics describes the viewport the sheet is laid out in. Offsets are
// expressed in the same unit as ScreenHeight.
type Metrics struct {
	ScreenHeight float64
	TopInset     float64
	BottomInset  float64
}

// Valid reports whether the detent offsets are strictly ordered for m.
// Invalid metrics are tolerated everywhere but always snap to hidden.
func (m Metrics) Valid() bool {
	if m.ScreenHeight <= 0 {
		return false
	}
	if m.TopInset < 0 || m.BottomInset < 0 {
		return false
	}
	return m.TopInset < m.ScreenHeight*0.5
}

// MetricsProvider supplies the current viewport metrics. Callers query it
// on every computation; results must not be cached across size changes.
type MetricsProvider interface {
	Metrics() Metrics
}

// MetricsFunc adapts a plain function to MetricsProvider.
type MetricsFunc func() Metrics

// Metrics implements MetricsProvider.
func (f MetricsFunc) Metrics() Metrics {
	return f()
}

// TargetOffset returns how far the sheet is pushed down from its fully open
// position when resting at mode.
func TargetOffset(mode Mode, metrics Metrics) float64 {
	switch mode {
	case ModeFull:
		return metrics.TopInset
	case ModeHalf:
		return metrics.ScreenHeight * 0.5
	case ModeQuarter:
		return metrics.ScreenHeight * 0.75
	default:
		return metrics.ScreenHeight
	}
}

// Breakpoints are the released-position thresholds separating detents.
type Breakpoints struct {
	Half    float64
	Quarter float64
	None    float64
}

// BreakpointsFor derives the thresholds from metrics.
func BreakpointsFor(metrics Metrics) Breakpoints {
	return Breakpoints{
		Half:    TargetOffset(ModeHalf, metrics),
		Quarter: TargetOffset(ModeQuarter, metrics),
		None:    metrics.ScreenHeight - metrics.BottomInset,
	}
}

// Bucket maps an amplified release position onto a detent. Lower bounds are
// inclusive, upper bounds exclusive.
func (b Breakpoints) Bucket(endPos float64) Mode {
	switch {
	case endPos < b.Half:
		return ModeFull
	case endPos < b.Quarter:
		return ModeHalf
	case endPos < b.None:
		return ModeQuarter
	default:
		return ModeHidden
	}
}
