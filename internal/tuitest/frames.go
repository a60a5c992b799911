package tuitest

import (
	"regexp"
	"strings"
)

// Frame is one screen repaint with and without control sequences.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

var (
	// Full clears (ESC [2J) and alternate-screen switches start a new frame.
	frameBoundary = regexp.MustCompile(`\x1b\[2J|\x1b\[\?1049[hl]`)
	csiPattern    = regexp.MustCompile(`\x1b\[[0-9;?<>]*[A-Za-z~]`)
	oscPattern    = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)
)

func parseFrames(raw []byte) []Frame {
	cleaned := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, segment := range frameBoundary.Split(cleaned, -1) {
		plain := normalizeLines(stripANSI(segment))
		if strings.TrimSpace(plain) == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), ANSI: segment, Plain: plain})
	}
	return frames
}

// FinalFrame returns the last captured frame. The second return value is false
// when no frames were recorded.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// Contains reports whether any frame's plain text contains s.
func (r *Recording) Contains(s string) bool {
	if r == nil {
		return false
	}
	for _, frame := range r.Frames {
		if strings.Contains(frame.Plain, s) {
			return true
		}
	}
	return strings.Contains(r.Plain(), s)
}

func stripANSI(s string) string {
	s = oscPattern.ReplaceAllString(s, "")
	s = csiPattern.ReplaceAllString(s, "")
	return strings.Map(func(r rune) rune {
		if r == '\x0e' || r == '\x0f' || r == '\x00' {
			return -1
		}
		return r
	}, s)
}

func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
