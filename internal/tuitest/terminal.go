package tuitest

import (
	"bytes"
	"io"
)

// terminalQueries lists the probes Bubble Tea and lipgloss send on start-up
// and the answer a plain dark xterm would give. Without replies the program
// waits for its query timeout before drawing.
var terminalQueries = []struct {
	query []byte
	reply []byte
}{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

// tailKeep bounds the scan buffer while still catching queries that are
// split across reads.
const tailKeep = 64

type terminalResponder struct {
	w   io.Writer
	buf []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, buf: make([]byte, 0, 128)}
}

func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for tr.answerNext() {
	}
	if len(tr.buf) > 4*tailKeep {
		tr.buf = tr.buf[len(tr.buf)-tailKeep:]
	}
}

// answerNext replies to the earliest pending query and drops the buffer up
// to it. It reports whether a query was found.
func (tr *terminalResponder) answerNext() bool {
	first, firstIdx := -1, -1
	for i, q := range terminalQueries {
		idx := bytes.Index(tr.buf, q.query)
		if idx >= 0 && (firstIdx < 0 || idx < firstIdx) {
			first, firstIdx = i, idx
		}
	}
	if first < 0 {
		return false
	}
	q := terminalQueries[first]
	tr.buf = tr.buf[firstIdx+len(q.query):]
	_, _ = tr.w.Write(q.reply)
	return true
}
