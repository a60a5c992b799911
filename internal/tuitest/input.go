package tuitest

import "fmt"

var (
	// KeyCtrlC requests the program to terminate.
	KeyCtrlC = []byte{3}

	// KeyUp and KeyDown are the cursor keys in normal mode.
	KeyUp   = []byte("\x1b[A")
	KeyDown = []byte("\x1b[B")
)

// SGR (mode 1006) button codes. Motion while a button is held sets bit 5.
const (
	sgrLeft       = 0
	sgrMotionFlag = 32
)

// MousePress encodes a left-button press at the zero-based cell x, y.
func MousePress(x, y int) []byte {
	return sgrMouse(sgrLeft, x, y, 'M')
}

// MouseDrag encodes pointer motion with the left button held.
func MouseDrag(x, y int) []byte {
	return sgrMouse(sgrLeft|sgrMotionFlag, x, y, 'M')
}

// MouseRelease encodes a left-button release.
func MouseRelease(x, y int) []byte {
	return sgrMouse(sgrLeft, x, y, 'm')
}

func sgrMouse(button, x, y int, final byte) []byte {
	return []byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", button, x+1, y+1, final))
}
