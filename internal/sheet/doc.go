// Package sheet models a bottom sheet that rests at one of four detents and
// the drag gesture that moves it between them.
//
// TargetOffset maps a detent to a vertical offset for the current viewport.
// Controller tracks a live drag, reports the offset to render while the
// pointer moves and commits a new detent to the host's ModeBinding on
// release. Nothing here blocks or allocates per move event, so the
// controller can be driven straight from a frame or input loop.
package sheet
