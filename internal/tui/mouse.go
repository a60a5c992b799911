package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.beginDrag(msg)
			return nil
		}
		if tea.MouseEvent(msg).IsWheel() && !m.controller.Dragging() && m.overSheet(msg.Y) {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
	case tea.MouseActionMotion:
		if m.controller.Dragging() {
			m.controller.OnDragChange(m.translation(msg.Y))
		}
	case tea.MouseActionRelease:
		if m.controller.Dragging() {
			return m.endDrag(msg)
		}
	}
	return nil
}

func (m *model) beginDrag(msg tea.MouseMsg) {
	if !m.controller.Draggable() || !m.overSheet(msg.Y) {
		return
	}
	shown := m.displayOffset()
	m.stopAnimation()
	m.controller.OnDragStart()
	// Grabbing a sheet that is still moving continues from where it is drawn.
	drift := shown - m.controller.RenderOffset(m.metrics.Metrics())
	m.pressY = float64(msg.Y) - drift
	m.controller.OnDragChange(drift)
}

func (m *model) endDrag(msg tea.MouseMsg) tea.Cmd {
	metrics := m.metrics.Metrics()
	released := m.displayOffset()
	m.controller.OnDragEnd(m.translation(msg.Y), metrics)
	if snap, ok := m.controller.LastSnap(); ok {
		log.Printf("[sheet] snap %s -> %s (translation=%.1f released=%.1f end=%.1f)",
			snap.From, snap.To, snap.Translation, snap.Released, snap.EndPos)
	}
	m.anim.Jump(released)
	return m.settle()
}

func (m *model) translation(y int) float64 {
	return float64(y) - m.pressY
}

func (m *model) overSheet(y int) bool {
	top := m.layout.sheetRow(m.displayOffset())
	return y >= top && y < m.layout.screenRows()
}
