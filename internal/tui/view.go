package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	rows := m.layout.screenRows()
	width := m.layout.windowWidth

	lines := fitLines(m.hostLines(), rows)
	top := m.layout.sheetRow(m.displayOffset())
	if top < rows {
		copy(lines[top:], m.sheetLines(rows-top, width))
	}
	for idx, line := range lines {
		lines[idx] = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	lines = append(lines, m.help.ShortHelpView(m.keys.ShortHelp()))
	return strings.Join(lines, "\n")
}

// hostLines renders the view the sheet is presented over.
func (m *model) hostLines() []string {
	dragState := "drag off"
	if m.controller.Draggable() {
		dragState = "drag on"
	}
	if m.controller.Dragging() {
		dragState = fmt.Sprintf("dragging %+.0f", m.controller.Translation())
	}
	lines := []string{
		titleStyle.Render(m.config.Title),
		statusBarStyle.Render(fmt.Sprintf("%s  offset %.1f  %s",
			modeBadgeStyle.Render(m.binding.Mode().String()), m.displayOffset(), dragState)),
	}
	if m.metricsWarn != "" {
		lines = append(lines, errorStyle.Render(m.metricsWarn))
	}
	if snap, ok := m.controller.LastSnap(); ok {
		lines = append(lines, helperStyle.Render(fmt.Sprintf(
			"last release: %s moved %+.1f, released at %.1f, amplified to %.1f -> %s",
			snap.From, snap.Translation, snap.Released, snap.EndPos, snap.To)))
	}
	lines = append(lines, "", sectionHeaderStyle.Render("Mode changes"))
	if len(m.history) == 0 {
		lines = append(lines, helperStyle.Render("  none yet"))
	}
	for _, entry := range m.history {
		lines = append(lines, "  "+entry)
	}
	if m.help.ShowAll {
		lines = append(lines, "", sectionHeaderStyle.Render("Keys"))
		lines = append(lines, strings.Split(m.help.FullHelpView(m.keys.FullHelp()), "\n")...)
	}
	return lines
}

// sheetLines renders exactly height rows of sheet: the handle followed by as
// much of the body as fits.
func (m *model) sheetLines(height, width int) []string {
	handle := fmt.Sprintf("━━━━  %s · %s  ━━━━", m.config.Title, m.binding.Mode())
	lines := []string{
		sheetHandleStyle.Width(width).MaxHeight(sheetHandleHeight).Align(lipgloss.Center).Render(handle),
	}
	bodyHeight := height - sheetHandleHeight
	if bodyHeight > 0 {
		m.viewport.Width = width
		m.viewport.Height = bodyHeight
		lines = append(lines, strings.Split(m.viewport.View(), "\n")...)
	}
	return fitLines(lines, height)
}

func fitLines(lines []string, n int) []string {
	out := make([]string, n)
	copy(out, lines)
	return out
}
