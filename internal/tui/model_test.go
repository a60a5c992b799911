package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/snapsheet/internal/sheet"
)

// A 33 row window leaves 32 sheet rows: hidden 32, quarter 24, half 16,
// full 1, with releases past row 31 hiding the sheet.
const (
	testWidth  = 80
	testHeight = 33
)

func newTestModel(t *testing.T, mutate ...func(*Config)) *model {
	t.Helper()
	cfg := Config{
		InitialMode: sheet.ModeHalf,
		Draggable:   true,
		TopInset:    1,
		BottomInset: 1,
		Title:       "fixture",
		Body:        strings.Repeat("Lorem ipsum dolor sit amet. ", 60),
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	teaModel, ok := New(cfg).(*model)
	require.True(t, ok, "expected *model, got %T", teaModel)
	teaModel.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return teaModel
}

func press(m *model, y int) tea.Cmd {
	_, cmd := m.Update(tea.MouseMsg{X: 10, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return cmd
}

func move(m *model, y int) tea.Cmd {
	_, cmd := m.Update(tea.MouseMsg{X: 10, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	return cmd
}

func release(m *model, y int) tea.Cmd {
	_, cmd := m.Update(tea.MouseMsg{X: 10, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	return cmd
}

func typeKey(m *model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runFrames feeds animation frames until the model stops asking for more.
func runFrames(t *testing.T, m *model) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		if !m.animating {
			return
		}
		m.Update(frameMsg{id: m.frameID})
	}
	t.Fatalf("animation did not settle (pos=%v target=%v)", m.anim.Position(), m.anim.Target())
}

func TestWindowSizeDrivesMetrics(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, sheet.Metrics{ScreenHeight: 32, TopInset: 1, BottomInset: 1}, m.metrics.Metrics())
	assert.Equal(t, 16.0, m.displayOffset())

	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: 41})
	assert.Equal(t, 20.0, m.displayOffset(), "resize repositions without animating")
	assert.False(t, m.animating)
}

func TestDragUpSnapsToFull(t *testing.T) {
	m := newTestModel(t)

	press(m, 16)
	require.True(t, m.controller.Dragging())
	move(m, 10)
	assert.Equal(t, 10.0, m.displayOffset())
	move(m, 5)
	cmd := release(m, 5)

	// released at 5, amplified to 6, above half(16)
	assert.Equal(t, sheet.ModeFull, m.binding.Mode())
	assert.False(t, m.controller.Dragging())
	require.NotNil(t, cmd, "release should start the settle animation")
	assert.Equal(t, 5.0, m.anim.Position())
	assert.Equal(t, 1.0, m.anim.Target())
	assert.Equal(t, []string{"half -> full"}, m.history)

	runFrames(t, m)
	assert.Equal(t, 1.0, m.displayOffset())
}

func TestDragDownPastBottomHides(t *testing.T) {
	m := newTestModel(t, func(c *Config) { c.InitialMode = sheet.ModeQuarter })

	press(m, 25)
	move(m, 31)
	release(m, 31)

	// 24 + 6 = 30, amplified to 36 >= none(31)
	assert.Equal(t, sheet.ModeHidden, m.binding.Mode())
	runFrames(t, m)
	assert.Equal(t, 32.0, m.displayOffset())
}

func TestSmallDragFallsBackToCurrentDetent(t *testing.T) {
	m := newTestModel(t)

	press(m, 20)
	move(m, 21)
	release(m, 21)

	// 17 * 1.2 = 20.4 stays within [16, 24)
	assert.Equal(t, sheet.ModeHalf, m.binding.Mode())
	assert.Empty(t, m.history)
	snap, ok := m.controller.LastSnap()
	require.True(t, ok)
	assert.InDelta(t, 20.4, snap.EndPos, 1e-9)
}

func TestPressOutsideSheetIsIgnored(t *testing.T) {
	m := newTestModel(t)

	press(m, 3)
	assert.False(t, m.controller.Dragging())
	move(m, 1)
	release(m, 1)
	assert.Equal(t, sheet.ModeHalf, m.binding.Mode())

	// The help bar row is not part of the sheet either.
	press(m, testHeight-1)
	assert.False(t, m.controller.Dragging())
}

func TestNonDraggableSheetOnlyFollowsHost(t *testing.T) {
	m := newTestModel(t, func(c *Config) { c.Draggable = false })

	press(m, 20)
	assert.False(t, m.controller.Dragging())
	release(m, 2)
	assert.Equal(t, sheet.ModeHalf, m.binding.Mode())

	cmd := typeKey(m, runes("4"))
	require.NotNil(t, cmd)
	assert.Equal(t, sheet.ModeFull, m.binding.Mode())
	runFrames(t, m)
	assert.Equal(t, 1.0, m.displayOffset())
}

func TestKeysStepDetents(t *testing.T) {
	m := newTestModel(t)

	typeKey(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, sheet.ModeFull, m.binding.Mode())
	typeKey(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, sheet.ModeFull, m.binding.Mode())
	typeKey(m, runes("j"))
	typeKey(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, sheet.ModeQuarter, m.binding.Mode())
	typeKey(m, runes("1"))
	assert.Equal(t, sheet.ModeHidden, m.binding.Mode())
	typeKey(m, runes("2"))
	typeKey(m, runes("3"))
	assert.Equal(t, sheet.ModeHalf, m.binding.Mode())

	assert.Equal(t, []string{
		"half -> full",
		"full -> half",
		"half -> quarter",
		"quarter -> hidden",
		"hidden -> quarter",
		"quarter -> half",
	}, m.history)
}

func TestHistoryIsBounded(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 10; i++ {
		typeKey(m, runes("1"))
		typeKey(m, runes("4"))
	}
	assert.Len(t, m.history, historyLimit)
	assert.Equal(t, "hidden -> full", m.history[len(m.history)-1])
}

func TestHostWriteDuringDragWaitsForRelease(t *testing.T) {
	m := newTestModel(t)

	press(m, 16)
	move(m, 18)
	cmd := typeKey(m, runes("4"))
	assert.Nil(t, cmd)
	assert.Equal(t, sheet.ModeFull, m.binding.Mode())
	assert.Equal(t, 18.0, m.displayOffset(), "the live session stays anchored at half")

	release(m, 18)
	// (16 + 2) * 1.2 = 21.6 -> half
	assert.Equal(t, sheet.ModeHalf, m.binding.Mode())
}

func TestToggleDragMidSessionSettlesBack(t *testing.T) {
	m := newTestModel(t)

	press(m, 16)
	move(m, 4)
	cmd := typeKey(m, runes("d"))

	assert.False(t, m.controller.Draggable())
	assert.False(t, m.controller.Dragging())
	require.NotNil(t, cmd)
	release(m, 4)
	assert.Equal(t, sheet.ModeHalf, m.binding.Mode())
	runFrames(t, m)
	assert.Equal(t, 16.0, m.displayOffset())

	typeKey(m, runes("d"))
	assert.True(t, m.controller.Draggable())
}

func TestGrabbingMovingSheetIsContinuous(t *testing.T) {
	m := newTestModel(t)
	typeKey(m, runes("4"))
	for i := 0; i < 4; i++ {
		m.Update(frameMsg{id: m.frameID})
	}
	require.True(t, m.animating)
	shown := m.displayOffset()
	require.Less(t, shown, 16.0)
	require.Greater(t, shown, 1.0)

	staleID := m.frameID
	press(m, m.layout.sheetRow(shown))
	require.True(t, m.controller.Dragging())
	assert.InDelta(t, shown, m.displayOffset(), 1e-9)
	assert.False(t, m.animating)

	_, cmd := m.Update(frameMsg{id: staleID})
	assert.Nil(t, cmd, "frames from the interrupted animation are dropped")
}

func TestStaleFramesAreIgnored(t *testing.T) {
	m := newTestModel(t)
	typeKey(m, runes("4"))
	require.True(t, m.animating)
	before := m.anim.Position()

	_, cmd := m.Update(frameMsg{id: m.frameID - 1})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.anim.Position())
}

func TestInvalidMetricsAreReported(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: 1})

	assert.False(t, m.metrics.Metrics().Valid())
	assert.NotEmpty(t, m.metricsWarn)
	assert.NotPanics(t, func() { _ = m.View() })

	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	assert.Empty(t, m.metricsWarn)
}

func TestWheelScrollsSheetBody(t *testing.T) {
	m := newTestModel(t, func(c *Config) { c.InitialMode = sheet.ModeFull })
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	_ = m.View()
	require.Equal(t, 0, m.viewport.YOffset)

	m.Update(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})

	assert.Greater(t, m.viewport.YOffset, 0)
	assert.False(t, m.controller.Dragging())
}

func TestQuitUnsubscribes(t *testing.T) {
	binding := sheet.NewBinding(sheet.ModeHalf)
	m := newTestModel(t, func(c *Config) { c.Binding = binding })

	cmd := typeKey(m, runes("q"))
	require.NotNil(t, cmd)
	binding.SetMode(sheet.ModeFull)
	assert.Empty(t, m.history)
}
