package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/snapsheet/internal/motion"
	"github.com/csheth/snapsheet/internal/sheet"
)

const historyLimit = 6

// Config wires runtime options into the TUI program.
type Config struct {
	// Binding is the host-owned mode cell. When nil the model creates one
	// seeded with InitialMode.
	Binding     *sheet.Binding
	InitialMode sheet.Mode
	Draggable   bool
	Overshoot   float64
	TopInset    float64
	BottomInset float64
	Motion      motion.Config
	Title       string
	Body        string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	return newModel(config)
}

type model struct {
	config Config
	keys   keyMap
	help   help.Model

	layout     pageLayout
	metrics    sheet.MetricsProvider
	binding    *sheet.Binding
	controller *sheet.Controller
	anim       *motion.Animator
	viewport   viewport.Model

	// pressY is the pointer row a zero translation corresponds to. It is
	// fractional when a drag interrupts an animation.
	pressY    float64
	animating bool
	frameID   int

	history     []string
	metricsWarn string
	unsubscribe func()
}

type frameMsg struct {
	id int
}

func newModel(config Config) *model {
	binding := config.Binding
	if binding == nil {
		binding = sheet.NewBinding(config.InitialMode)
	}

	vp := viewport.New(defaultWindowWidth, 0)
	vp.MouseWheelEnabled = true
	vp.Style = sheetBodyStyle

	m := &model{
		config:  config,
		keys:    newKeyMap(),
		help:    help.New(),
		layout:  newPageLayout(config.TopInset, config.BottomInset),
		binding: binding,
		controller: sheet.NewController(binding, sheet.ControllerConfig{
			Draggable: config.Draggable,
			Overshoot: config.Overshoot,
		}),
		anim:     motion.New(config.Motion),
		viewport: vp,
	}
	m.metrics = sheet.MetricsFunc(func() sheet.Metrics {
		return m.layout.Metrics()
	})
	m.unsubscribe = binding.Subscribe(m.recordModeChange)
	m.anim.Jump(m.controller.RenderOffset(m.metrics.Metrics()))
	m.refreshContent()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case frameMsg:
		return m, m.handleFrame(msg)
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.checkMetrics()
		m.refreshContent()
		target := m.controller.RenderOffset(m.metrics.Metrics())
		if m.animating {
			m.anim.SetTarget(target)
		} else {
			m.anim.Jump(target)
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.unsubscribe != nil {
			m.unsubscribe()
			m.unsubscribe = nil
		}
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.ToggleDrag):
		wasDragging := m.controller.Dragging()
		shown := m.displayOffset()
		m.controller.SetDraggable(!m.controller.Draggable())
		log.Printf("[sheet] draggable=%t", m.controller.Draggable())
		if wasDragging {
			m.anim.Jump(shown)
			return m.settle()
		}
		return nil
	case key.Matches(msg, m.keys.Raise):
		return m.setMode(m.binding.Mode().Raise())
	case key.Matches(msg, m.keys.Lower):
		return m.setMode(m.binding.Mode().Lower())
	case key.Matches(msg, m.keys.Hidden):
		return m.setMode(sheet.ModeHidden)
	case key.Matches(msg, m.keys.Quarter):
		return m.setMode(sheet.ModeQuarter)
	case key.Matches(msg, m.keys.Half):
		return m.setMode(sheet.ModeHalf)
	case key.Matches(msg, m.keys.Full):
		return m.setMode(sheet.ModeFull)
	}
	return nil
}

// setMode writes the binding the way an external host would. A live drag
// keeps its own anchor, so the sheet only moves once the gesture ends.
func (m *model) setMode(mode sheet.Mode) tea.Cmd {
	m.binding.SetMode(mode)
	if m.controller.Dragging() {
		return nil
	}
	return m.settle()
}

// settle animates toward the offset the controller reports for the current
// state.
func (m *model) settle() tea.Cmd {
	return m.animateTo(m.controller.RenderOffset(m.metrics.Metrics()))
}

func (m *model) animateTo(target float64) tea.Cmd {
	m.anim.SetTarget(target)
	if m.animating || m.anim.Settled() {
		return nil
	}
	m.animating = true
	m.frameID++
	return m.nextFrame()
}

func (m *model) stopAnimation() {
	m.animating = false
	m.frameID++
}

func (m *model) nextFrame() tea.Cmd {
	id := m.frameID
	return tea.Tick(m.anim.Interval(), func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

func (m *model) handleFrame(msg frameMsg) tea.Cmd {
	if !m.animating || msg.id != m.frameID {
		return nil
	}
	m.anim.Step()
	if m.anim.Settled() {
		m.animating = false
		return nil
	}
	return m.nextFrame()
}

// displayOffset is the offset currently on screen.
func (m *model) displayOffset() float64 {
	if m.controller.Dragging() {
		return m.controller.RenderOffset(m.metrics.Metrics())
	}
	return m.anim.Position()
}

func (m *model) recordModeChange(from, to sheet.Mode) {
	m.history = append(m.history, fmt.Sprintf("%s -> %s", from, to))
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

func (m *model) checkMetrics() {
	metrics := m.metrics.Metrics()
	if metrics.Valid() {
		m.metricsWarn = ""
		return
	}
	m.metricsWarn = fmt.Sprintf("Viewport too small for detents (rows=%.0f, top inset=%.0f); releases will hide the sheet.",
		metrics.ScreenHeight, metrics.TopInset)
	log.Printf("[sheet] invalid metrics screen=%.1f top=%.1f bottom=%.1f",
		metrics.ScreenHeight, metrics.TopInset, metrics.BottomInset)
}

func (m *model) refreshContent() {
	m.viewport.Width = m.layout.windowWidth
	m.viewport.SetContent(wordwrap.String(m.config.Body, m.layout.bodyWidth()))
}
