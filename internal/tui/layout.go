package tui

import (
	"math"

	"github.com/csheth/snapsheet/internal/sheet"
)

const (
	helpBarHeight      = 1
	sheetHandleHeight  = 1
	defaultWindowWidth = 80
	defaultWindowRows  = 24
)

// pageLayout turns the terminal size into sheet metrics. The sheet lives in
// every row except the help bar.
type pageLayout struct {
	windowWidth  int
	windowHeight int
	topInset     float64
	bottomInset  float64
}

func newPageLayout(topInset, bottomInset float64) pageLayout {
	return pageLayout{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowRows,
		topInset:     topInset,
		bottomInset:  bottomInset,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
}

func (l pageLayout) screenRows() int {
	rows := l.windowHeight - helpBarHeight
	if rows < 0 {
		return 0
	}
	return rows
}

// Metrics implements sheet.MetricsProvider.
func (l pageLayout) Metrics() sheet.Metrics {
	return sheet.Metrics{
		ScreenHeight: float64(l.screenRows()),
		TopInset:     l.topInset,
		BottomInset:  l.bottomInset,
	}
}

// sheetRow is the first terminal row covered by the sheet at offset.
func (l pageLayout) sheetRow(offset float64) int {
	rows := l.screenRows()
	row := int(math.Round(offset))
	if row < 0 {
		return 0
	}
	if row > rows {
		return rows
	}
	return row
}

func (l pageLayout) bodyWidth() int {
	width := l.windowWidth - sheetHorizontalPadding
	if width < 1 {
		return 1
	}
	return width
}
