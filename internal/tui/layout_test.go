package tui

import "testing"

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name       string
		width      int
		height     int
		screenRows int
		bodyWidth  int
	}{
		{name: "standard", width: 80, height: 24, screenRows: 23, bodyWidth: 78},
		{name: "tall", width: 200, height: 61, screenRows: 60, bodyWidth: 198},
		{name: "collapsed", width: 1, height: 0, screenRows: 0, bodyWidth: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout(1, 1)
			layout.Update(tc.width, tc.height)
			if got := layout.screenRows(); got != tc.screenRows {
				t.Fatalf("screen rows mismatch: got %d want %d", got, tc.screenRows)
			}
			if got := layout.Metrics().ScreenHeight; got != float64(tc.screenRows) {
				t.Fatalf("metrics height mismatch: got %v want %d", got, tc.screenRows)
			}
			if got := layout.bodyWidth(); got != tc.bodyWidth {
				t.Fatalf("body width mismatch: got %d want %d", got, tc.bodyWidth)
			}
		})
	}
}

func TestPageLayoutSheetRow(t *testing.T) {
	layout := newPageLayout(1, 1)
	layout.Update(80, 33)
	cases := map[float64]int{
		-3:   0,
		0:    0,
		1:    1,
		15.4: 15,
		15.5: 16,
		32:   32,
		40:   32,
	}
	for offset, want := range cases {
		if got := layout.sheetRow(offset); got != want {
			t.Fatalf("sheetRow(%v) = %d, want %d", offset, got, want)
		}
	}
}
