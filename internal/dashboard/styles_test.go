package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		usage int
		want  Level
	}{
		{0, LevelNormal},
		{59, LevelNormal},
		{60, LevelNormal}, // exactly 60 is NOT medium
		{61, LevelMedium},
		{79, LevelMedium},
		{80, LevelMedium}, // exactly 80 is NOT high
		{81, LevelHigh},
		{100, LevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFor(tt.usage), "usage %d", tt.usage)
		})
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "normal", LevelNormal.String())
	assert.Equal(t, "medium", LevelMedium.String())
	assert.Equal(t, "high", LevelHigh.String())
}

func TestLevel_Color(t *testing.T) {
	assert.Equal(t, ColorNormal, LevelNormal.Color())
	assert.Equal(t, ColorMedium, LevelMedium.Color())
	assert.Equal(t, ColorHigh, LevelHigh.Color())
}

func TestFillBar(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		usage      int
		wantFilled int
	}{
		{"empty", 10, 0, 0},
		{"full", 10, 100, 10},
		{"half", 10, 50, 5},
		{"over range clamps", 10, 150, 10},
		{"under range clamps", 10, -5, 0},
		{"rounds down", 10, 59, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := FillBar(tt.width, tt.usage)
			assert.Equal(t, tt.wantFilled, strings.Count(bar, "▰"))
			assert.Equal(t, tt.width-tt.wantFilled, strings.Count(bar, "▱"))
		})
	}
}

func TestFillBar_MinimumWidth(t *testing.T) {
	bar := FillBar(0, 50)
	assert.Equal(t, 1, strings.Count(bar, "▰")+strings.Count(bar, "▱"))
}

func TestStatusIndicator(t *testing.T) {
	assert.Contains(t, StatusIndicator(42), StatusGlyph)
}

func TestPages(t *testing.T) {
	assert.True(t, ValidPage("overview"))
	assert.True(t, ValidPage("actions"))
	assert.False(t, ValidPage("bogus"))
	assert.False(t, ValidPage(""))

	assert.Equal(t, "Overview", PageOverview.Title())
	assert.Equal(t, 0, pageIndex(PageOverview))
	assert.Equal(t, len(Pages)-1, pageIndex(PageSettings))
	assert.Equal(t, -1, pageIndex(Page("bogus")))
}
