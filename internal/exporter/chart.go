package exporter

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"skewgram/internal/types"
)

// Chart geometry: right-aligned word labels, then a diverging bar field with
// the axis in the middle. "he"-skewed words grow left, "she"-skewed words
// grow right.
const (
	chartLabelWidth = 16
	chartMinWidth   = 40
	barRune         = '█'
	axisRune        = '│'

	legendLeft  = "◀ he"
	legendRight = "she ▶"
)

var (
	heStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	sheStyle = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
)

// ChartBuffer is an off-screen tcell surface the chart is drawn into, then
// read back cell by cell for serialization.
type ChartBuffer struct {
	screen tcell.SimulationScreen
	width  int
	height int
}

func NewChartBuffer(width, height int) (*ChartBuffer, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init error: %w", err)
	}

	screen.SetSize(width, height)

	return &ChartBuffer{
		screen: screen,
		width:  width,
		height: height,
	}, nil
}

func (cb *ChartBuffer) Close() {
	cb.screen.Fini()
}

func (cb *ChartBuffer) setText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= cb.width {
			return
		}
		cb.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (cb *ChartBuffer) fill(x1, x2, y int, r rune, style tcell.Style) {
	for x := x1; x <= x2 && x < cb.width; x++ {
		if x < 0 {
			continue
		}
		cb.screen.SetContent(x, y, r, nil, style)
	}
}

// RenderChart draws the top most-skewed rows of the table as a diverging
// horizontal bar chart and returns it as text lines. Bar length is
// proportional to abs_ratio, scaled to the largest value shown. When color
// is false the output carries no escape sequences.
func RenderChart(table types.SkewTable, top, width int, color bool) (string, error) {
	rows := table.TopAbs(top)
	if len(rows) == 0 {
		return "", nil
	}

	if width < chartMinWidth {
		width = chartMinWidth
	}

	barField := width - chartLabelWidth - 1
	half := (barField - 1) / 2
	axisX := chartLabelWidth + 1 + half

	maxAbs := 0.0
	for _, rec := range rows {
		if rec.AbsRatio > maxAbs {
			maxAbs = rec.AbsRatio
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	height := len(rows) + 2
	cb, err := NewChartBuffer(width, height)
	if err != nil {
		return "", fmt.Errorf("chart buffer error: %w", err)
	}
	defer cb.Close()

	// Header row with the two directions, then one row per word. Legend
	// placement counts runes, not bytes, so "▶" sits on the field edge.
	cb.setText(axisX-half, 0, legendLeft, heStyle)
	cb.setText(axisX+half-utf8.RuneCountInString(legendRight)+1, 0, legendRight, sheStyle)
	cb.screen.SetContent(axisX, 0, axisRune, nil, tcell.StyleDefault)

	for i, rec := range rows {
		y := i + 2

		label := truncateLabel(rec.Word2, chartLabelWidth)
		cb.setText(chartLabelWidth-utf8.RuneCountInString(label), y, label, tcell.StyleDefault)

		barLen := int(math.Round(rec.AbsRatio / maxAbs * float64(half)))
		if barLen == 0 && rec.AbsRatio > 0 {
			barLen = 1
		}

		cb.screen.SetContent(axisX, y, axisRune, nil, tcell.StyleDefault)
		if rec.LogRatio >= 0 {
			cb.fill(axisX+1, axisX+barLen, y, barRune, sheStyle)
		} else {
			cb.fill(axisX-barLen, axisX-1, y, barRune, heStyle)
		}
	}

	cb.screen.Show()

	return cb.serialize(color), nil
}

// serialize reads the screen back cell by cell and emits text lines,
// inserting foreground escape codes only where the color changes.
func (cb *ChartBuffer) serialize(color bool) string {
	var builder strings.Builder

	for y := 0; y < cb.height; y++ {
		line := cb.serializeLine(y, color)
		builder.WriteString(strings.TrimRight(line, " "))
		builder.WriteString("\n")
	}

	return builder.String()
}

func (cb *ChartBuffer) serializeLine(y int, color bool) string {
	var builder strings.Builder
	currentFg := tcell.ColorDefault
	styled := false

	for x := 0; x < cb.width; x++ {
		mainc, _, style, _ := cb.screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}

		if color {
			fg, _, _ := style.Decompose()
			// Color changes on blanks are deferred until visible content.
			if fg != currentFg && mainc != ' ' {
				builder.WriteString(fmt.Sprintf("\x1b[%sm", foregroundANSI(fg)))
				currentFg = fg
				styled = styled || fg != tcell.ColorDefault
			}
		}

		builder.WriteRune(mainc)
	}

	if styled && currentFg != tcell.ColorDefault {
		builder.WriteString("\x1b[0m")
	}

	return builder.String()
}

// truncateLabel shortens a label to maxLen runes, never splitting a rune.
func truncateLabel(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}

// foregroundANSI maps a tcell color to its SGR foreground parameter.
func foregroundANSI(color tcell.Color) string {
	colorCodes := map[tcell.Color]string{
		tcell.ColorBlack:   "30",
		tcell.ColorMaroon:  "31",
		tcell.ColorGreen:   "32",
		tcell.ColorOlive:   "33",
		tcell.ColorNavy:    "34",
		tcell.ColorPurple:  "35",
		tcell.ColorTeal:    "36",
		tcell.ColorSilver:  "37",
		tcell.ColorGray:    "90",
		tcell.ColorRed:     "91",
		tcell.ColorLime:    "92",
		tcell.ColorYellow:  "93",
		tcell.ColorBlue:    "94",
		tcell.ColorFuchsia: "95",
		tcell.ColorAqua:    "96",
		tcell.ColorWhite:   "97",
	}

	if code, ok := colorCodes[color]; ok {
		return code
	}

	return "39"
}
