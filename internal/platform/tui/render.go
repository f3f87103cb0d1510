package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/engine"
	"github.com/vovakirdan/mtsk/internal/gameobject"
)

// Visual characters for rendering
const (
	CircleChar = '●'
	SquareChar = '█'
	HoleChar   = '○'
)

// panelColors tints panel borders by admission index.
var panelColors = []core.ColorRGB{core.Orange(), core.Aqua(), core.Blue(), core.Green()}

// PanelColor returns the border color of panel i.
func PanelColor(i int) core.ColorRGB {
	return panelColors[i%len(panelColors)]
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	messageStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("255")).
			Padding(1, 3)
)

// Grid returns how many panel columns and rows to use for n panels:
// side by side up to two, then a 2-wide grid.
func Grid(n int) (cols, rows int) {
	switch {
	case n <= 1:
		return 1, 1
	case n == 2:
		return 2, 1
	default:
		return 2, (n + 1) / 2
	}
}

// DrawPanel rasterizes a panel's objects into a w×h screen, scaling the
// arena to fit.
func DrawPanel(p engine.Panel, w, h int) *core.Screen {
	s := core.NewScreen(w, h)
	if w == 0 || h == 0 || p.Bounds.Width() <= 0 || p.Bounds.Height() <= 0 {
		return s
	}

	sx := float64(w) / p.Bounds.Width()
	sy := float64(h) / p.Bounds.Height()

	for _, a := range p.Objects {
		if a.Hidden {
			continue
		}
		cx := (a.Center.X - p.Bounds.MinX) * sx
		cy := (a.Center.Y - p.Bounds.MinY) * sy
		fill := objectRune(a)
		color := a.Color
		if !a.HasColor {
			color = core.White()
		}

		switch a.Shape {
		case gameobject.ShapeSquare:
			half := a.Size / 2
			fillSquare(s, cx, cy, math.Max(half*sx, 0.5), math.Max(half*sy, 0.5), fill, color)
		default:
			fillEllipse(s, cx, cy, math.Max(a.Size*sx, 0.5), math.Max(a.Size*sy, 0.5), fill, color)
		}

		if a.Label != "" {
			x := core.Clamp(int(cx)-len(a.Label)/2, 0, w-1)
			s.DrawText(x, int(cy), a.Label)
		}
	}

	if p.GameOver {
		drawBanner(s, "LOST")
	}
	return s
}

// drawBanner draws a small framed text box in the middle of the screen.
func drawBanner(s *core.Screen, text string) {
	bw, bh := len(text)+4, 3
	if bw > s.Width() || bh > s.Height() {
		s.DrawTextCentered(s.Height()/2, text)
		return
	}
	r := core.NewRect((s.Width()-bw)/2, (s.Height()-bh)/2, bw, bh)
	s.DrawRect(r, ' ', core.Red())
	s.DrawBox(r)
	s.DrawTextCentered(r.Y+1, text)
}

func objectRune(a gameobject.Aspect) rune {
	switch {
	case a.Kind == gameobject.KindHole:
		return HoleChar
	case a.Shape == gameobject.ShapeSquare:
		return SquareChar
	default:
		return CircleChar
	}
}

func fillSquare(s *core.Screen, cx, cy, hx, hy float64, r rune, c core.ColorRGB) {
	for y := int(math.Floor(cy - hy)); y < int(math.Ceil(cy+hy)); y++ {
		for x := int(math.Floor(cx - hx)); x < int(math.Ceil(cx+hx)); x++ {
			s.SetColored(x, y, r, c)
		}
	}
}

func fillEllipse(s *core.Screen, cx, cy, rx, ry float64, r rune, c core.ColorRGB) {
	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				s.SetColored(x, y, r, c)
			}
		}
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.HasColor != start.HasColor || cell.Color != start.Color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !start.HasColor {
				sb.WriteString(run.String())
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(start.Color.Hex()))
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// renderPanels lays the snapshot's panels out in a grid that fills w×h.
func renderPanels(snap engine.Snapshot, w, h int) string {
	n := len(snap.Panels)
	if n == 0 {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, "starting...")
	}

	cols, rows := Grid(n)
	// Each panel spends 2 columns and 2 rows on its border and 1 row on its title
	innerW := max(w/cols-2, 1)
	innerH := max(h/rows-3, 1)

	var lines []string
	for r := 0; r < rows; r++ {
		var row []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= n {
				break
			}
			row = append(row, renderPanel(snap.Panels[i], innerW, innerH))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPanel(p engine.Panel, w, h int) string {
	header := titleStyle.Render(p.Title)
	if p.Status != "" {
		header += "  " + statusStyle.Render(p.Status)
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(PanelColor(p.Index).Hex()))
	if p.GameOver {
		border = border.BorderForeground(lipgloss.Color(core.Red().Hex()))
	}

	body := border.Render(RenderScreen(DrawPanel(p, w, h)))
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// statusLine shows the session clock and state.
func statusLine(snap engine.Snapshot) string {
	line := fmt.Sprintf("time %s", formatMillis(snap.Elapsed))
	if snap.State == engine.StatePaused {
		line += "  " + pausedStyle.Render("PAUSED")
	}
	return line
}

// formatMillis renders milliseconds as seconds with one decimal.
func formatMillis(ms int64) string {
	return fmt.Sprintf("%d.%ds", ms/1000, (ms%1000)/100)
}

// renderMessage draws a centred message box.
func renderMessage(text string, w, h int) string {
	box := messageStyle.Render(text + "\n\n" + statusStyle.Render("press enter to continue"))
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}
