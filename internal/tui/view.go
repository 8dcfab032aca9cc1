package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/daydial/pkg/graphics"
)

const upperHalfBlock = "▀"

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	timeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5500"))
	phaseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

// View renders the dial followed by a status line.
func (m model) View() string {
	if m.quitting {
		return ""
	}
	face := halfBlocks(m.raster.Render(), m.width, max(m.height-2, 1))
	return lipgloss.JoinVertical(lipgloss.Left, face, m.statusLine())
}

func (m model) statusLine() string {
	t := m.state.Last()
	parts := []string{
		timeStyle.Render(fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)),
		statusStyle.Render(m.state.Label()),
		phaseStyle.Render(m.state.Phase().String()),
	}
	if m.stalled {
		parts = append(parts, phaseStyle.Render("frames stopped"))
	}
	if m.speed != 1 {
		parts = append(parts, statusStyle.Render(fmt.Sprintf("x%g", m.speed)))
	}
	parts = append(parts, helpStyle.Render("space: reveal  q: quit"))
	return strings.Join(parts, "  ")
}

// halfBlocks draws img into at most cols by rows terminal cells. Each cell
// shows two vertically stacked pixels: the upper half block in the
// foreground colour and the lower pixel as background. The image is
// downsampled by the smallest integer step that fits.
func halfBlocks(img image.Image, cols, rows int) string {
	cols, rows = max(cols, 1), max(rows, 1)
	b := img.Bounds()
	step := 1
	for (b.Dx()+step-1)/step > cols || (b.Dy()+step*2-1)/(step*2) > rows {
		step++
	}

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 * step {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x += step {
			top := graphics.FromColor(img.At(x, y))
			bottom := graphics.ColorBlack
			if y+step < b.Max.Y {
				bottom = graphics.FromColor(img.At(x, y+step))
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render(upperHalfBlock))
		}
	}
	return sb.String()
}
