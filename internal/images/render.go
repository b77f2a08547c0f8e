package images

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Palette holds the colors Render uses.
type Palette struct {
	Border lipgloss.Color
	Text   lipgloss.Color
	Faint  lipgloss.Color
}

// Render draws a framed stand-in for img with the footprint of layout. The
// frame carries the identifier and, when known, the pixel dimensions.
func Render(img Image, layout Layout, palette Palette) string {
	if layout.Width <= 0 || layout.Height <= 0 {
		return ""
	}

	label := img.Name
	if label == "" {
		label = "(no image)"
	}

	// Too small for a frame: a single truncated line.
	if layout.Width < 4 || layout.Height < 3 {
		line := ansi.Truncate(label, layout.Width, "…")
		return lipgloss.NewStyle().Foreground(palette.Faint).Render(line)
	}

	innerW := layout.Width - 2
	innerH := layout.Height - 2

	lines := []string{
		lipgloss.NewStyle().Foreground(palette.Text).Bold(true).Render(ansi.Truncate(label, innerW, "…")),
	}
	detail := "no image"
	if img.HasDimensions() {
		detail = fmt.Sprintf("%d×%d", img.Width, img.Height)
	} else if img.Found {
		detail = "image"
	}
	if layout.Rotated {
		detail += " ↺"
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(palette.Faint).Render(ansi.Truncate(detail, innerW, "…")))
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Border).
		Width(innerW).
		Height(innerH).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
