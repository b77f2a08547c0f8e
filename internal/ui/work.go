package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"artgallery/internal/catalog"
	"artgallery/internal/images"
	"artgallery/internal/logging"
)

// workImageShare is the fraction of the screen the image takes when not
// expanded.
const workImageShare = 0.3

// workScreen shows one work and can expand its image to fill the screen.
type workScreen struct {
	work     catalog.Work
	deps     screenDeps
	logger   *slog.Logger
	image    images.Image
	expanded bool
	width    int
	height   int
}

func newWorkScreen(work catalog.Work, deps screenDeps) *workScreen {
	return &workScreen{
		work:   work,
		deps:   deps,
		logger: deps.logger.With(logging.String(logging.FieldScreen, "work")),
		image:  deps.resolver.Resolve(work.Image),
	}
}

func (screen *workScreen) Title() string { return screen.work.Title }

func (screen *workScreen) SetSize(width, height int) {
	screen.width = width
	screen.height = height
}

// Expanded reports whether the image is zoomed.
func (screen *workScreen) Expanded() bool { return screen.expanded }

func (screen *workScreen) Update(message tea.Msg) (Screen, tea.Cmd) {
	keyMsg, ok := message.(tea.KeyMsg)
	if !ok {
		return screen, nil
	}
	keys := screen.deps.keys
	if screen.expanded {
		if key.Matches(keyMsg, keys.Close) {
			screen.expanded = false
			screen.logger.Debug("image closed", logging.String("work", screen.work.Title))
		}
		return screen, nil
	}
	switch {
	case key.Matches(keyMsg, keys.Expand):
		screen.expanded = true
		layout := screen.zoomLayout()
		screen.logger.Debug("image expanded",
			logging.String("work", screen.work.Title),
			logging.Int("width", layout.Width),
			logging.Int("height", layout.Height),
			logging.Bool("rotated", layout.Rotated),
		)
	case key.Matches(keyMsg, keys.Back):
		return screen, pop
	}
	return screen, nil
}

func (screen *workScreen) zoomLayout() images.Layout {
	return images.Zoom(screen.image, max(screen.width, 1), max(screen.height-2, 1))
}

func (screen *workScreen) View() string {
	theme := screen.deps.theme
	keys := screen.deps.keys
	width := max(screen.width, 20)

	if screen.expanded {
		area := max(screen.height-2, 1)
		frame := images.Render(screen.image, screen.zoomLayout(), theme.imagePalette())
		return lipgloss.Place(width, area, lipgloss.Center, lipgloss.Center, frame) + "\n\n" +
			helpLine(theme, keys.Close, keys.Quit)
	}

	imageHeight := max(int(float64(screen.height)*workImageShare), 3)
	frame := images.Render(screen.image, images.Fit(width, imageHeight), theme.imagePalette())
	title := lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true).Width(width).Render(screen.work.Title)
	info := lipgloss.NewStyle().Foreground(theme.NormalText).Width(width).Render(screen.work.Info)

	body := lipgloss.JoinVertical(lipgloss.Left, frame, "", title, "", info)
	if gap := screen.height - lipgloss.Height(body) - 1; gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + "\n" + helpLine(theme, keys.Expand, keys.Back, keys.Quit)
}

func dimensions(img images.Image) string {
	return fmt.Sprintf("%d×%d", img.Width, img.Height)
}
