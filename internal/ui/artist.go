package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"artgallery/internal/catalog"
	"artgallery/internal/images"
	"artgallery/internal/logging"
)

const (
	artistImageHeight = 7
	artistHelpLines   = 1
)

// artistScreen shows one artist: image, name, biography, and works.
type artistScreen struct {
	artist catalog.Artist
	deps   screenDeps
	logger *slog.Logger

	viewport viewport.Model
	// workLines[i] is the content line holding works[i].
	workLines []int
	cursor    int
	width     int
	height    int
}

func newArtistScreen(artist catalog.Artist, deps screenDeps) *artistScreen {
	return &artistScreen{
		artist:   artist,
		deps:     deps,
		logger:   deps.logger.With(logging.String(logging.FieldScreen, "artist")),
		viewport: viewport.New(0, 0),
	}
}

func (screen *artistScreen) Title() string { return screen.artist.Name }

func (screen *artistScreen) SetSize(width, height int) {
	screen.width = width
	screen.height = height
	screen.viewport.Width = width
	screen.viewport.Height = max(height-artistHelpLines-1, 1)
	screen.rerender()
}

func (screen *artistScreen) Update(message tea.Msg) (Screen, tea.Cmd) {
	keys := screen.deps.keys
	switch message := message.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(message, keys.Back):
			return screen, pop
		case key.Matches(message, keys.Up):
			screen.moveCursor(-1)
		case key.Matches(message, keys.Down):
			screen.moveCursor(1)
		case key.Matches(message, keys.PageUp):
			screen.viewport.HalfViewUp()
		case key.Matches(message, keys.PageDown):
			screen.viewport.HalfViewDown()
		case key.Matches(message, keys.Select):
			return screen, screen.open()
		}
		return screen, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		screen.viewport, cmd = screen.viewport.Update(message)
		return screen, cmd
	}
	return screen, nil
}

func (screen *artistScreen) open() tea.Cmd {
	if screen.cursor < 0 || screen.cursor >= len(screen.artist.Works) {
		return nil
	}
	work := screen.artist.Works[screen.cursor]
	screen.logger.Debug("work selected",
		logging.String("artist", screen.artist.Name),
		logging.String("work", work.Title),
	)
	return push(newWorkScreen(work, screen.deps))
}

func (screen *artistScreen) moveCursor(delta int) {
	if len(screen.artist.Works) == 0 {
		if delta < 0 {
			screen.viewport.LineUp(1)
		} else {
			screen.viewport.LineDown(1)
		}
		return
	}
	screen.cursor = min(max(screen.cursor+delta, 0), len(screen.artist.Works)-1)
	screen.rerender()
	line := screen.workLines[screen.cursor]
	switch {
	case line < screen.viewport.YOffset:
		screen.viewport.SetYOffset(line)
	case line >= screen.viewport.YOffset+screen.viewport.Height:
		screen.viewport.SetYOffset(line - screen.viewport.Height + 1)
	}
}

// rerender rebuilds the scrollable content at the current width, keeping
// the scroll position.
func (screen *artistScreen) rerender() {
	theme := screen.deps.theme
	width := max(screen.width, 20)
	offset := screen.viewport.YOffset

	var lines []string
	appendBlock := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	img := screen.deps.resolver.Resolve(screen.artist.Image)
	appendBlock(images.Render(img, images.Fit(min(width, 40), artistImageHeight), theme.imagePalette()))
	lines = append(lines, "")
	appendBlock(lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true).Render(screen.artist.Name))
	appendBlock(theme.faint().Render("Author"))
	lines = append(lines, "")
	appendBlock(theme.heading().Render("Biography"))
	appendBlock(lipgloss.NewStyle().Foreground(theme.NormalText).Width(width).Render(screen.artist.Bio))
	lines = append(lines, "")
	appendBlock(theme.heading().Render("Works"))

	screen.workLines = screen.workLines[:0]
	if len(screen.artist.Works) == 0 {
		appendBlock(theme.faint().Render("No works."))
	}
	for index, work := range screen.artist.Works {
		screen.workLines = append(screen.workLines, len(lines))
		lines = append(lines, screen.renderWork(work, index == screen.cursor, width))
	}

	screen.viewport.SetContent(strings.Join(lines, "\n"))
	screen.viewport.SetYOffset(offset)
}

func (screen *artistScreen) renderWork(work catalog.Work, selected bool, width int) string {
	theme := screen.deps.theme
	img := screen.deps.resolver.Resolve(work.Image)
	tag := "[" + work.Image + "]"
	if img.HasDimensions() {
		tag = "[" + work.Image + " " + dimensions(img) + "]"
	}

	title := ansi.Truncate(work.Title, max(width-lipgloss.Width(tag)-4, 1), "…")
	if selected {
		return "▸ " + theme.selected().Render(title) + " " + theme.faint().Render(tag)
	}
	return "  " + lipgloss.NewStyle().Foreground(theme.NormalText).Render(title) + " " + theme.faint().Render(tag)
}

func (screen *artistScreen) View() string {
	keys := screen.deps.keys
	return screen.viewport.View() + "\n\n" +
		helpLine(screen.deps.theme, keys.Up, keys.Down, keys.Select, keys.Back, keys.Quit)
}
