package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"artgallery/internal/catalog"
	"artgallery/internal/images"
	"artgallery/internal/logging"
	"artgallery/internal/store"
	"artgallery/internal/textutil"
)

const (
	// listRowLines is the height of one artist row: name line and bio line.
	listRowLines = 2
	// listChromeLines covers the search field, the gap under it, and help.
	listChromeLines = 4
	thumbWidth      = 10
)

// screenDeps bundles collaborators shared by every screen.
type screenDeps struct {
	resolver images.Resolver
	logger   *slog.Logger
	keys     KeyMap
	theme    Theme
}

// listScreen shows the store's filtered view with a search field on top.
type listScreen struct {
	store  *store.Store
	deps   screenDeps
	logger *slog.Logger
	input  textinput.Model

	cursor int
	offset int
	width  int
	height int
}

func newListScreen(st *store.Store, deps screenDeps) *listScreen {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "Search artists"
	input.Cursor.SetMode(cursor.CursorStatic)
	input.PromptStyle = lipgloss.NewStyle().Foreground(deps.theme.AccentText)
	input.PlaceholderStyle = deps.theme.faint()
	input.SetValue(st.Filter())
	return &listScreen{
		store:  st,
		deps:   deps,
		logger: deps.logger.With(logging.String(logging.FieldScreen, "list")),
		input:  input,
	}
}

func (screen *listScreen) Title() string { return "Artists" }

// Typing reports whether the search field has focus.
func (screen *listScreen) Typing() bool { return screen.input.Focused() }

func (screen *listScreen) SetSize(width, height int) {
	screen.width = width
	screen.height = height
	screen.input.Width = max(width-lipgloss.Width(screen.input.Prompt)-1, 1)
	screen.clamp()
}

func (screen *listScreen) Update(message tea.Msg) (Screen, tea.Cmd) {
	keys := screen.deps.keys
	switch message := message.(type) {
	case catalogChangedMsg:
		screen.clamp()
		return screen, nil

	case tea.MouseMsg:
		if message.Action != tea.MouseActionPress {
			return screen, nil
		}
		switch message.Button {
		case tea.MouseButtonWheelUp:
			screen.move(-1)
		case tea.MouseButtonWheelDown:
			screen.move(1)
		}
		return screen, nil

	case tea.KeyMsg:
		if screen.input.Focused() {
			if key.Matches(message, keys.SearchDone) {
				screen.input.Blur()
				return screen, nil
			}
			return screen, screen.updateInput(message)
		}
		switch {
		case key.Matches(message, keys.Search):
			return screen, screen.input.Focus()
		case key.Matches(message, keys.Up):
			screen.move(-1)
		case key.Matches(message, keys.Down):
			screen.move(1)
		case key.Matches(message, keys.PageUp):
			screen.move(-screen.visibleRows())
		case key.Matches(message, keys.PageDown):
			screen.move(screen.visibleRows())
		case key.Matches(message, keys.Select):
			return screen, screen.open()
		case key.Matches(message, keys.ClearFilter):
			if screen.input.Value() != "" {
				screen.input.SetValue("")
				screen.applyFilter()
			}
		case key.Matches(message, keys.Add):
			screen.logger.Debug("add artist requested; not supported",
				logging.String(logging.FieldEventType, "add_stub"),
			)
		}
	}
	return screen, nil
}

// updateInput forwards a key to the search field and refilters on any edit.
func (screen *listScreen) updateInput(message tea.Msg) tea.Cmd {
	before := screen.input.Value()
	var cmd tea.Cmd
	screen.input, cmd = screen.input.Update(message)
	if screen.input.Value() != before {
		screen.applyFilter()
	}
	return cmd
}

func (screen *listScreen) applyFilter() {
	screen.store.SetFilter(screen.input.Value())
	screen.cursor = 0
	screen.offset = 0
	screen.logger.Debug("filter changed",
		logging.String("filter", screen.input.Value()),
		logging.Int("matches", len(screen.store.CurrentView())),
	)
}

func (screen *listScreen) open() tea.Cmd {
	view := screen.store.CurrentView()
	if screen.cursor < 0 || screen.cursor >= len(view) {
		return nil
	}
	return push(newArtistScreen(view[screen.cursor], screen.deps))
}

func (screen *listScreen) move(delta int) {
	screen.cursor += delta
	screen.clamp()
}

// clamp keeps the cursor on a row and the row inside the visible window.
func (screen *listScreen) clamp() {
	count := len(screen.store.CurrentView())
	if screen.cursor >= count {
		screen.cursor = count - 1
	}
	if screen.cursor < 0 {
		screen.cursor = 0
	}
	rows := screen.visibleRows()
	if screen.cursor < screen.offset {
		screen.offset = screen.cursor
	}
	if screen.cursor >= screen.offset+rows {
		screen.offset = screen.cursor - rows + 1
	}
	if screen.offset < 0 {
		screen.offset = 0
	}
}

func (screen *listScreen) visibleRows() int {
	rows := (screen.height - listChromeLines) / listRowLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (screen *listScreen) View() string {
	var body strings.Builder
	body.WriteString(screen.input.View())
	body.WriteString("\n\n")

	view := screen.store.CurrentView()
	if len(view) == 0 {
		body.WriteString(screen.deps.theme.faint().Render(screen.emptyText()))
		body.WriteByte('\n')
	}
	end := min(screen.offset+screen.visibleRows(), len(view))
	for index := screen.offset; index < end; index++ {
		body.WriteString(screen.renderRow(view[index], index == screen.cursor))
		body.WriteByte('\n')
	}

	used := lipgloss.Height(body.String())
	if gap := screen.height - used; gap > 0 {
		body.WriteString(strings.Repeat("\n", gap-1))
	}
	body.WriteString(screen.help())
	return body.String()
}

func (screen *listScreen) emptyText() string {
	switch screen.store.State() {
	case store.StateEmpty, store.StateLoading:
		return "Loading catalog…"
	case store.StateFailed:
		return "Catalog unavailable. Details are in the log."
	}
	if filter := screen.input.Value(); filter != "" {
		return fmt.Sprintf("No artists match %q.", filter)
	}
	return "The catalog is empty."
}

func (screen *listScreen) renderRow(artist catalog.Artist, selected bool) string {
	theme := screen.deps.theme
	width := max(screen.width, 20)
	textWidth := width - thumbWidth - 3

	marker := "  "
	nameStyle := lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true)
	if selected {
		marker = "▸ "
		nameStyle = theme.selected()
	}

	name := nameStyle.Render(ansi.Truncate(artist.Name, textWidth, "…"))
	bio := theme.faint().Render(textutil.Excerpt(artist.Bio, textWidth))
	thumb := theme.faint().Render(ansi.Truncate("["+artist.Image+"]", thumbWidth, "…]"))

	left := lipgloss.JoinVertical(lipgloss.Left, marker+name, "  "+bio)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(width-thumbWidth).Render(left),
		thumb,
	)
}

func (screen *listScreen) help() string {
	keys := screen.deps.keys
	if screen.input.Focused() {
		return helpLine(screen.deps.theme, keys.SearchDone, keys.ForceQuit)
	}
	return helpLine(screen.deps.theme, keys.Up, keys.Down, keys.Select, keys.Search, keys.Add, keys.Quit)
}
