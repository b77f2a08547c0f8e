package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"artgallery/internal/images"
	"artgallery/internal/logging"
	"artgallery/internal/store"
)

// breadcrumbLines is the height of the bar above the active screen.
const breadcrumbLines = 2

// Model is the root bubbletea model.
type Model struct {
	ctx      context.Context
	store    *store.Store
	resolver images.Resolver
	logger   *slog.Logger
	keys     KeyMap
	theme    Theme

	stack  []Screen
	width  int
	height int
}

// NewModel builds the browser over an injected store. The store should be
// empty; Init starts its one load.
func NewModel(ctx context.Context, st *store.Store, resolver images.Resolver, logger *slog.Logger) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if resolver == nil {
		resolver = images.Placeholder{}
	}
	logger = logging.NewComponentLogger(logger, "ui")
	model := Model{
		ctx:      ctx,
		store:    st,
		resolver: resolver,
		logger:   logger,
		keys:     DefaultKeyMap,
		theme:    DefaultTheme,
	}
	model.stack = []Screen{newListScreen(st, model.deps())}
	return model
}

// deps bundles what every screen needs from the model.
func (model Model) deps() screenDeps {
	return screenDeps{
		resolver: model.resolver,
		logger:   model.logger,
		keys:     model.keys,
		theme:    model.theme,
	}
}

// Init starts the catalog load. The fetch runs on a bubbletea command
// goroutine; its result comes back as a loadedMsg.
func (model Model) Init() tea.Cmd {
	task, err := model.store.Load(model.ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLoadStarted) {
			model.logger.Warn("catalog load not started", logging.Error(err))
		}
		return nil
	}
	return func() tea.Msg {
		return loadedMsg{result: task()}
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		for _, screen := range model.stack {
			screen.SetSize(model.screenSize())
		}
		return model, nil

	case loadedMsg:
		// The store already logged a failure; the list shows the state.
		_ = model.store.Complete(message.result)
		return model.updateScreen(0, catalogChangedMsg{})

	case pushScreen:
		message.screen.SetSize(model.screenSize())
		model.stack = append(model.stack, message.screen)
		model.logger.Debug("screen pushed",
			logging.String(logging.FieldScreen, message.screen.Title()),
			logging.Int("depth", len(model.stack)),
		)
		return model, nil

	case popScreen:
		if len(model.stack) > 1 {
			model.stack[len(model.stack)-1] = nil
			model.stack = model.stack[:len(model.stack)-1]
		}
		return model, nil

	case tea.KeyMsg:
		if key.Matches(message, model.keys.ForceQuit) {
			return model, tea.Quit
		}
		if key.Matches(message, model.keys.Quit) && !model.typing() {
			return model, tea.Quit
		}
	}

	return model.updateScreen(len(model.stack)-1, message)
}

func (model Model) updateScreen(index int, message tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := model.stack[index].Update(message)
	stack := make([]Screen, len(model.stack))
	copy(stack, model.stack)
	stack[index] = next
	model.stack = stack
	return model, cmd
}

func (model Model) typing() bool {
	entry, ok := model.top().(textEntry)
	return ok && entry.Typing()
}

func (model Model) top() Screen {
	return model.stack[len(model.stack)-1]
}

func (model Model) screenSize() (int, int) {
	height := model.height - breadcrumbLines
	if height < 1 {
		height = 1
	}
	return model.width, height
}

// View implements tea.Model.
func (model Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, model.breadcrumb(), model.top().View())
}

func (model Model) breadcrumb() string {
	titles := make([]string, 0, len(model.stack))
	for _, screen := range model.stack {
		titles = append(titles, screen.Title())
	}
	bar := strings.Join(titles, " › ")
	if model.width > 0 {
		bar = ansi.Truncate(bar, model.width, "…")
	}
	return model.theme.heading().Render(bar) + "\n"
}

// Depth returns the number of screens on the navigation stack.
func (model Model) Depth() int {
	return len(model.stack)
}
