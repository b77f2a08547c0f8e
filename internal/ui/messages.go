package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"artgallery/internal/store"
)

// pushScreen asks the model to show screen on top of the stack.
type pushScreen struct {
	screen Screen
}

// popScreen asks the model to go back one screen. It is a no-op at the root.
type popScreen struct{}

// loadedMsg carries the catalog load result back to the event loop.
type loadedMsg struct {
	result store.Result
}

// catalogChangedMsg tells the root screen that the store finished loading.
type catalogChangedMsg struct{}

func push(screen Screen) tea.Cmd {
	return func() tea.Msg { return pushScreen{screen: screen} }
}

func pop() tea.Msg { return popScreen{} }
