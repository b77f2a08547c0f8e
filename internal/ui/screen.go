package ui

import tea "github.com/charmbracelet/bubbletea"

// Screen is one page of the navigation stack.
type Screen interface {
	Update(message tea.Msg) (Screen, tea.Cmd)
	View() string
	// SetSize is called with the area below the breadcrumb bar.
	SetSize(width, height int)
	Title() string
}

// textEntry is implemented by screens that can capture printable keys, so
// the model knows when "q" is text rather than a quit request.
type textEntry interface {
	Typing() bool
}
