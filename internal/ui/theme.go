package ui

import (
	"github.com/charmbracelet/lipgloss"

	"artgallery/internal/images"
)

// Theme defines the color palette for the browser. All colors use lipgloss
// ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color
	AccentText lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("243"),
	AccentText: lipgloss.Color("180"),

	SelectedBackground: lipgloss.Color("237"),
	SelectedForeground: lipgloss.Color("230"),

	HeaderForeground: lipgloss.Color("223"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("245"),
}

func (theme Theme) imagePalette() images.Palette {
	return images.Palette{
		Border: theme.BorderColor,
		Text:   theme.NormalText,
		Faint:  theme.FaintText,
	}
}

func (theme Theme) heading() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
}

func (theme Theme) faint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.FaintText)
}

func (theme Theme) selected() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground).
		Bold(true)
}
