package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// RunOptions controls how the browser takes over the terminal.
type RunOptions struct {
	AltScreen bool
	Mouse     bool
	// Input and Output default to the process terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// Run drives model until the user quits or ctx is cancelled.
func Run(ctx context.Context, model Model, opts RunOptions) error {
	programOptions := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOptions = append(programOptions, tea.WithAltScreen())
	}
	if opts.Mouse {
		programOptions = append(programOptions, tea.WithMouseCellMotion())
	}
	if opts.Input != nil {
		programOptions = append(programOptions, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOptions = append(programOptions, tea.WithOutput(opts.Output))
	}

	program := tea.NewProgram(model, programOptions...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
