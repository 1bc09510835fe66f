package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"hullview/internal/render"
)

// Sink shows scenes in the interactive terminal viewer. Draw blocks until the
// user quits the viewer.
type Sink struct {
	// Options are appended after the alt-screen and mouse options, e.g.
	// tea.WithInput/tea.WithOutput in tests.
	Options []tea.ProgramOption
}

func (s Sink) Draw(scene render.Scene) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}, s.Options...)
	if _, err := tea.NewProgram(New(scene), opts...).Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
