package views

import tea "github.com/charmbracelet/bubbletea"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height handling.
type ViewState struct {
	Width  int
	Height int
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// Messages for view switching
type SwitchToAddMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

// ToggleThemeMsg asks the app to flip between light and dark
type ToggleThemeMsg struct{}

func switchTo(msg any) func() tea.Msg {
	return func() tea.Msg {
		return msg
	}
}
