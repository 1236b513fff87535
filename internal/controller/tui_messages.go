package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/knightpath/internal/model"
)

// Message types.
type outcomeMsg struct {
	outcome m.Outcome
}

type settingsSavedMsg struct {
	settings m.Settings
	err      error
}

// waitForOutcome turns the next delivered outcome into a message. It returns
// nil once done is closed so no goroutine outlives the session.
func waitForOutcome(outcomes <-chan m.Outcome, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case out, ok := <-outcomes:
			if !ok {
				return nil
			}

			return outcomeMsg{outcome: out}
		case <-done:
			return nil
		}
	}
}

// saveSettings persists settings off the update loop.
func saveSettings(save SaveSettingsFunc, settings m.Settings) tea.Cmd {
	if save == nil {
		return nil
	}

	return func() tea.Msg {
		return settingsSavedMsg{settings: settings, err: save(settings)}
	}
}

// List item types.
type pathItem struct {
	index int
	path  m.Path
}

func (p pathItem) FilterValue() string {
	return p.path.String()
}
