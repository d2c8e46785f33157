package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/oriel-cms/orsh/internal/messages"
)

// runFormFunc is swapped in tests to drive the picker without a TTY.
var runFormFunc = func(form *huh.Form) error { return form.Run() }

// pickSite renders a single-choice site picker on stderr and returns the
// chosen name. An aborted picker maps to a SilentExitError with code 1.
func pickSite(names []string) (string, error) {
	opts := make([]huh.Option[string], len(names))
	for i, name := range names {
		opts[i] = huh.NewOption(name, name)
	}

	choice := names[0]
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(messages.SiteSetPickerTitle).
				Options(opts...).
				Value(&choice),
		),
	).WithKeyMap(pickerKeyMap())
	form.WithProgramOptions(tea.WithOutput(os.Stderr))

	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", &SilentExitError{Code: 1}
		}
		return "", err
	}
	return choice, nil
}

// pickerKeyMap binds Esc alongside Ctrl+C as abort keys and turns off
// list filtering.
func pickerKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}
