package interactive

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrAborted indicates the user backed out of the prompt flow. Callers treat
// it as a clean exit, not a failure.
var ErrAborted = errors.New("canceled by user")

// Choice is one selectable prompt entry.
type Choice struct {
	Label string
	Value string
}

// Prompter abstracts the terminal prompt primitives so the flow logic can be
// exercised with scripted answers in tests.
type Prompter interface {
	Input(title, initial string, validate func(string) error) (string, error)
	Select(title string, choices []Choice) (string, error)
	MultiSelect(title string, choices []Choice) ([]string, error)
	Confirm(title string, defaultYes bool) (bool, error)
}

// TerminalPrompter renders prompts with huh.
type TerminalPrompter struct{}

func (TerminalPrompter) Input(title, initial string, validate func(string) error) (string, error) {
	value := initial
	field := huh.NewInput().Title(title).Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}
	if err := field.Run(); err != nil {
		return "", mapHuhErr(err)
	}
	return value, nil
}

func (TerminalPrompter) Select(title string, choices []Choice) (string, error) {
	var value string
	options := make([]huh.Option[string], 0, len(choices))
	for _, choice := range choices {
		options = append(options, huh.NewOption(choice.Label, choice.Value))
	}
	field := huh.NewSelect[string]().Title(title).Options(options...).Value(&value)
	if err := field.Run(); err != nil {
		return "", mapHuhErr(err)
	}
	return value, nil
}

func (TerminalPrompter) MultiSelect(title string, choices []Choice) ([]string, error) {
	var values []string
	options := make([]huh.Option[string], 0, len(choices))
	for _, choice := range choices {
		options = append(options, huh.NewOption(choice.Label, choice.Value))
	}
	field := huh.NewMultiSelect[string]().Title(title).Options(options...).Value(&values)
	if err := field.Run(); err != nil {
		return nil, mapHuhErr(err)
	}
	return values, nil
}

func (TerminalPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	value := defaultYes
	field := huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(&value)
	if err := field.Run(); err != nil {
		return false, mapHuhErr(err)
	}
	return value, nil
}

func mapHuhErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

var _ Prompter = TerminalPrompter{}
