package main

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// errAborted signals the user cancelled a prompt (e.g., Ctrl+C).
var errAborted = errors.New("viewgen-cli: aborted")

type selectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// promptDriver abstracts the interactive prompts so selection logic can be
// tested without a real terminal.
type promptDriver interface {
	Select(ctx context.Context, cfg selectConfig) (int, error)
}

type surveyDriver struct{}

func newSurveyDriver() promptDriver {
	return &surveyDriver{}
}

func (d *surveyDriver) Select(ctx context.Context, cfg selectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}

	// OptionAnswer keeps the selected index, which stays correct even when
	// two worlds share a display name.
	var answer survey.OptionAnswer
	if err := survey.AskOne(prompt, &answer); err != nil {
		return 0, promptError(err)
	}
	return answer.Index, nil
}

// promptError maps survey's interrupt into errAborted so callers can treat
// user cancellation separately from real failures.
func promptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

// indexOf returns the position of value in options, -1 when absent.
func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
