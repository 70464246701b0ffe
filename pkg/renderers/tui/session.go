package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/pkg/form"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/validation"
)

// Session walks a terminal user through the registration form. Each attempt
// prompts every field with the current value as default, submits through the
// controller and prints the inline errors until the form is valid.
type Session struct {
	controller  *form.Controller
	driver      PromptDriver
	labels      Labels
	theme       Theme
	maxAttempts int
	logger      *zap.Logger
	onSuccess   func(model.FormValues)
}

// NewSession binds a session to controller. The survey driver is used unless
// WithPromptDriver overrides it.
func NewSession(controller *form.Controller, options ...Option) (*Session, error) {
	if controller == nil {
		return nil, errors.New("tui: controller is required")
	}
	s := &Session{
		controller: controller,
		labels:     DefaultLabels(),
		theme:      DefaultTheme(),
		logger:     zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s, nil
}

// Run prompts until the form validates and returns the validated values. The
// pretty JSON of the values is printed through the driver on success.
func (s *Session) Run(ctx context.Context) (model.FormValues, error) {
	if ctx == nil {
		return model.FormValues{}, errors.New("tui: context is required")
	}

	for attempt := 1; ; attempt++ {
		if err := s.collect(ctx, attempt > 1); err != nil {
			return model.FormValues{}, err
		}

		var submitted model.FormValues
		if s.controller.Submit(func(values model.FormValues) {
			submitted = values
			if s.onSuccess != nil {
				s.onSuccess(values)
			}
		}) {
			output, err := render.FormatOutput(submitted)
			if err != nil {
				return model.FormValues{}, fmt.Errorf("tui: format output: %w", err)
			}
			if err := s.driver.Info(ctx, s.theme.InfoPrefix+output); err != nil {
				return model.FormValues{}, err
			}
			s.logger.Info("terminal form submitted", zap.Int("attempts", attempt))
			return submitted, nil
		}

		errs := s.controller.Errors()
		s.logger.Debug("terminal form rejected", zap.Int("attempt", attempt), zap.Strings("paths", errs.Paths()))
		if err := s.report(ctx, errs); err != nil {
			return model.FormValues{}, err
		}
		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return model.FormValues{}, ErrTooManyAttempts
		}
	}
}

func (s *Session) collect(ctx context.Context, retry bool) error {
	if err := s.promptInput(ctx, model.PathName, s.labels.Name); err != nil {
		return err
	}
	if err := s.promptInput(ctx, model.PathEmail, s.labels.Email); err != nil {
		return err
	}
	if err := s.promptPassword(ctx); err != nil {
		return err
	}

	for index := 0; index < len(s.controller.Rows()); {
		if retry && len(s.controller.Rows()) > 1 {
			remove, err := s.driver.Confirm(ctx, ConfirmConfig{
				Message: s.rowLabel(index, s.labels.Remove),
			})
			if err != nil {
				return err
			}
			if remove {
				if err := s.controller.RemoveTech(index); err != nil {
					return fmt.Errorf("tui: remove tech: %w", err)
				}
				continue
			}
		}
		if err := s.promptRow(ctx, index); err != nil {
			return err
		}
		index++
	}

	for {
		more, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: s.labels.Add,
			Default: len(s.controller.Rows()) < validation.MinTechs,
		})
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		s.controller.AppendTech()
		if err := s.promptRow(ctx, len(s.controller.Rows())-1); err != nil {
			return err
		}
	}
}

func (s *Session) promptRow(ctx context.Context, index int) error {
	if err := s.promptInput(ctx, model.TechFieldPath(index, model.TechTitleKey), s.rowLabel(index, s.labels.Title)); err != nil {
		return err
	}
	return s.promptInput(ctx, model.TechFieldPath(index, model.TechExperienceKey), s.rowLabel(index, s.labels.Experience))
}

func (s *Session) promptInput(ctx context.Context, path, label string) error {
	current, err := s.controller.Value(path)
	if err != nil {
		return fmt.Errorf("tui: read %s: %w", path, err)
	}
	answer, err := s.driver.Input(ctx, InputConfig{Message: label, Default: current})
	if err != nil {
		return err
	}
	return s.controller.SetValue(path, answer)
}

// promptPassword keeps the previous password when the answer is empty since
// masked prompts cannot show a default.
func (s *Session) promptPassword(ctx context.Context) error {
	current, err := s.controller.Value(model.PathPassword)
	if err != nil {
		return err
	}
	cfg := InputConfig{Message: s.labels.Password}
	if current != "" {
		cfg.Help = "Deixe em branco para manter a senha atual"
	}
	answer, err := s.driver.Password(ctx, cfg)
	if err != nil {
		return err
	}
	if answer == "" && current != "" {
		return nil
	}
	return s.controller.SetValue(model.PathPassword, answer)
}

func (s *Session) report(ctx context.Context, errs validation.ErrorTree) error {
	for _, path := range errs.Paths() {
		message, _ := errs.Get(path)
		line := s.theme.ErrorPrefix + s.pathLabel(path) + ": " + message
		if err := s.driver.Info(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) rowLabel(index int, label string) string {
	return fmt.Sprintf("%s #%d %s", s.labels.Techs, index+1, strings.ToLower(label))
}

func (s *Session) pathLabel(path string) string {
	switch path {
	case model.PathName:
		return s.labels.Name
	case model.PathEmail:
		return s.labels.Email
	case model.PathPassword:
		return s.labels.Password
	case model.PathTechs:
		return s.labels.Techs
	}
	index, key, ok := model.ParseTechPath(path)
	if !ok {
		return path
	}
	switch key {
	case model.TechTitleKey:
		return s.rowLabel(index, s.labels.Title)
	case model.TechExperienceKey:
		return s.rowLabel(index, s.labels.Experience)
	default:
		return fmt.Sprintf("%s #%d", s.labels.Techs, index+1)
	}
}
