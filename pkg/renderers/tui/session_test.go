package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/pkg/form"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/validation"
)

// stubDriver replays scripted answers. Like survey, an empty input answer
// yields the prompt default.
type stubDriver struct {
	inputs       []string
	passwords    []string
	confirm      []bool
	inputErr     error
	infoMessages []string
	prompts      []string
	inputPos     int
	passPos      int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if val == "" {
		return cfg.Default, nil
	}
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newSession(t *testing.T, driver PromptDriver, options ...Option) *Session {
	t.Helper()
	controller := form.New(validation.NewSchema())
	session, err := NewSession(controller, append([]Option{WithPromptDriver(driver)}, options...)...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}

func TestSession_RepromptsAfterFailedSubmit(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{
			"ana maria", "ana@gmail.com", "Go", "3", "Go", "2",
			"", "", "", "", "React", "",
		},
		passwords: []string{"secret1", ""},
		confirm: []bool{
			true, false,
			false, false, false,
		},
	}
	session := newSession(t, driver)

	got, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := model.FormValues{
		Name:     "Ana Maria",
		Email:    "ana@gmail.com",
		Password: "secret1",
		Techs: []model.TechEntry{
			{Title: "Go", Experience: 3},
			{Title: "React", Experience: 2},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	output, err := render.FormatOutput(want)
	if err != nil {
		t.Fatalf("format output: %v", err)
	}
	wantInfo := []string{
		"✗ Tecnologias: " + validation.MsgTechsDuplicateTitle,
		output,
	}
	if diff := cmp.Diff(wantInfo, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_OnSuccessReceivesValues(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"ana", "ana@gmail.com", "Go", "3", "Rust", "2"},
		passwords: []string{"secret1"},
		confirm:   []bool{true, false},
	}
	var calls []model.FormValues
	session := newSession(t, driver, WithOnSuccess(func(values model.FormValues) {
		calls = append(calls, values)
	}))

	got, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if diff := cmp.Diff([]model.FormValues{got}, calls); diff != "" {
		t.Fatalf("callback mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_RemovesRowOnRetry(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{
			"ana", "ana@gmail.com", "", "1", "Go", "3", "Rust", "4",
			"", "", "Go", "", "Rust", "",
		},
		passwords: []string{"secret1", ""},
		confirm: []bool{
			true, true, false,
			true, false, false, false,
		},
	}
	session := newSession(t, driver)

	got, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	titles := make([]string, 0, len(got.Techs))
	for _, tech := range got.Techs {
		titles = append(titles, tech.Title)
	}
	if diff := cmp.Diff([]string{"Go", "Rust"}, titles); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infoMessages) == 0 || !strings.Contains(driver.infoMessages[0], validation.MsgTechTitleRequired) {
		t.Fatalf("expected title error to be reported first, got %v", driver.infoMessages)
	}
}

func TestSession_TooManyAttempts(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "", "", ""},
		passwords: []string{""},
		confirm:   []bool{false},
	}
	session := newSession(t, driver, WithMaxAttempts(1))

	_, err := session.Run(context.Background())
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	wantFirst := "✗ Email: " + validation.MsgEmailRequired
	if len(driver.infoMessages) == 0 || driver.infoMessages[0] != wantFirst {
		t.Fatalf("expected %q first, got %v", wantFirst, driver.infoMessages)
	}
}

func TestSession_Aborted(t *testing.T) {
	driver := &stubDriver{inputErr: ErrAborted}
	session := newSession(t, driver)

	if _, err := session.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSession_UsesLabels(t *testing.T) {
	driver := &stubDriver{inputErr: ErrAborted}
	labels := DefaultLabels()
	labels.Name = "Seu nome"
	session := newSession(t, driver, WithLabels(labels))

	_, _ = session.Run(context.Background())
	if diff := cmp.Diff([]string{"Seu nome"}, driver.prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSession_RequiresController(t *testing.T) {
	if _, err := NewSession(nil); err == nil {
		t.Fatalf("expected error without controller")
	}
}

func TestLabelsFromForm(t *testing.T) {
	built := model.NewBuilder().Build(model.Snapshot{
		Values: model.RawValues{Techs: []model.RawTech{{ID: 1}}},
	})
	built.Fields[0].Label = "Nome completo"
	built.Fields[3].Rows[0].Fields[0].Label = "Tecnologia"

	labels := LabelsFromForm(built)
	if labels.Name != "Nome completo" {
		t.Fatalf("expected decorated name label, got %q", labels.Name)
	}
	if labels.Title != "Tecnologia" {
		t.Fatalf("expected decorated title label, got %q", labels.Title)
	}
	if labels.Email != DefaultLabels().Email {
		t.Fatalf("expected default email label for undecorated field, got %q", labels.Email)
	}
}
