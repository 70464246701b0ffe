// Package testsupport holds fixtures shared by the package tests.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// ValidRawValues returns raw input that passes every validation rule.
func ValidRawValues() model.RawValues {
	return model.RawValues{
		Name:     "joão da silva",
		Email:    "Joao@Gmail.com",
		Password: "secret1",
		Techs: []model.RawTech{
			{ID: 1, Title: "Go", Experience: "3"},
			{ID: 2, Title: "React", Experience: "5"},
		},
	}
}

// Snapshot returns a snapshot of values with the given error tree.
func Snapshot(values model.RawValues, errs map[string]string) model.Snapshot {
	return model.Snapshot{Values: values, Errors: errs}
}

// MustBuildForm builds the default form model for snapshot.
func MustBuildForm(t *testing.T, snapshot model.Snapshot) model.FormModel {
	t.Helper()
	return model.NewBuilder().Build(snapshot)
}

// MustRender renders form with r and fails the test on error.
func MustRender(t *testing.T, r render.Renderer, form model.FormModel, opts render.RenderOptions) string {
	t.Helper()

	out, err := r.Render(Context(), form, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

// AssertContains fails the test for every fragment missing from output.
func AssertContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(output, fragment) {
			t.Errorf("expected output to contain %q\noutput:\n%s", fragment, output)
		}
	}
}

// AssertNotContains fails the test for every fragment present in output.
func AssertNotContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if strings.Contains(output, fragment) {
			t.Errorf("expected output not to contain %q\noutput:\n%s", fragment, output)
		}
	}
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
