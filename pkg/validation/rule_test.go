package validation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/pkg/validation"
)

func TestPipeline_StopsAtFirstFailureAndThreadsTransforms(t *testing.T) {
	var seen []string
	pipeline := validation.Pipeline[string]{
		validation.Transform("trim", strings.TrimSpace),
		validation.Check("nonempty", validation.KindRequired, "required", func(v string) bool {
			seen = append(seen, v)
			return v != ""
		}),
		validation.Transform("upper", strings.ToUpper),
		validation.Check("short", validation.KindTooShort, "too short", func(v string) bool {
			seen = append(seen, v)
			return len(v) > 5
		}),
		validation.Check("never", validation.KindTooHigh, "never", func(string) bool {
			t.Fatalf("steps after a failure must not run")
			return false
		}),
	}

	value, issue := pipeline.Run("field", "  abc ")
	if issue == nil {
		t.Fatalf("expected failure")
	}
	if issue.Rule != "short" || issue.Kind != validation.KindTooShort || issue.Path != "field" {
		t.Fatalf("unexpected issue %+v", issue)
	}
	if value != "ABC" {
		t.Fatalf("expected transformed value at failure point, got %q", value)
	}
	if diff := cmp.Diff([]string{"abc", "ABC"}, seen); diff != "" {
		t.Fatalf("values seen by checks mismatch (-want +got):\n%s", diff)
	}
}

func TestPipeline_Names(t *testing.T) {
	pipeline := validation.Pipeline[int]{
		validation.Check("a", validation.KindTooLow, "", func(int) bool { return true }),
		validation.Transform("b", func(v int) int { return v }),
	}
	if diff := cmp.Diff([]string{"a", "b"}, pipeline.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestCoerceNumber(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{in: "4", want: 4, wantOK: true},
		{in: " 2.5 ", want: 2.5, wantOK: true},
		{in: "", want: 0, wantOK: true},
		{in: "1e1", want: 10, wantOK: true},
		{in: "abc", wantOK: false},
		{in: "NaN", wantOK: false},
	}
	for _, tc := range cases {
		got, ok := validation.CoerceNumber(tc.in)
		if ok != tc.wantOK {
			t.Fatalf("%q: ok mismatch want %v got %v", tc.in, tc.wantOK, ok)
		}
		if ok && got != tc.want {
			t.Fatalf("%q: want %v got %v", tc.in, tc.want, got)
		}
	}
}
