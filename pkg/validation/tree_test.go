package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/pkg/validation"
)

func TestTreeFromIssues_FirstMessagePerPathWins(t *testing.T) {
	tree := validation.TreeFromIssues(validation.Issues{
		{Path: "techs", Kind: validation.KindTooFewEntries, Message: "first"},
		{Path: "techs", Kind: validation.KindDuplicateTitle, Message: "second"},
		{Path: "name", Kind: validation.KindRequired, Message: "name"},
	})

	want := validation.ErrorTree{"techs": "first", "name": "name"}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorTree_WithoutRowShiftsLaterRows(t *testing.T) {
	tree := validation.ErrorTree{
		"name":               "name",
		"techs":              "array",
		"techs.0.title":      "row0",
		"techs.1.title":      "row1-title",
		"techs.1.experience": "row1-exp",
		"techs.2.experience": "row2-exp",
		"techs.3":            "row3",
	}

	got := tree.WithoutRow(1)

	want := validation.ErrorTree{
		"name":               "name",
		"techs":              "array",
		"techs.0.title":      "row0",
		"techs.1.experience": "row2-exp",
		"techs.2":            "row3",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shifted tree mismatch (-want +got):\n%s", diff)
	}
	if _, ok := tree["techs.3"]; !ok {
		t.Fatalf("WithoutRow must not mutate the receiver")
	}
}

func TestErrorTree_ChangedPaths(t *testing.T) {
	before := validation.ErrorTree{"name": "a", "email": "b", "password": "c"}
	after := validation.ErrorTree{"name": "a", "email": "changed", "techs": "new"}

	want := []string{"email", "password", "techs"}
	if diff := cmp.Diff(want, before.ChangedPaths(after)); diff != "" {
		t.Fatalf("changed paths mismatch (-want +got):\n%s", diff)
	}

	var empty validation.ErrorTree
	if got := empty.ChangedPaths(nil); len(got) != 0 {
		t.Fatalf("expected no changes between empty trees, got %v", got)
	}
}

func TestErrorTree_GetOnNil(t *testing.T) {
	var tree validation.ErrorTree
	if _, ok := tree.Get("name"); ok {
		t.Fatalf("nil tree must not report messages")
	}
	if tree.Clone() != nil {
		t.Fatalf("clone of nil tree must be nil")
	}
}
