package form_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/pkg/form"
	"github.com/goliatone/go-signupform/pkg/model"
)

func TestController_EncodeDecodeRoundTrip(t *testing.T) {
	source := form.New(nil)
	source.AppendTech()
	source.AppendTech()
	if err := source.RemoveTech(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_ = source.SetValue("name", "ana")
	_ = source.SetValue("techs.1.title", "Rust")

	encoded := source.Encode()

	target := form.New(nil)
	target.Decode(encoded)

	if diff := cmp.Diff(source.Values(), target.Values()); diff != "" {
		t.Fatalf("decoded values mismatch (-want +got):\n%s", diff)
	}

	appended := target.AppendTech()
	for _, row := range source.Rows() {
		if row.ID == appended {
			t.Fatalf("decoded controller reissued identity %d", appended)
		}
	}
	if appended != 4 {
		t.Fatalf("expected the counter to continue at 4, got %d", appended)
	}
}

func TestController_DecodeCompactsSparseRows(t *testing.T) {
	c := form.New(nil)
	c.Decode(url.Values{
		"name":               {"ana"},
		"techs.3.title":      {"Rust"},
		"techs.3.id":         {"9"},
		"techs.0.title":      {"Go"},
		"techs.0.experience": {"2"},
		"techs.0.id":         {"2"},
		"techs.x.title":      {"ignored"},
		"techs.1.unknown":    {"ignored"},
		"_seq":               {"12"},
	})

	want := []model.RawTech{
		{ID: 2, Title: "Go", Experience: "2"},
		{ID: 9, Title: "Rust"},
	}
	if diff := cmp.Diff(want, c.Values().Techs); diff != "" {
		t.Fatalf("decoded rows mismatch (-want +got):\n%s", diff)
	}
	if id := c.AppendTech(); id != 12 {
		t.Fatalf("expected posted counter to be honoured, got %d", id)
	}
}

func TestController_DecodeWithoutRowsKeepsDefaultRow(t *testing.T) {
	c := form.New(nil)
	c.Decode(url.Values{"name": {"ana"}})

	techs := c.Values().Techs
	if len(techs) != 1 || techs[0].Experience != model.DefaultTechExperience {
		t.Fatalf("expected a single default row, got %+v", techs)
	}
}

func TestController_HiddenState(t *testing.T) {
	c := form.New(nil)
	c.AppendTech()
	c.AppendTech()
	if err := c.RemoveTech(0); err != nil {
		t.Fatalf("remove: %v", err)
	}

	want := map[string]string{
		"techs.0.id": "2",
		"techs.1.id": "3",
		"_seq":       "4",
	}
	if diff := cmp.Diff(want, c.HiddenState()); diff != "" {
		t.Fatalf("hidden state mismatch (-want +got):\n%s", diff)
	}
}
