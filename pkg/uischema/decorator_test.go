package uischema

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/pkg/model"
)

func TestDecorator_AppliesTextsToEveryRow(t *testing.T) {
	doc, err := Default()
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	form := model.NewBuilder().Build(model.Snapshot{
		Values: model.RawValues{
			Name: "Ana",
			Techs: []model.RawTech{
				{ID: 1, Title: "Go", Experience: "2"},
				{ID: 2, Title: "Rust", Experience: "1"},
			},
		},
		Errors: map[string]string{"name": "erro"},
	})

	NewDecorator(doc).Decorate(&form)

	if diff := cmp.Diff(model.Actions{Submit: "Cadastrar", Add: "Adicionar", Remove: "Remover"}, form.Actions); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}
	name, _ := form.Field(model.PathName)
	if name.Label != "Nome" || name.Value != "Ana" || name.Error != "erro" {
		t.Fatalf("unexpected name field %+v", name)
	}
	techs, _ := form.Field(model.PathTechs)
	for _, row := range techs.Rows {
		if row.Fields[0].Label != "Tecnologia" || row.Fields[0].Placeholder != "Ex.: Go" {
			t.Fatalf("row %d title not decorated: %+v", row.Index, row.Fields[0])
		}
		if row.Fields[1].Label != "Anos de experiência" || row.Fields[1].Width != "w-10" {
			t.Fatalf("row %d experience not decorated: %+v", row.Index, row.Fields[1])
		}
	}
}

func TestDecorator_EmptyEntriesKeepDefaults(t *testing.T) {
	form := model.NewBuilder().Build(model.Snapshot{})
	NewDecorator(Document{Fields: map[string]FieldConfig{"email": {}}}).Decorate(&form)

	email, _ := form.Field(model.PathEmail)
	if email.Label != model.PathEmail {
		t.Fatalf("expected builder label to survive, got %q", email.Label)
	}
	if form.Actions.Submit != "submit" {
		t.Fatalf("expected builder submit caption, got %q", form.Actions.Submit)
	}
}

func TestDecorator_NilSafe(t *testing.T) {
	var d *Decorator
	d.Decorate(&model.FormModel{})
	NewDecorator(Document{}).Decorate(nil)
}
