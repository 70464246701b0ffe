package uischema

import (
	"github.com/goliatone/go-signupform/pkg/model"
)

// Decorator applies a Document to built form models.
type Decorator struct {
	doc Document
}

// NewDecorator returns a decorator for doc.
func NewDecorator(doc Document) *Decorator {
	return &Decorator{doc: doc}
}

// Decorate overwrites the texts of form with the configured ones. Values and
// errors are left untouched; empty configuration entries keep the builder's
// defaults.
func (d *Decorator) Decorate(form *model.FormModel) {
	if d == nil || form == nil {
		return
	}

	if d.doc.Form.Title != "" {
		form.Title = d.doc.Form.Title
	}
	actions := d.doc.Form.Actions
	if actions.Submit != "" {
		form.Actions.Submit = actions.Submit
	}
	if actions.Add != "" {
		form.Actions.Add = actions.Add
	}
	if actions.Remove != "" {
		form.Actions.Remove = actions.Remove
	}

	for i := range form.Fields {
		d.decorateField(&form.Fields[i])
		for r := range form.Fields[i].Rows {
			row := &form.Fields[i].Rows[r]
			for n := range row.Fields {
				d.decorateField(&row.Fields[n])
			}
		}
	}
}

func (d *Decorator) decorateField(field *model.Field) {
	cfg, ok := d.doc.Fields[FieldKey(field.Name)]
	if !ok {
		return
	}
	if cfg.Label != "" {
		field.Label = cfg.Label
	}
	if cfg.LabelHTML != "" {
		field.LabelHTML = cfg.LabelHTML
	}
	if cfg.Placeholder != "" {
		field.Placeholder = cfg.Placeholder
	}
	if cfg.Width != "" {
		field.Width = cfg.Width
	}
}
