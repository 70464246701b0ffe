package model

import "strings"

// Snapshot is the controller state a form model is built from.
type Snapshot struct {
	Values RawValues
	Errors map[string]string
}

// Builder converts controller snapshots into form models.
type Builder interface {
	Build(snapshot Snapshot) FormModel
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builder)

// WithEndpoint overrides the action URL the form posts to.
func WithEndpoint(endpoint string) BuilderOption {
	return func(b *builder) {
		if trimmed := strings.TrimSpace(endpoint); trimmed != "" {
			b.endpoint = trimmed
		}
	}
}

// WithFormID overrides the form identifier.
func WithFormID(id string) BuilderOption {
	return func(b *builder) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			b.id = trimmed
		}
	}
}

type builder struct {
	id       string
	endpoint string
}

// NewBuilder returns the registration form builder. Labels are left as the
// field paths; a UI schema decorator is expected to supply display texts.
func NewBuilder(options ...BuilderOption) Builder {
	b := &builder{
		id:       "create-user",
		endpoint: "/",
	}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

func (b *builder) Build(snapshot Snapshot) FormModel {
	values := snapshot.Values
	errs := snapshot.Errors

	form := FormModel{
		ID:       b.id,
		Endpoint: b.endpoint,
		Method:   "POST",
		Actions: Actions{
			Submit: "submit",
			Add:    "add",
			Remove: "remove",
		},
	}

	form.Fields = []Field{
		textField(PathName, "text", values.Name, errs),
		textField(PathEmail, "text", values.Email, errs),
		textField(PathPassword, "password", values.Password, errs),
	}

	techs := Field{
		Name:  PathTechs,
		Type:  FieldTypeArray,
		Label: PathTechs,
		Error: errs[PathTechs],
		Rows:  make([]Row, 0, len(values.Techs)),
	}
	for index, tech := range values.Techs {
		title := textField(TechFieldPath(index, TechTitleKey), "text", tech.Title, errs)
		experience := textField(TechFieldPath(index, TechExperienceKey), "number", tech.Experience, errs)
		experience.Type = FieldTypeNumber
		experience.Width = "w-10"
		techs.Rows = append(techs.Rows, Row{
			ID:     tech.ID,
			Index:  index,
			Fields: []Field{title, experience},
		})
	}
	form.Fields = append(form.Fields, techs)

	return form
}

func textField(path, inputType, value string, errs map[string]string) Field {
	return Field{
		Name:      path,
		Type:      FieldTypeString,
		InputType: inputType,
		Label:     path,
		Value:     value,
		Error:     errs[path],
	}
}
