package uischema

// Document is the UI overlay for the registration form.
type Document struct {
	Source string                 `json:"-" yaml:"-"`
	Form   FormConfig             `json:"form" yaml:"form"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

// FormConfig carries form level texts.
type FormConfig struct {
	Title   string        `json:"title" yaml:"title"`
	Actions ActionsConfig `json:"actions" yaml:"actions"`
}

// ActionsConfig holds the button captions.
type ActionsConfig struct {
	Submit string `json:"submit" yaml:"submit"`
	Add    string `json:"add" yaml:"add"`
	Remove string `json:"remove" yaml:"remove"`
}

// FieldConfig holds the texts of a single field. Tech row fields are keyed
// with a wildcard index, e.g. "techs.*.title".
type FieldConfig struct {
	Label       string `json:"label" yaml:"label"`
	LabelHTML   string `json:"labelHtml" yaml:"labelHtml"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	Width       string `json:"width" yaml:"width"`
}
