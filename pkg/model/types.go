package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeNumber FieldType = "number"
	FieldTypeArray  FieldType = "array"
)

// Field models an individual input inside the rendered form. Name is the
// dotted field path the input is bound to. Struct fields are annotated so
// renderers can serialise them directly when needed.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	InputType   string            `json:"inputType,omitempty"`
	Label       string            `json:"label,omitempty"`
	LabelHTML   string            `json:"labelHtml,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Width       string            `json:"width,omitempty"`
	Value       string            `json:"value,omitempty"`
	Error       string            `json:"error,omitempty"`
	Rows        []Row             `json:"rows,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Row is one entry of an array field. ID is the stable field array identity;
// Index is its current position and therefore part of every nested path.
type Row struct {
	ID     int     `json:"id"`
	Index  int     `json:"index"`
	Fields []Field `json:"fields"`
}

// Actions carries the labels of the form controls that are not inputs.
type Actions struct {
	Submit string `json:"submit"`
	Add    string `json:"add"`
	Remove string `json:"remove"`
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	ID       string            `json:"id"`
	Title    string            `json:"title,omitempty"`
	Endpoint string            `json:"endpoint"`
	Method   string            `json:"method"`
	Fields   []Field           `json:"fields"`
	Actions  Actions           `json:"actions"`
	Errors   []string          `json:"errors,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Field returns the top-level field bound to path.
func (f FormModel) Field(path string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == path {
			return field, true
		}
	}
	return Field{}, false
}

// FieldPaths lists every dotted path in the model, including array rows and
// their leaves, in render order.
func (f FormModel) FieldPaths() []string {
	var out []string
	for _, field := range f.Fields {
		out = append(out, field.Name)
		for _, row := range field.Rows {
			for _, nested := range row.Fields {
				out = append(out, nested.Name)
			}
		}
	}
	return out
}
