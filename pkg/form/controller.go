package form

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/validation"
)

// FormErrorPath keys messages that do not belong to a single field.
const FormErrorPath = "form"

// Option configures a Controller.
type Option func(*Controller)

// WithLogger routes controller diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithInitialValues seeds the value tree. Tech rows get fresh IDs; when no
// rows are given the controller keeps its single default row.
func WithInitialValues(values model.RawValues) Option {
	return func(c *Controller) {
		c.name = values.Name
		c.email = values.Email
		c.password = values.Password
		if len(values.Techs) == 0 {
			return
		}
		rows := make([]model.RawTech, len(values.Techs))
		for i, tech := range values.Techs {
			rows[i] = model.RawTech{Title: tech.Title, Experience: tech.Experience}
		}
		c.techs.restore(rows, 0)
	}
}

// Row is the identity and position of a rendered tech row.
type Row struct {
	ID    int
	Index int
}

// Controller owns the live value tree and the error state of one form.
type Controller struct {
	schema validation.Validator
	logger *zap.Logger

	name     string
	email    string
	password string
	techs    *FieldArray

	errors  validation.ErrorTree
	tracked map[string]struct{}

	subs   map[string]map[int]func(string, bool)
	subSeq int
}

// New constructs a controller bound to schema. The tech list starts with one
// empty row because the form always shows at least one.
func New(schema validation.Validator, options ...Option) *Controller {
	if schema == nil {
		schema = validation.NewSchema()
	}
	c := &Controller{
		schema:  schema,
		logger:  zap.NewNop(),
		techs:   NewFieldArray(),
		tracked: make(map[string]struct{}),
		subs:    make(map[string]map[int]func(string, bool)),
	}
	c.techs.Append("", model.DefaultTechExperience)

	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Register returns the binding for path and marks it as tracked.
func (c *Controller) Register(path string) (Binding, error) {
	if !c.hasPath(path) {
		return Binding{}, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	c.tracked[path] = struct{}{}
	return Binding{Path: path, controller: c}, nil
}

// Tracked reports whether path has been registered.
func (c *Controller) Tracked(path string) bool {
	_, ok := c.tracked[path]
	return ok
}

// Value returns the current text at path.
func (c *Controller) Value(path string) (string, error) {
	switch path {
	case model.PathName:
		return c.name, nil
	case model.PathEmail:
		return c.email, nil
	case model.PathPassword:
		return c.password, nil
	}
	index, key, ok := model.ParseTechPath(path)
	if !ok || key == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	row, ok := c.techs.get(index)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	if key == model.TechTitleKey {
		return row.Title, nil
	}
	return row.Experience, nil
}

// SetValue writes text at path. It never validates.
func (c *Controller) SetValue(path, value string) error {
	switch path {
	case model.PathName:
		c.name = value
		return nil
	case model.PathEmail:
		c.email = value
		return nil
	case model.PathPassword:
		c.password = value
		return nil
	}
	index, key, ok := model.ParseTechPath(path)
	if !ok || key == "" {
		return fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	row, ok := c.techs.get(index)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	if key == model.TechTitleKey {
		row.Title = value
	} else {
		row.Experience = value
	}
	c.techs.set(index, row)
	return nil
}

// AppendTech adds an empty tech row with a fresh identity and returns its ID.
func (c *Controller) AppendTech() int {
	id := c.techs.Append("", model.DefaultTechExperience)
	c.logger.Debug("tech row appended", zap.Int("id", id), zap.Int("rows", c.techs.Len()))
	return id
}

// RemoveTech removes the row at index. Error paths of later rows move down by
// one and the removed row's messages are discarded.
func (c *Controller) RemoveTech(index int) error {
	if index < 0 || index >= c.techs.Len() {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if c.techs.Len() == 1 {
		return ErrMinimumRows
	}
	id, err := c.techs.Remove(index)
	if err != nil {
		return err
	}
	c.untrackRow(c.techs.Len())
	c.replaceErrors(c.errors.WithoutRow(index))
	c.logger.Debug("tech row removed", zap.Int("id", id), zap.Int("index", index))
	return nil
}

// Rows returns the identity and position of every tech row.
func (c *Controller) Rows() []Row {
	keys := c.techs.Keys()
	out := make([]Row, len(keys))
	for i, id := range keys {
		out[i] = Row{ID: id, Index: i}
	}
	return out
}

// Values returns a copy of the live value tree.
func (c *Controller) Values() model.RawValues {
	return model.RawValues{
		Name:     c.name,
		Email:    c.email,
		Password: c.password,
		Techs:    c.techs.Entries(),
	}
}

// Submit validates the value tree. On success the errors are cleared and
// onSuccess receives the validated values; the form stays populated. On
// failure the new error tree replaces the previous one and onSuccess is not
// called.
func (c *Controller) Submit(onSuccess func(model.FormValues)) bool {
	values, ok := c.validate()
	if !ok {
		c.logger.Debug("form submission rejected", zap.Strings("paths", c.errors.Paths()))
		return false
	}
	c.logger.Debug("form submission accepted", zap.Int("techs", len(values.Techs)))
	if onSuccess != nil {
		onSuccess(values)
	}
	return true
}

// Trigger re-validates and refreshes the error state without invoking any
// callback.
func (c *Controller) Trigger() bool {
	_, ok := c.validate()
	return ok
}

// Errors returns a copy of the current error tree.
func (c *Controller) Errors() validation.ErrorTree {
	return c.errors.Clone()
}

// Error returns the message currently recorded at path.
func (c *Controller) Error(path string) (string, bool) {
	return c.errors.Get(path)
}

// Snapshot captures values and errors for model builders.
func (c *Controller) Snapshot() model.Snapshot {
	return model.Snapshot{
		Values: c.Values(),
		Errors: c.errors.Clone(),
	}
}

// Subscribe registers fn to be called whenever the message at path changes.
// fn receives the new message and whether one is present. The returned
// function removes the subscription.
func (c *Controller) Subscribe(path string, fn func(message string, present bool)) func() {
	if fn == nil {
		return func() {}
	}
	c.subSeq++
	id := c.subSeq
	if c.subs[path] == nil {
		c.subs[path] = make(map[int]func(string, bool))
	}
	c.subs[path][id] = fn
	return func() {
		delete(c.subs[path], id)
		if len(c.subs[path]) == 0 {
			delete(c.subs, path)
		}
	}
}

func (c *Controller) validate() (model.FormValues, bool) {
	values, tree, err := c.schema.Validate(c.Values())
	if err == nil {
		c.replaceErrors(nil)
		return values, true
	}
	if len(tree) == 0 {
		c.logger.Error("validator failed without field errors", zap.Error(err))
		tree = validation.ErrorTree{FormErrorPath: err.Error()}
	}
	c.replaceErrors(tree)
	return model.FormValues{}, false
}

func (c *Controller) replaceErrors(next validation.ErrorTree) {
	changed := c.errors.ChangedPaths(next)
	c.errors = next
	for _, path := range changed {
		subscribers := c.subs[path]
		if len(subscribers) == 0 {
			continue
		}
		message, present := next.Get(path)
		for _, fn := range subscribers {
			fn(message, present)
		}
	}
}

func (c *Controller) hasPath(path string) bool {
	switch path {
	case model.PathName, model.PathEmail, model.PathPassword:
		return true
	}
	index, key, ok := model.ParseTechPath(path)
	return ok && key != "" && index < c.techs.Len()
}

// untrackRow forgets the leaf paths of a row position that no longer exists.
func (c *Controller) untrackRow(index int) {
	for _, key := range []string{model.TechTitleKey, model.TechExperienceKey} {
		delete(c.tracked, model.TechFieldPath(index, key))
	}
}
