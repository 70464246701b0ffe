package tui

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/pkg/model"
)

// Theme captures the prefixes applied when printing messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme returns the prefixes used when none are configured.
func DefaultTheme() Theme {
	return Theme{InfoPrefix: "", ErrorPrefix: "✗ "}
}

// Labels are the texts shown for each prompt.
type Labels struct {
	Name       string
	Email      string
	Password   string
	Techs      string
	Title      string
	Experience string
	Add        string
	Remove     string
}

// DefaultLabels returns the Portuguese prompt texts.
func DefaultLabels() Labels {
	return Labels{
		Name:       "Nome",
		Email:      "Email",
		Password:   "Senha",
		Techs:      "Tecnologias",
		Title:      "Título",
		Experience: "Anos de experiência",
		Add:        "Adicionar outra tecnologia?",
		Remove:     "Remover esta tecnologia?",
	}
}

// LabelsFromForm overlays the labels of a decorated form model on the
// defaults. Tech row labels are read from the first row.
func LabelsFromForm(form model.FormModel) Labels {
	labels := DefaultLabels()
	pick := func(current, candidate, path string) string {
		if candidate == "" || candidate == path {
			return current
		}
		return candidate
	}
	if field, ok := form.Field(model.PathName); ok {
		labels.Name = pick(labels.Name, field.Label, field.Name)
	}
	if field, ok := form.Field(model.PathEmail); ok {
		labels.Email = pick(labels.Email, field.Label, field.Name)
	}
	if field, ok := form.Field(model.PathPassword); ok {
		labels.Password = pick(labels.Password, field.Label, field.Name)
	}
	if field, ok := form.Field(model.PathTechs); ok {
		labels.Techs = pick(labels.Techs, field.Label, field.Name)
		if len(field.Rows) > 0 {
			for _, nested := range field.Rows[0].Fields {
				_, key, _ := model.ParseTechPath(nested.Name)
				switch key {
				case model.TechTitleKey:
					labels.Title = pick(labels.Title, nested.Label, nested.Name)
				case model.TechExperienceKey:
					labels.Experience = pick(labels.Experience, nested.Label, nested.Name)
				}
			}
		}
	}
	return labels
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithLabels sets the prompt texts.
func WithLabels(labels Labels) Option {
	return func(s *Session) {
		s.labels = labels
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithMaxAttempts bounds the number of submits. Zero means unbounded.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxAttempts = n
		}
	}
}

// WithOnSuccess registers fn to receive the validated values of the
// successful submit, before the output is printed.
func WithOnSuccess(fn func(model.FormValues)) Option {
	return func(s *Session) {
		s.onSuccess = fn
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
