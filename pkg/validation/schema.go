package validation

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/goliatone/go-signupform/pkg/model"
)

// Validator turns a raw value tree into a validated one or an ErrorTree.
type Validator interface {
	Validate(raw model.RawValues) (model.FormValues, ErrorTree, error)
}

// Option configures the schema.
type Option func(*Schema)

// WithLanguage selects the casing rules used to capitalize names.
func WithLanguage(tag language.Tag) Option {
	return func(s *Schema) {
		s.lang = tag
	}
}

// Schema is the registration form schema. It is immutable after construction
// and safe to share.
type Schema struct {
	lang       language.Tag
	name       Pipeline[string]
	email      Pipeline[string]
	password   Pipeline[string]
	title      Pipeline[string]
	experience Pipeline[float64]
	techs      Pipeline[[]model.TechEntry]
	refine     Pipeline[[]model.TechEntry]
}

var _ Validator = (*Schema)(nil)

// NewSchema builds the registration schema.
func NewSchema(options ...Option) *Schema {
	s := &Schema{lang: language.BrazilianPortuguese}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	s.name = Pipeline[string]{
		Check("name.required", KindRequired, MsgNameRequired, notBlank),
		Transform("name.capitalize", func(v string) string {
			return CapitalizeWords(v, s.lang)
		}),
	}
	s.email = Pipeline[string]{
		Check("email.required", KindRequired, MsgEmailRequired, notEmpty),
		Check("email.format", KindInvalidFormat, MsgEmailInvalid, IsEmail),
		Transform("email.lowercase", strings.ToLower),
		Check("email.domain", KindDomainNotAllowed, MsgEmailDomain, func(v string) bool {
			return strings.HasSuffix(v, AllowedEmailDomain)
		}),
	}
	s.password = Pipeline[string]{
		Check("password.min", KindTooShort, MsgPasswordTooShort, func(v string) bool {
			return utf8.RuneCountInString(v) >= MinPasswordLength
		}),
	}
	s.title = Pipeline[string]{
		Check("techs.title.required", KindRequired, MsgTechTitleRequired, notEmpty),
	}
	s.experience = Pipeline[float64]{
		Check("techs.experience.min", KindTooLow, MsgExperienceTooLow, func(v float64) bool {
			return v >= MinExperience
		}),
		Check("techs.experience.max", KindTooHigh, MsgExperienceTooHigh, func(v float64) bool {
			return v <= MaxExperience
		}),
	}
	s.techs = Pipeline[[]model.TechEntry]{
		Check("techs.min", KindTooFewEntries, MsgTechsTooFew, func(v []model.TechEntry) bool {
			return len(v) >= MinTechs
		}),
	}
	s.refine = Pipeline[[]model.TechEntry]{
		Check("techs.unique_title", KindDuplicateTitle, MsgTechsDuplicateTitle, uniqueTitles),
		Check("techs.experienced", KindAllBeginnerLevel, MsgTechsAllBeginner, anyExperienced),
	}
	return s
}

// Validate runs every field pipeline. Top-level fields are independent; the
// array rules run after the per-entry rules and attach to "techs". The
// refinements over entry contents (unique titles, experience level) are
// skipped when an experience could not be read as a number.
func (s *Schema) Validate(raw model.RawValues) (model.FormValues, ErrorTree, error) {
	var (
		out    model.FormValues
		issues Issues
	)
	collect := func(issue *Issue) {
		if issue != nil {
			issues = append(issues, *issue)
		}
	}

	var issue *Issue
	out.Name, issue = s.name.Run(model.PathName, raw.Name)
	collect(issue)
	out.Email, issue = s.email.Run(model.PathEmail, raw.Email)
	collect(issue)
	out.Password, issue = s.password.Run(model.PathPassword, raw.Password)
	collect(issue)

	entries := make([]model.TechEntry, 0, len(raw.Techs))
	coerced := true
	for index, tech := range raw.Techs {
		var entry model.TechEntry
		entry.Title, issue = s.title.Run(model.TechFieldPath(index, model.TechTitleKey), tech.Title)
		collect(issue)

		experiencePath := model.TechFieldPath(index, model.TechExperienceKey)
		number, ok := CoerceNumber(tech.Experience)
		if !ok {
			collect(&Issue{
				Path:    experiencePath,
				Kind:    KindInvalidFormat,
				Message: MsgExperienceInvalid,
				Rule:    "techs.experience.number",
			})
			number = math.NaN()
			coerced = false
		} else {
			number, issue = s.experience.Run(experiencePath, number)
			collect(issue)
		}
		entry.Experience = number
		entries = append(entries, entry)
	}

	out.Techs, issue = s.techs.Run(model.PathTechs, entries)
	if issue == nil && coerced {
		out.Techs, issue = s.refine.Run(model.PathTechs, out.Techs)
	}
	collect(issue)

	if len(issues) > 0 {
		return model.FormValues{}, TreeFromIssues(issues), issues
	}
	return out, nil, nil
}

// CoerceNumber converts entered text into a number. Blank text coerces to 0;
// text that is not a number (or is NaN) is rejected.
func CoerceNumber(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, true
	}
	number, err := strconv.ParseFloat(trimmed, 64)
	if err != nil && !isRangeError(err) {
		return 0, false
	}
	if math.IsNaN(number) {
		return 0, false
	}
	return number, true
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

func notEmpty(v string) bool {
	return v != ""
}

func notBlank(v string) bool {
	return strings.TrimSpace(v) != ""
}

func uniqueTitles(entries []model.TechEntry) bool {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if _, dup := seen[entry.Title]; dup {
			return false
		}
		seen[entry.Title] = struct{}{}
	}
	return true
}

func anyExperienced(entries []model.TechEntry) bool {
	for _, entry := range entries {
		if entry.Experience > MinExperience {
			return true
		}
	}
	return false
}
