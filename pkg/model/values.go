package model

// Dotted paths of the fixed fields and the tech list.
const (
	PathName     = "name"
	PathEmail    = "email"
	PathPassword = "password"
	PathTechs    = "techs"

	TechTitleKey      = "title"
	TechExperienceKey = "experience"
)

// DefaultTechExperience is the text a freshly appended tech row starts with.
const DefaultTechExperience = "1"

// FormValues is the validated value tree handed to submit callbacks.
type FormValues struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Techs    []TechEntry `json:"techs"`
}

// TechEntry is a validated technology row.
type TechEntry struct {
	Title      string  `json:"title"`
	Experience float64 `json:"experience"`
}

// RawValues is the text value tree held by the form controller before
// validation.
type RawValues struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Techs    []RawTech `json:"techs"`
}

// RawTech is an uncommitted tech row. ID is the row's field array identity and
// is never part of the submitted value tree.
type RawTech struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Experience string `json:"experience"`
}

// Clone returns a deep copy so callers cannot mutate controller state.
func (v RawValues) Clone() RawValues {
	out := v
	if v.Techs != nil {
		out.Techs = make([]RawTech, len(v.Techs))
		copy(out.Techs, v.Techs)
	}
	return out
}
