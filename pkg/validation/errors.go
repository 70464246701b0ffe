package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindRequired         Kind = "required"
	KindInvalidFormat    Kind = "invalid_format"
	KindDomainNotAllowed Kind = "domain_not_allowed"
	KindTooShort         Kind = "too_short"
	KindTooLow           Kind = "too_low"
	KindTooHigh          Kind = "too_high"
	KindTooFewEntries    Kind = "too_few_entries"
	KindDuplicateTitle   Kind = "duplicate_title"
	KindAllBeginnerLevel Kind = "all_beginner_level"
)

// Issue is a single rule violation.
type Issue struct {
	Path    string `json:"path"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	// Rule records the name of the step that failed.
	Rule string `json:"rule,omitempty"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s at %s", i.Kind, i.Path)
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	lim := min(len(iss), maxShown)

	b := &strings.Builder{}
	b.WriteString("validation: ")
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// Has reports whether an issue of kind exists at path.
func (iss Issues) Has(path string, kind Kind) bool {
	for _, issue := range iss {
		if issue.Path == path && issue.Kind == kind {
			return true
		}
	}
	return false
}

// AsIssues extracts Issues from an error.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
