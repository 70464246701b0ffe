package validation

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`(?i)^[a-z0-9_'+\-.]*[a-z0-9_+\-]@([a-z0-9][a-z0-9\-]*\.)+[a-z]{2,}$`)

// IsEmail reports whether value is a syntactically valid address: a local part
// that neither starts with a dot nor contains consecutive dots, and a dotted
// domain ending in an alphabetic TLD of two or more letters.
func IsEmail(value string) bool {
	if strings.HasPrefix(value, ".") || strings.Contains(value, "..") {
		return false
	}
	return emailPattern.MatchString(value)
}
