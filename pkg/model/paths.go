package model

import (
	"strconv"
	"strings"
)

// TechFieldPath returns the dotted path of a tech row leaf, e.g.
// "techs.1.experience".
func TechFieldPath(index int, key string) string {
	return PathTechs + "." + strconv.Itoa(index) + "." + key
}

// ParseTechPath splits a dotted tech path into its row index and leaf key.
// A path addressing the whole row ("techs.2") reports an empty key.
func ParseTechPath(path string) (int, string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(path), PathTechs+".")
	if !ok || rest == "" {
		return 0, "", false
	}
	rawIndex, key, _ := strings.Cut(rest, ".")
	index, err := strconv.Atoi(rawIndex)
	if err != nil || index < 0 {
		return 0, "", false
	}
	switch key {
	case "", TechTitleKey, TechExperienceKey:
		return index, key, true
	default:
		return 0, "", false
	}
}

// JoinPath joins dotted path segments, skipping empty ones.
func JoinPath(parent, child string) string {
	parent = strings.TrimSpace(parent)
	child = strings.TrimSpace(child)
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}
