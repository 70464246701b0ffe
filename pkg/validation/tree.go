package validation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-signupform/pkg/model"
)

// ErrorTree maps dotted field paths (e.g. "techs.0.title") to the message of
// the first rule that failed there. Array rules attach to "techs" itself.
type ErrorTree map[string]string

// TreeFromIssues builds an ErrorTree keeping the first message per path.
func TreeFromIssues(issues Issues) ErrorTree {
	if len(issues) == 0 {
		return nil
	}
	tree := make(ErrorTree, len(issues))
	for _, issue := range issues {
		if _, exists := tree[issue.Path]; exists {
			continue
		}
		tree[issue.Path] = issue.Message
	}
	return tree
}

// Get returns the message recorded at path.
func (t ErrorTree) Get(path string) (string, bool) {
	if t == nil {
		return "", false
	}
	msg, ok := t[path]
	return msg, ok
}

// Paths returns the recorded paths sorted for deterministic output.
func (t ErrorTree) Paths() []string {
	if len(t) == 0 {
		return nil
	}
	out := make([]string, 0, len(t))
	for path := range t {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// Clone returns a copy of the tree.
func (t ErrorTree) Clone() ErrorTree {
	if t == nil {
		return nil
	}
	out := make(ErrorTree, len(t))
	for path, msg := range t {
		out[path] = msg
	}
	return out
}

// WithoutRow drops every path under techs.<index> and moves the paths of
// later rows down by one, matching positional paths after a row removal.
func (t ErrorTree) WithoutRow(index int) ErrorTree {
	if len(t) == 0 {
		return nil
	}
	out := make(ErrorTree, len(t))
	for path, msg := range t {
		rowIndex, key, ok := model.ParseTechPath(path)
		switch {
		case !ok:
			out[path] = msg
		case rowIndex == index:
			continue
		case rowIndex > index:
			out[shiftedPath(rowIndex-1, key)] = msg
		default:
			out[path] = msg
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ChangedPaths lists every path whose message differs between t and next,
// including paths present in only one of them.
func (t ErrorTree) ChangedPaths(next ErrorTree) []string {
	seen := make(map[string]struct{}, len(t)+len(next))
	var out []string
	for path, msg := range t {
		seen[path] = struct{}{}
		if other, ok := next[path]; !ok || other != msg {
			out = append(out, path)
		}
	}
	for path := range next {
		if _, ok := seen[path]; ok {
			continue
		}
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

func shiftedPath(index int, key string) string {
	if key == "" {
		return strings.Join([]string{model.PathTechs, strconv.Itoa(index)}, ".")
	}
	return model.TechFieldPath(index, key)
}
