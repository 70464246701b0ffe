package form

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-signupform/pkg/model"
)

const (
	// TechIDKey is the leaf carrying a row's identity, e.g. techs.0.id.
	TechIDKey = "id"
	// SeqField carries the field array counter between round-trips.
	SeqField = "_seq"
)

// Decode replaces the value tree with the posted form values. Row identities
// are read from techs.<i>.id and the counter from _seq, so rows keep their
// identity across requests. Errors are cleared. When no row is posted the
// single default row is restored.
func (c *Controller) Decode(values url.Values) {
	c.name = values.Get(model.PathName)
	c.email = values.Get(model.PathEmail)
	c.password = values.Get(model.PathPassword)

	byIndex := make(map[int]*model.RawTech)
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		index, leaf, ok := parsePostedTechKey(key)
		if !ok {
			continue
		}
		row := byIndex[index]
		if row == nil {
			row = &model.RawTech{}
			byIndex[index] = row
		}
		switch leaf {
		case model.TechTitleKey:
			row.Title = vals[0]
		case model.TechExperienceKey:
			row.Experience = vals[0]
		case TechIDKey:
			if id, err := strconv.Atoi(strings.TrimSpace(vals[0])); err == nil && id > 0 {
				row.ID = id
			}
		}
	}

	indexes := make([]int, 0, len(byIndex))
	for index := range byIndex {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)

	rows := make([]model.RawTech, 0, len(indexes))
	for _, index := range indexes {
		rows = append(rows, *byIndex[index])
	}

	next, _ := strconv.Atoi(strings.TrimSpace(values.Get(SeqField)))
	c.techs.restore(rows, next)
	if c.techs.Len() == 0 {
		c.techs.Append("", model.DefaultTechExperience)
	}
	c.replaceErrors(nil)
}

// Encode serializes the value tree, row identities and the field array
// counter using the same keys Decode reads.
func (c *Controller) Encode() url.Values {
	out := url.Values{}
	out.Set(model.PathName, c.name)
	out.Set(model.PathEmail, c.email)
	out.Set(model.PathPassword, c.password)
	for index, row := range c.techs.Entries() {
		out.Set(model.TechFieldPath(index, model.TechTitleKey), row.Title)
		out.Set(model.TechFieldPath(index, model.TechExperienceKey), row.Experience)
		out.Set(model.TechFieldPath(index, TechIDKey), strconv.Itoa(row.ID))
	}
	out.Set(SeqField, strconv.Itoa(c.techs.NextID()))
	return out
}

// HiddenState returns the part of Encode that has no visible input: row
// identities and the field array counter.
func (c *Controller) HiddenState() map[string]string {
	out := make(map[string]string, c.techs.Len()+1)
	for index, id := range c.techs.Keys() {
		out[model.TechFieldPath(index, TechIDKey)] = strconv.Itoa(id)
	}
	out[SeqField] = strconv.Itoa(c.techs.NextID())
	return out
}

func parsePostedTechKey(key string) (int, string, bool) {
	rest, ok := strings.CutPrefix(key, model.PathTechs+".")
	if !ok {
		return 0, "", false
	}
	rawIndex, leaf, ok := strings.Cut(rest, ".")
	if !ok {
		return 0, "", false
	}
	index, err := strconv.Atoi(rawIndex)
	if err != nil || index < 0 {
		return 0, "", false
	}
	switch leaf {
	case model.TechTitleKey, model.TechExperienceKey, TechIDKey:
		return index, leaf, true
	default:
		return 0, "", false
	}
}
