package uischema

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-signupform/pkg/model"
)

// LoadFS reads and parses the document at path inside fsys.
func LoadFS(fsys fs.FS, path string) (Document, error) {
	if fsys == nil {
		return Document{}, fmt.Errorf("uischema: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("uischema: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON or YAML document and normalises it. source is used in
// error messages.
func Parse(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	var doc Document
	if err := decode(data, source, &doc); err != nil {
		return Document{}, err
	}
	doc.Source = source
	return normalise(doc)
}

func decode(data []byte, source string, doc *Document) error {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("uischema: parse %s: %w", source, err)
		}
		return nil
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("uischema: parse %s: %w", source, err)
		}
		return nil
	}

	if err := json.Unmarshal(data, doc); err == nil {
		return nil
	}
	if err := yaml.Unmarshal(data, doc); err == nil {
		return nil
	}
	return fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
}

func normalise(doc Document) (Document, error) {
	fields := make(map[string]FieldConfig, len(doc.Fields))
	for rawKey, cfg := range doc.Fields {
		key := strings.TrimSpace(rawKey)
		if !knownFieldKey(key) {
			return Document{}, fmt.Errorf("uischema: file %s: unknown field %q", doc.Source, rawKey)
		}
		if _, dup := fields[key]; dup {
			return Document{}, fmt.Errorf("uischema: file %s: duplicate field %q", doc.Source, key)
		}
		cfg.Label = strings.TrimSpace(cfg.Label)
		cfg.Placeholder = strings.TrimSpace(cfg.Placeholder)
		cfg.Width = strings.TrimSpace(cfg.Width)
		cfg.LabelHTML = sanitizeLabelMarkup(cfg.LabelHTML)
		fields[key] = cfg
	}
	doc.Fields = fields
	doc.Form.Title = strings.TrimSpace(doc.Form.Title)
	return doc, nil
}

// FieldKey returns the document key configuring path; row indexes become "*".
func FieldKey(path string) string {
	if _, key, ok := model.ParseTechPath(path); ok && key != "" {
		return model.PathTechs + ".*." + key
	}
	return path
}

func knownFieldKey(key string) bool {
	switch key {
	case model.PathName, model.PathEmail, model.PathPassword, model.PathTechs,
		model.PathTechs + ".*." + model.TechTitleKey,
		model.PathTechs + ".*." + model.TechExperienceKey:
		return true
	default:
		return false
	}
}
