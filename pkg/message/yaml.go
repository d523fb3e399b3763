package message

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a translation document whose top-level keys are
// language codes:
//
//	en:
//	  validation:
//	    gt: "is not greater than %{expected}"
func ParseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		entries, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = entries
	}
	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

// LoadFS reads every named YAML file from fsys and merges them. Later files
// replace whole languages defined by earlier ones.
func LoadFS(fsys fs.FS, names ...string) (map[string]map[string]any, error) {
	merged := make(map[string]map[string]any)
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		parsed, err := ParseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		maps.Copy(merged, parsed)
	}
	return merged, nil
}
