package column

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads a column definition from a JSON or YAML file, selected
// by file extension, and validates it.
func LoadFromFile(path string) (*Column, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var col Column
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &col); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &col); err != nil {
			return nil, err
		}
	}

	if err := col.Validate(); err != nil {
		return nil, err
	}

	return &col, nil
}
