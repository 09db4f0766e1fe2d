package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"advisorqa/internal/models"
)

// CatalogFile represents the structure of the answer catalog YAML file.
// Answers are matched in the order they appear.
type CatalogFile struct {
	Answers []models.Answer `yaml:"answers"`
}

// LoadCatalogFile loads answers from a YAML catalog file.
// Returns nil without error if path is empty or the file doesn't exist.
func LoadCatalogFile(path string) ([]models.Answer, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Catalog file is optional
			return nil, nil
		}
		return nil, err
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Answers))
	for i, a := range file.Answers {
		if a.ID == "" {
			return nil, fmt.Errorf("catalog %s: answer %d has no id", path, i)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("catalog %s: duplicate answer id %q", path, a.ID)
		}
		seen[a.ID] = true
	}

	return file.Answers, nil
}
