package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"enum-mapper/convert"
)

// LoadFile loads and parses a check file from the given path.
func LoadFile(path string) (*CheckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read check file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a CheckFile and fills in defaults.
func Parse(data []byte) (*CheckFile, error) {
	var cf CheckFile

	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse check file YAML: %w", err)
	}

	applyDefaults(&cf)

	return &cf, nil
}

func applyDefaults(cf *CheckFile) {
	if cf.Version == "" {
		cf.Version = CurrentVersion
	}

	for i := range cf.Pairs {
		if cf.Pairs[i].Mode == "" {
			cf.Pairs[i].Mode = convert.ModeDefault.String()
		}
	}
}

// Marshal serializes a CheckFile to YAML.
func Marshal(cf *CheckFile) ([]byte, error) {
	return yaml.Marshal(cf)
}

// WriteFile writes a CheckFile to the given path.
func WriteFile(cf *CheckFile, path string) error {
	data, err := Marshal(cf)
	if err != nil {
		return fmt.Errorf("failed to marshal check file: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write check file %s: %w", path, err)
	}

	return nil
}
