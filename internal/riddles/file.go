package riddles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a riddle pool.
type File struct {
	Riddles []Riddle `yaml:"riddles"`
}

// LoadFile reads a YAML pool file and checks every riddle in it.
func LoadFile(path string) ([]Riddle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read riddle file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse riddle file %s: %w", path, err)
	}
	if len(f.Riddles) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyPool)
	}
	if err := CheckAll(f.Riddles); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.Riddles, nil
}

// WriteFile writes rs as a YAML pool file.
func WriteFile(path string, rs []Riddle) error {
	data, err := yaml.Marshal(File{Riddles: rs})
	if err != nil {
		return fmt.Errorf("encode riddles: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write riddle file: %w", err)
	}
	return nil
}

// CheckAll checks each riddle and rejects repeated texts.
func CheckAll(rs []Riddle) error {
	seen := make(map[string]bool, len(rs))
	for _, r := range rs {
		if err := r.Check(); err != nil {
			return err
		}
		key := normalizeText(r.Text)
		if seen[key] {
			return fmt.Errorf("duplicate riddle %q", r.Text)
		}
		seen[key] = true
	}
	return nil
}
