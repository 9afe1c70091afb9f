package casefile

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"numcast/options"
)

// CurrentVersion is the only case file schema version understood.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML case file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse case YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.Defaults.Policy == 0 {
		f.Defaults.Policy = options.PolicyStrict
	}

	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			c.Name = "case-" + strconv.Itoa(i+1)
		}

		if c.From == "" {
			c.From = f.Defaults.From
		}

		if c.To == "" {
			c.To = f.Defaults.To
		}

		if c.Policy == 0 {
			c.Policy = f.Defaults.Policy
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal cases: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write case file %s: %w", path, err)
	}

	return nil
}
