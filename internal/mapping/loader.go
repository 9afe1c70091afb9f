package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"numcast/options"
)

// CurrentVersion is the only mapping file schema version understood.
const CurrentVersion = "1"

// DefaultOutput is the file functions go to when neither the function nor
// the mapping file names one.
const DefaultOutput = "numcast_gen.go"

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a MappingFile.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = CurrentVersion
	}

	if mf.Output == "" {
		mf.Output = DefaultOutput
	}

	if len(mf.Defaults.Policy) == 0 {
		mf.Defaults.Policy = StringOrArray{options.PolicyStrict.String()}
	}

	for i := range mf.Funcs {
		f := &mf.Funcs[i]
		if len(f.Policy) == 0 {
			f.Policy = mf.Defaults.Policy
		}

		if f.Output == "" {
			f.Output = mf.Output
		}
	}
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	return yaml.Marshal(mf)
}
