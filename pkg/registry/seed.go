// pkg/registry/seed.go
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed default_activities.json
var defaultSeed []byte

//go:embed seed_schema.json
var seedSchema []byte

// DefaultSeed returns the built-in seed: the nine Mergington High School
// activities the service ships with.
func DefaultSeed() (*SeedFile, error) {
	return parseSeed(defaultSeed)
}

// LoadSeed reads and validates a seed file from disk.
func LoadSeed(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return parseSeed(data)
}

func parseSeed(data []byte) (*SeedFile, error) {
	if err := validateSeed(data); err != nil {
		return nil, err
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &seed, nil
}

func validateSeed(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(seedSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("seed validation failed: %v", errs)
	}

	return nil
}
