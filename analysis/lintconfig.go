package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

// LintConfig controls which rules Lint runs. Rules is nil by default,
// meaning DefaultRules(); set it to run a custom or reduced rule set.
type LintConfig struct {
	DisabledRules []string `yaml:"disabledRules" json:"disabledRules"`
	Rules         []Rule   `yaml:"-" json:"-"`
}

type lintConfigDoc struct {
	DisabledRules []string `yaml:"disabledRules" json:"disabledRules"`
}

// LoadLintConfig parses and schema-validates a YAML lint configuration
// document (spec §4.6 "lint configuration").
func LoadLintConfig(data []byte) (LintConfig, error) {
	var doc lintConfigDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return LintConfig{}, fmt.Errorf("analysis: parse lint config: %w", err)
	}

	if err := validateLintConfig(doc); err != nil {
		return LintConfig{}, fmt.Errorf("analysis: lint config failed schema validation: %w", err)
	}

	return LintConfig{DisabledRules: doc.DisabledRules}, nil
}

func validateLintConfig(doc lintConfigDoc) error {
	schema, err := jsonschema.For[lintConfigDoc](nil)
	if err != nil {
		return fmt.Errorf("build lint config schema: %w", err)
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolve lint config schema: %w", err)
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal lint config for validation: %w", err)
	}

	var instance any
	if err := json.Unmarshal(encoded, &instance); err != nil {
		return fmt.Errorf("decode lint config for validation: %w", err)
	}

	return resolved.Validate(instance)
}
