package lint

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnolang/condlint/internal"
	tt "github.com/gnolang/condlint/internal/types"
)

// DefaultConfigFile is read when no configuration path is given.
const DefaultConfigFile = ".condlint.yaml"

// Config represents the overall configuration with a name and the rule settings.
type Config struct {
	Name   string                   `yaml:"name"`
	Rules  map[string]tt.ConfigRule `yaml:"rules"`
	Locale string                   `yaml:"locale,omitempty"`
}

// DefaultConfig lists every registered rule with its default severity and options.
func DefaultConfig() Config {
	config := Config{
		Name:   "condlint",
		Rules:  make(map[string]tt.ConfigRule),
		Locale: "en",
	}
	for _, rule := range internal.DefaultRules() {
		config.Rules[rule.Name()] = tt.ConfigRule{
			Severity: rule.Severity(),
			Options:  rule.Options(),
		}
	}
	return config
}

// LoadConfig reads the configuration at configurationPath on top of the
// defaults. A rule entry in the file replaces the default entry of that rule.
// A missing DefaultConfigFile is not an error; a missing explicit path is.
func LoadConfig(configurationPath string) (Config, error) {
	config := DefaultConfig()

	explicit := configurationPath != ""
	if !explicit {
		configurationPath = DefaultConfigFile
	}

	data, err := os.ReadFile(configurationPath)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return Config{}, fmt.Errorf("error reading configuration: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return Config{}, fmt.Errorf("error parsing configuration %s: %w", configurationPath, err)
	}

	if fileConfig.Name != "" {
		config.Name = fileConfig.Name
	}
	if fileConfig.Locale != "" {
		config.Locale = fileConfig.Locale
	}
	maps.Copy(config.Rules, fileConfig.Rules)

	return config, nil
}

// WriteConfig stores config as YAML, replacing any existing file.
func WriteConfig(configurationPath string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(configurationPath, d, 0o644)
}

func (c Config) apply(overrides Overrides) Config {
	if overrides.Locale != "" {
		c.Locale = overrides.Locale
	}
	if overrides.RelationalOnly {
		rules := maps.Clone(c.Rules)
		if rules == nil {
			rules = make(map[string]tt.ConfigRule)
		}
		rule, ok := rules[internal.ConditionInversionRuleName]
		if !ok {
			rule = DefaultConfig().Rules[internal.ConditionInversionRuleName]
		}
		options := maps.Clone(rule.Options)
		if options == nil {
			options = make(map[string]any)
		}
		options[internal.OptionApplyOnlyToRelationalOperands] = true
		rule.Options = options
		rules[internal.ConditionInversionRuleName] = rule
		c.Rules = rules
	}
	return c
}
