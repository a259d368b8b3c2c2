// Package config loads xlsxlens configuration: embedded defaults superimposed
// by an optional user file.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/render"
)

//go:embed config.yaml
var ConfigTmpl []byte

// APIKeyEnv names the environment variable consulted when no API key is configured.
const APIKeyEnv = "GEMINI_API_KEY"

type (
	ImageConfig struct {
		ViewportWidth  int           `yaml:"viewport_width" validate:"min=1"`
		ViewportHeight int           `yaml:"viewport_height" validate:"min=1"`
		FullPage       bool          `yaml:"full_page"`
		MaxWidth       int           `yaml:"max_width" validate:"gte=0"`
		BrowserPath    string        `yaml:"browser_path"`
		Timeout        time.Duration `yaml:"timeout" validate:"gt=0"`
	}

	AnalysisConfig struct {
		Model        string       `yaml:"model" validate:"required"`
		SystemPrompt string       `yaml:"system_prompt"`
		SendImage    bool         `yaml:"send_image"`
		SendCSV      bool         `yaml:"send_csv"`
		SendRecords  bool         `yaml:"send_records"`
		APIKey       SecretString `yaml:"api_key"`
	}

	BatchConfig struct {
		Workers int `yaml:"workers" validate:"min=1"`
	}

	Config struct {
		Version  int            `yaml:"version" validate:"eq=1"`
		Render   render.Options `yaml:"render"`
		Image    ImageConfig    `yaml:"image"`
		Analysis AnalysisConfig `yaml:"analysis"`
		Batch    BatchConfig    `yaml:"batch"`
		Logging  LoggingConfig  `yaml:"logging"`
	}
)

// Credential returns the configured API key or, when empty, the value of
// the GEMINI_API_KEY environment variable.
func (c *AnalysisConfig) Credential() string {
	if len(c.APIKey) > 0 {
		return string(c.APIKey)
	}
	return os.Getenv(APIKeyEnv)
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
		if err := cfg.Render.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the embedded defaults and, when path is not empty,
// superimposes the file found there. The result is sanitized and validated.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns the default configuration as YAML.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

// Dump returns the effective configuration as YAML. Secrets are masked.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
