package rutego

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML configs can use "30s" style strings.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// FileConfig is the YAML representation of a client configuration:
//
//	baseUrl: https://api.example.com
//	headers:
//	  Authorization: Bearer secret
//	timeout: 30s
//	debug: true
type FileConfig struct {
	BaseURL string            `yaml:"baseUrl"`
	Headers map[string]string `yaml:"headers"`
	Timeout Duration          `yaml:"timeout"`
	Debug   bool              `yaml:"debug"`
}

// LoadConfig parses a YAML client configuration.
func LoadConfig(r io.Reader) (*FileConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var config FileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if config.BaseURL == "" {
		return nil, fmt.Errorf("config: baseUrl is required")
	}
	return &config, nil
}

// Options converts the file configuration into functional options. The base
// URL is not among them; pass it to NewFromConfig or New directly.
func (fc *FileConfig) Options() []Option {
	var options []Option
	if len(fc.Headers) > 0 {
		options = append(options, WithHeaders(fc.Headers))
	}
	if fc.Timeout > 0 {
		options = append(options, WithTimeout(time.Duration(fc.Timeout)))
	}
	if fc.Debug {
		options = append(options, WithSimpleLogger())
	}
	return options
}

// NewFromConfig constructs a Client from a file configuration plus any
// extra options, which take precedence over the file's.
func NewFromConfig(fc *FileConfig, extra ...Option) *Client {
	options := fc.Options()
	options = append(options, extra...)
	return New(fc.BaseURL, options...)
}
