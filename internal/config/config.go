package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// MaxLookback matches the CloudTrail event history retention.
const MaxLookback = 90 * 24 * time.Hour

// Config holds every setting of a diagnostic run.
type Config struct {
	InterfaceID string
	Region      string
	Lookback    time.Duration
	Output      string
	LogLevel    string
	LogFormat   string

	MaxAttempts  int
	InitialDelay time.Duration

	RequestsPerSecond float64
	Burst             int
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Lookback:          7 * 24 * time.Hour,
		Output:            "table",
		LogLevel:          "info",
		LogFormat:         "console",
		MaxAttempts:       5,
		InitialDelay:      time.Second,
		RequestsPerSecond: 10,
		Burst:             20,
	}
}

// LoadFile parses an HCL configuration file.
func LoadFile(path string) (*FileConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
	}

	if file == nil || file.Body == nil {
		return nil, fmt.Errorf("parsed HCL file is empty or invalid: %s", path)
	}

	// FileConfig has no remain field, so unknown attributes and blocks are
	// reported as unsupported by the decoder.
	var fc FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL body %s: %s", path, diags.Error())
	}

	return &fc, nil
}

// ApplyFile overlays the values set in fc onto c.
func (c *Config) ApplyFile(fc *FileConfig) error {
	if fc == nil {
		return nil
	}

	if fc.Region != "" {
		c.Region = fc.Region
	}
	if fc.Lookback != "" {
		d, err := time.ParseDuration(fc.Lookback)
		if err != nil {
			return fmt.Errorf("invalid lookback %q: %w", fc.Lookback, err)
		}
		c.Lookback = d
	}
	if fc.Output != "" {
		c.Output = fc.Output
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}

	if fc.Retry != nil {
		if fc.Retry.MaxAttempts != nil {
			c.MaxAttempts = *fc.Retry.MaxAttempts
		}
		if fc.Retry.InitialDelay != "" {
			d, err := time.ParseDuration(fc.Retry.InitialDelay)
			if err != nil {
				return fmt.Errorf("invalid retry.initial_delay %q: %w", fc.Retry.InitialDelay, err)
			}
			c.InitialDelay = d
		}
	}

	if fc.RateLimit != nil {
		if fc.RateLimit.RequestsPerSecond != nil {
			c.RequestsPerSecond = *fc.RateLimit.RequestsPerSecond
		}
		if fc.RateLimit.Burst != nil {
			c.Burst = *fc.RateLimit.Burst
		}
	}

	return nil
}

// ApplyEnv fills the region from AWS_REGION when nothing else set it.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if c.Region == "" {
		c.Region = getenv("AWS_REGION")
	}
}

// Validate checks that the configuration can drive a diagnostic run.
func (c Config) Validate() error {
	if c.InterfaceID == "" {
		return fmt.Errorf("network interface ID is required")
	}
	if !strings.HasPrefix(c.InterfaceID, "eni-") {
		return fmt.Errorf("invalid network interface ID %q: expected an eni- prefix", c.InterfaceID)
	}
	if c.Lookback <= 0 || c.Lookback > MaxLookback {
		return fmt.Errorf("lookback must be between 0 and %s, got %s", MaxLookback, c.Lookback)
	}
	switch strings.ToLower(c.Output) {
	case "table", "json":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Output)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("retry max_attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.InitialDelay < 0 {
		return fmt.Errorf("retry initial_delay must not be negative")
	}
	if c.RequestsPerSecond <= 0 || c.Burst < 1 {
		return fmt.Errorf("rate limit must allow at least one request")
	}
	return nil
}
