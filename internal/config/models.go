package config

// FileConfig represents the structure of an HCL configuration file.
// Durations are written as Go duration strings ("72h", "500ms").
type FileConfig struct {
	Region    string          `hcl:"region,optional"`
	Lookback  string          `hcl:"lookback,optional"`
	Output    string          `hcl:"output,optional"`
	LogLevel  string          `hcl:"log_level,optional"`
	LogFormat string          `hcl:"log_format,optional"`
	Retry     *RetryBlock     `hcl:"retry,block"`
	RateLimit *RateLimitBlock `hcl:"rate_limit,block"`
}

// RetryBlock represents the retry block.
type RetryBlock struct {
	MaxAttempts  *int   `hcl:"max_attempts,optional"`
	InitialDelay string `hcl:"initial_delay,optional"`
}

// RateLimitBlock represents the rate_limit block.
type RateLimitBlock struct {
	RequestsPerSecond *float64 `hcl:"requests_per_second,optional"`
	Burst             *int     `hcl:"burst,optional"`
}
