package aws

import (
	"time"

	"github.com/go-logr/logr"
)

// testOptions returns service options that retry quickly and never rate limit
func testOptions() ServiceOptions {
	return ServiceOptions{
		Logger: logr.Discard(),
		Retry: RetryConfig{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
		},
	}
}
