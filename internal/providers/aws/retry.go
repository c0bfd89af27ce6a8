package aws

import (
	"context"
	"errors"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/time/rate"
	"k8s.io/apimachinery/pkg/util/wait"
)

// RetryConfig controls how a failed AWS call is retried
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first one
	MaxAttempts int
	// InitialDelay is the wait before the second attempt; it doubles afterwards
	InitialDelay time.Duration
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  5,
		InitialDelay: 1 * time.Second,
	}
}

// backoff converts the configuration to a wait.Backoff
func (c RetryConfig) backoff() wait.Backoff {
	steps := c.MaxAttempts
	if steps < 1 {
		steps = 1
	}
	return wait.Backoff{
		Steps:    steps,
		Duration: c.InitialDelay,
		Factor:   2.0,
		Jitter:   0.1,
	}
}

// ServiceOptions holds the dependencies shared by the AWS services
type ServiceOptions struct {
	Logger  logr.Logger
	Retry   RetryConfig
	Limiter *rate.Limiter
}

// DefaultServiceOptions returns options with a discarding logger,
// the default retry policy and a 10 rps / burst 20 rate limiter.
func DefaultServiceOptions() ServiceOptions {
	return ServiceOptions{
		Logger:  logr.Discard(),
		Retry:   DefaultRetryConfig(),
		Limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

// call describes a single AWS operation for withRetry
type call struct {
	operation    string
	resourceType string
	resourceID   string
}

// withRetry runs fn with exponential backoff. Errors are classified after
// every attempt; only throttling, network and internal errors are retried.
// Cancelling ctx interrupts the backoff sleep as well as the rate limiter.
// The returned error is always a classified *Error.
func withRetry(ctx context.Context, opts ServiceOptions, c call, fn func() error) error {
	log := opts.Logger.WithValues("operation", c.operation)

	var lastErr *Error
	attempt := 0
	err := wait.ExponentialBackoffWithContext(ctx, opts.Retry.backoff(), func() (bool, error) {
		attempt++
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if opts.Limiter != nil {
			if err := opts.Limiter.Wait(ctx); err != nil {
				return false, err
			}
		}

		err := fn()
		if err == nil {
			return true, nil
		}

		lastErr = ClassifyAWSError(err, c.resourceType, c.resourceID)
		if !lastErr.Retryable() {
			return false, lastErr
		}

		log.V(1).Info("Retryable error encountered, will retry",
			"attempt", attempt,
			"category", lastErr.Category,
			"error", err.Error())
		return false, nil
	})

	if err == nil {
		return nil
	}
	if errors.Is(err, wait.ErrWaitTimeout) && lastErr != nil {
		return lastErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NewAWSError(ErrNetworkError, c.resourceType, c.resourceID,
			"Operation cancelled: "+c.operation, err)
	}
	return err
}
