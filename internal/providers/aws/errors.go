package aws

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

type ErrorCategory string

// Error categories for better error classification and handling
const (
	// ErrResourceNotFound is returned when a requested AWS resource doesn't exist
	ErrResourceNotFound ErrorCategory = "resource_not_found"

	// ErrPermissionDenied is returned when AWS API access is denied
	ErrPermissionDenied ErrorCategory = "permission_denied"

	// ErrThrottling is returned when AWS API throttles the request
	ErrThrottling ErrorCategory = "request_throttled"

	// ErrConfigurationError is returned when there's an issue with AWS configuration
	ErrConfigurationError ErrorCategory = "configuration_error"

	// ErrNetworkError is returned for network-related errors accessing AWS API
	ErrNetworkError ErrorCategory = "network_error"

	// ErrInvalidInput is returned when invalid input is provided
	ErrInvalidInput ErrorCategory = "invalid_input"

	// ErrMalformedInput is returned when an AWS response cannot be decoded
	ErrMalformedInput ErrorCategory = "malformed_input"

	// ErrInternalError is returned for unexpected internal errors
	ErrInternalError ErrorCategory = "internal_error"
)

// Resource types reported in errors
const (
	ENIResourceType        = "ENI"
	LambdaResourceType     = "Lambda"
	CloudTrailResourceType = "CloudTrail"
)

// Error represents an error that occurred during AWS operations with
// additional context about what went wrong.
type Error struct {
	// Category for programmatic error handling
	Category ErrorCategory

	// ResourceType identifies the AWS resource type (e.g., ENI, Lambda)
	ResourceType string

	// ResourceID identifies the specific resource ID when applicable
	ResourceID string

	// Message provides human-readable details
	Message string

	// Underlying is the wrapped cause of this error
	Underlying error
}

// Error returns a formatted error message
func (e *Error) Error() string {
	if e.ResourceID != "" {
		return fmt.Sprintf("%s: %s [resource: %s/%s]", e.Category, e.Message, e.ResourceType, e.ResourceID)
	}
	if e.ResourceType != "" {
		return fmt.Sprintf("%s: %s [resource type: %s]", e.Category, e.Message, e.ResourceType)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Retryable reports whether the failure is worth retrying
func (e *Error) Retryable() bool {
	return e.Category == ErrThrottling || e.Category == ErrNetworkError || e.Category == ErrInternalError
}

// NewAWSError creates a new AWS error with the specified details
func NewAWSError(category ErrorCategory, resourceType, resourceID, message string, underlying error) *Error {
	return &Error{
		Category:     category,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Message:      message,
		Underlying:   underlying,
	}
}

// IsErrorCategory checks if an error belongs to a specific error category
func IsErrorCategory(err error, category ErrorCategory) bool {
	if err == nil {
		return false
	}

	var awsErr *Error
	if errors.As(err, &awsErr) {
		return awsErr.Category == category
	}

	return false
}

// ClassifyAWSError classifies an AWS error based on its API error code, falling
// back to the message for errors raised below the API layer.
func ClassifyAWSError(err error, resourceType, resourceID string) *Error {
	if err == nil {
		return nil
	}

	// Already classified further down the stack
	var awsErr *Error
	if errors.As(err, &awsErr) {
		return awsErr
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if classified := classifyErrorCode(apiErr.ErrorCode(), err, resourceType, resourceID); classified != nil {
			return classified
		}
	}

	errMsg := err.Error()

	switch {
	case contains(errMsg, "NotFound", "ResourceNotFoundException", "does not exist"):
		return NewAWSError(ErrResourceNotFound, resourceType, resourceID,
			"Resource not found", err)

	case contains(errMsg, "UnauthorizedOperation", "AuthFailure", "AccessDenied"):
		return NewAWSError(ErrPermissionDenied, resourceType, resourceID,
			"Access denied", err)

	case contains(errMsg, "RequestLimitExceeded", "Throttling", "TooManyRequests"):
		return NewAWSError(ErrThrottling, resourceType, resourceID,
			"Request throttled", err)

	case contains(errMsg, "InvalidClientTokenId", "could not find region", "failed to retrieve credentials"):
		return NewAWSError(ErrConfigurationError, resourceType, resourceID,
			"AWS SDK configuration error", err)

	case contains(errMsg, "InvalidParameter", "ValidationError", "MalformedQueryString"):
		return NewAWSError(ErrInvalidInput, resourceType, resourceID,
			"Invalid input", err)

	case contains(errMsg, "no such host", "connection refused", "connection reset", "timeout"):
		return NewAWSError(ErrNetworkError, resourceType, resourceID,
			"Network error while accessing AWS API", err)

	default:
		return NewAWSError(ErrInternalError, resourceType, resourceID,
			"Internal error occurred", err)
	}
}

// classifyErrorCode maps standard AWS error codes to a category.
// Reference: https://docs.aws.amazon.com/AWSEC2/latest/APIReference/errors-overview.html
func classifyErrorCode(code string, err error, resourceType, resourceID string) *Error {
	switch {
	case strings.HasSuffix(code, ".NotFound") ||
		code == "ResourceNotFoundException":
		return NewAWSError(ErrResourceNotFound, resourceType, resourceID, "Resource not found", err)

	case code == "UnauthorizedOperation" ||
		code == "AuthFailure" ||
		code == "AccessDenied" ||
		code == "AccessDeniedException":
		return NewAWSError(ErrPermissionDenied, resourceType, resourceID, "Access denied", err)

	case code == "RequestLimitExceeded" ||
		code == "Throttling" ||
		code == "ThrottlingException" ||
		code == "TooManyRequestsException":
		return NewAWSError(ErrThrottling, resourceType, resourceID, "Request throttled", err)

	case code == "InvalidClientTokenId" ||
		code == "UnrecognizedClientException" ||
		code == "ExpiredToken":
		return NewAWSError(ErrConfigurationError, resourceType, resourceID, "AWS SDK configuration error", err)

	case strings.HasPrefix(code, "InvalidParameter") ||
		code == "ValidationError" ||
		code == "InvalidLookupAttributesException" ||
		code == "InvalidTimeRangeException":
		return NewAWSError(ErrInvalidInput, resourceType, resourceID, "Invalid input", err)

	case code == "ServiceUnavailable" ||
		code == "ServiceException" ||
		code == "InternalError":
		return NewAWSError(ErrInternalError, resourceType, resourceID, "AWS service error", err)
	}
	return nil
}

// contains checks if the error message contains any of the provided substrings
func contains(s string, substrings ...string) bool {
	for _, substr := range substrings {
		if strings.Contains(strings.ToLower(s), strings.ToLower(substr)) {
			return true
		}
	}
	return false
}
