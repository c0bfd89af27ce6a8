package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// Services bundles the collaborators needed for a diagnostic run in one region
type Services struct {
	Region     string
	Interfaces *InterfaceService
	Functions  *FunctionService
	Audit      *AuditService
}

// NewServicesWithDefaultConfig loads the default AWS SDK configuration for region
// and creates all services from it. An empty region falls back to the SDK's
// own resolution (AWS_REGION, shared config).
func NewServicesWithDefaultConfig(ctx context.Context, region string, opts ServiceOptions, audit AuditOptions) (*Services, error) {
	var loadOpts []func(*config.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, NewAWSError(ErrConfigurationError, "", "", "unable to load AWS SDK config", err)
	}
	if cfg.Region == "" {
		return nil, NewAWSError(ErrConfigurationError, "", "", "no AWS region configured", nil)
	}

	return NewServicesFromConfig(cfg, opts, audit), nil
}

// NewServicesFromConfig creates all services from an already loaded AWS config
func NewServicesFromConfig(cfg aws.Config, opts ServiceOptions, audit AuditOptions) *Services {
	return &Services{
		Region:     cfg.Region,
		Interfaces: NewInterfaceServiceWithClient(ec2.NewFromConfig(cfg), opts),
		Functions:  NewFunctionServiceWithClient(lambda.NewFromConfig(cfg), opts),
		Audit:      NewAuditServiceWithClient(cloudtrail.NewFromConfig(cfg), opts, audit),
	}
}

// String implements fmt.Stringer for log output
func (s *Services) String() string {
	return fmt.Sprintf("aws services (region %s)", s.Region)
}
