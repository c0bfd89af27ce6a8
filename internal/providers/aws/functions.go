package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"eniorphan/internal/models"
)

// FunctionService handles interactions with Lambda function configurations
type FunctionService struct {
	client LambdaClientAPI
	opts   ServiceOptions
}

// NewFunctionServiceWithClient creates a new FunctionService with a provided client
func NewFunctionServiceWithClient(client LambdaClientAPI, opts ServiceOptions) *FunctionService {
	opts.Logger = opts.Logger.WithName("function-service")
	return &FunctionService{
		client: client,
		opts:   opts,
	}
}

// ListFunctionConfigs returns the VPC configuration of every function version
// in the region, in the order Lambda lists them. Versions without a VPC
// configuration are skipped.
func (s *FunctionService) ListFunctionConfigs(ctx context.Context) ([]models.FunctionNetworkConfig, error) {
	paginator := lambda.NewListFunctionsPaginator(s.client, &lambda.ListFunctionsInput{
		FunctionVersion: types.FunctionVersionAll,
	})

	configs := make([]models.FunctionNetworkConfig, 0)
	pages := 0
	for paginator.HasMorePages() {
		var page *lambda.ListFunctionsOutput
		err := withRetry(ctx, s.opts, call{
			operation:    "list functions",
			resourceType: LambdaResourceType,
		}, func() error {
			var err error
			page, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, err
		}
		pages++

		for _, fn := range page.Functions {
			if cfg, ok := toNetworkConfig(fn); ok {
				configs = append(configs, cfg)
			}
		}
	}

	s.opts.Logger.V(1).Info("Listed function versions", "pages", pages, "vpcFunctions", len(configs))
	return configs, nil
}

// toNetworkConfig converts a Lambda function configuration to the domain model
func toNetworkConfig(fn types.FunctionConfiguration) (models.FunctionNetworkConfig, bool) {
	if fn.VpcConfig == nil || len(fn.VpcConfig.SubnetIds) == 0 {
		return models.FunctionNetworkConfig{}, false
	}
	return models.FunctionNetworkConfig{
		ARN:              aws.ToString(fn.FunctionArn),
		SubnetIDs:        models.NormalizeIDs(fn.VpcConfig.SubnetIds),
		SecurityGroupIDs: models.NormalizeIDs(fn.VpcConfig.SecurityGroupIds),
	}, true
}
