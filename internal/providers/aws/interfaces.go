package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"eniorphan/internal/models"
)

// EC2ClientAPI defines the EC2 operations we need to mock
//
//go:generate mockery --name=EC2ClientAPI --output=./mocks
type EC2ClientAPI interface {
	DescribeNetworkInterfaces(ctx context.Context, params *ec2.DescribeNetworkInterfacesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNetworkInterfacesOutput, error)
}

// LambdaClientAPI defines the Lambda operations we need to mock.
// It satisfies lambda.ListFunctionsAPIClient.
//
//go:generate mockery --name=LambdaClientAPI --output=./mocks
type LambdaClientAPI interface {
	ListFunctions(ctx context.Context, params *lambda.ListFunctionsInput, optFns ...func(*lambda.Options)) (*lambda.ListFunctionsOutput, error)
}

// CloudTrailClientAPI defines the CloudTrail operations we need to mock.
// It satisfies cloudtrail.LookupEventsAPIClient.
//
//go:generate mockery --name=CloudTrailClientAPI --output=./mocks
type CloudTrailClientAPI interface {
	LookupEvents(ctx context.Context, params *cloudtrail.LookupEventsInput, optFns ...func(*cloudtrail.Options)) (*cloudtrail.LookupEventsOutput, error)
}

// InterfaceServiceAPI fetches network interface metadata
//
//go:generate mockery --name=InterfaceServiceAPI --output=./mocks
type InterfaceServiceAPI interface {
	FetchInterfaceInfo(ctx context.Context, interfaceID string) (*models.NetworkInterfaceInfo, error)
}

// FunctionServiceAPI fetches the network configuration of function versions
//
//go:generate mockery --name=FunctionServiceAPI --output=./mocks
type FunctionServiceAPI interface {
	ListFunctionConfigs(ctx context.Context) ([]models.FunctionNetworkConfig, error)
}

// AuditServiceAPI fetches candidate audit events for an interface
//
//go:generate mockery --name=AuditServiceAPI --output=./mocks
type AuditServiceAPI interface {
	FetchAuditEvents(ctx context.Context, interfaceID string) ([]models.AuditEvent, error)
}
