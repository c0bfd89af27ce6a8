package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"eniorphan/internal/models"
)

// InterfaceService handles interactions with EC2 network interfaces
type InterfaceService struct {
	client EC2ClientAPI
	opts   ServiceOptions
}

// NewInterfaceServiceWithClient creates a new InterfaceService with a provided client
func NewInterfaceServiceWithClient(client EC2ClientAPI, opts ServiceOptions) *InterfaceService {
	opts.Logger = opts.Logger.WithName("eni-service")
	return &InterfaceService{
		client: client,
		opts:   opts,
	}
}

// FetchInterfaceInfo retrieves the subnet and security groups of a network interface.
func (s *InterfaceService) FetchInterfaceInfo(ctx context.Context, interfaceID string) (*models.NetworkInterfaceInfo, error) {
	log := s.opts.Logger.WithValues("eniID", interfaceID)
	log.V(1).Info("Describing network interface")

	var resp *ec2.DescribeNetworkInterfacesOutput
	err := withRetry(ctx, s.opts, call{
		operation:    fmt.Sprintf("describe network interface %s", interfaceID),
		resourceType: ENIResourceType,
		resourceID:   interfaceID,
	}, func() error {
		var err error
		resp, err = s.client.DescribeNetworkInterfaces(ctx, &ec2.DescribeNetworkInterfacesInput{
			NetworkInterfaceIds: []string{interfaceID},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(resp.NetworkInterfaces) == 0 {
		return nil, NewAWSError(ErrResourceNotFound, ENIResourceType, interfaceID,
			"Network interface not found", nil)
	}

	eni := resp.NetworkInterfaces[0]
	groupIDs := make([]string, 0, len(eni.Groups))
	for _, group := range eni.Groups {
		groupIDs = append(groupIDs, aws.ToString(group.GroupId))
	}

	info := &models.NetworkInterfaceInfo{
		ID:               interfaceID,
		SubnetID:         aws.ToString(eni.SubnetId),
		SecurityGroupIDs: models.NormalizeIDs(groupIDs),
		Description:      aws.ToString(eni.Description),
		Status:           string(eni.Status),
		InterfaceType:    string(eni.InterfaceType),
	}

	log.V(1).Info("Described network interface",
		"subnetID", info.SubnetID,
		"securityGroups", info.SecurityGroupIDs,
		"status", info.Status)
	return info, nil
}
