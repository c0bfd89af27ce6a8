package models

import (
	"slices"
	"sort"
	"strings"
	"time"
)

// NetworkInterfaceInfo is a snapshot of the ENI under diagnosis.
type NetworkInterfaceInfo struct {
	ID               string   `json:"id"`
	SubnetID         string   `json:"subnet_id"`
	SecurityGroupIDs []string `json:"security_group_ids"`
	Description      string   `json:"description,omitempty"`
	Status           string   `json:"status,omitempty"`
	InterfaceType    string   `json:"interface_type,omitempty"`
}

// FunctionNetworkConfig holds the VPC placement of a single function version.
type FunctionNetworkConfig struct {
	ARN              string   `json:"arn"`
	SubnetIDs        []string `json:"subnet_ids"`
	SecurityGroupIDs []string `json:"security_group_ids"`
}

// AuditEvent is one recorded configuration-change API call.
type AuditEvent struct {
	EventID   string    `json:"event_id,omitempty"`
	EventName string    `json:"event_name"`
	EventTime time.Time `json:"event_time,omitempty"`
	Username  string    `json:"username,omitempty"`
	Payload   string    `json:"-"`
	HasError  bool      `json:"has_error"`
	// Malformed is set when the payload could not be decoded.
	Malformed bool `json:"malformed,omitempty"`
}

// NormalizeIDs trims, deduplicates and sorts a list of resource identifiers.
// Empty entries are dropped. The input slice is not modified.
func NormalizeIDs(ids []string) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		result = append(result, id)
	}
	sort.Strings(result)
	return slices.Compact(result)
}

// FilterBySubnet returns the configs that reference subnetID, in input order.
func FilterBySubnet(configs []FunctionNetworkConfig, subnetID string) []FunctionNetworkConfig {
	filtered := make([]FunctionNetworkConfig, 0, len(configs))
	for _, cfg := range configs {
		if slices.Contains(cfg.SubnetIDs, subnetID) {
			filtered = append(filtered, cfg)
		}
	}
	return filtered
}

// ARNs returns the ARNs of configs in input order.
func ARNs(configs []FunctionNetworkConfig) []string {
	arns := make([]string, len(configs))
	for i, cfg := range configs {
		arns[i] = cfg.ARN
	}
	return arns
}
