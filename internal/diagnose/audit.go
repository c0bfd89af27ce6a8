package diagnose

import (
	"strings"

	"eniorphan/internal/models"
)

// securityGroupField marks a payload that carries a security-group change.
const securityGroupField = "groupId"

// FindRelevantChanges selects the audit events that record a successful
// security-group change on the interface eniID. Input order is preserved.
func FindRelevantChanges(eniID string, events []models.AuditEvent) []models.AuditEvent {
	relevant := make([]models.AuditEvent, 0)
	if eniID == "" {
		return relevant
	}

	for _, event := range events {
		if isRelevantChange(eniID, event) {
			relevant = append(relevant, event)
		}
	}
	return relevant
}

// isRelevantChange applies the three filter conditions to a single event.
// Failed calls and undecodable payloads are never evidence.
func isRelevantChange(eniID string, event models.AuditEvent) bool {
	if event.HasError || event.Malformed {
		return false
	}
	return strings.Contains(event.Payload, eniID) &&
		strings.Contains(event.Payload, securityGroupField)
}
