package diagnose

import "eniorphan/internal/models"

// OutcomeKind identifies which terminal state a diagnosis reached.
type OutcomeKind string

const (
	// NoCandidateFunctions means no function version references the interface's subnet.
	NoCandidateFunctions OutcomeKind = "no_candidate_functions"
	// ExactMatchFound means at least one function version mirrors the interface exactly.
	ExactMatchFound OutcomeKind = "exact_match_found"
	// ExternalModificationSuspected means the interface's security groups were changed out of band.
	ExternalModificationSuspected OutcomeKind = "external_modification_suspected"
	// NoExactMatchNoModification is the inconclusive outcome.
	NoExactMatchNoModification OutcomeKind = "no_exact_match_no_modification"
)

// String returns a human-readable label for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case NoCandidateFunctions:
		return "No candidate functions"
	case ExactMatchFound:
		return "Exact match found"
	case ExternalModificationSuspected:
		return "External modification suspected"
	case NoExactMatchNoModification:
		return "No exact match, no modification"
	default:
		return string(k)
	}
}

// Recommendation returns the follow-up advice for the outcome kind.
func (k OutcomeKind) Recommendation() string {
	switch k {
	case NoCandidateFunctions:
		return "No function uses this subnet anymore. The interface should be reclaimed by the platform's asynchronous cleanup."
	case ExactMatchFound:
		return "These function versions still match the interface's subnet and security groups. Remove them, or detach them from the VPC, to release the interface."
	case ExternalModificationSuspected:
		return "The interface's security groups were modified outside the function configuration. Any function using this subnet may be the original owner; review the audit events and restore the original security groups."
	case NoExactMatchNoModification:
		return "No function matches and no out-of-band change was found. Wait for the platform's normal reclamation window before escalating."
	default:
		return ""
	}
}

// Outcome is the final result of a diagnostic run. An Outcome is never
// modified after Diagnose returns it.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`

	// ARNs holds the exact matches for ExactMatchFound, or every
	// subnet-sharing function for ExternalModificationSuspected.
	ARNs []string `json:"arns,omitempty"`

	// Evidence holds the audit events that triggered ExternalModificationSuspected.
	Evidence []models.AuditEvent `json:"evidence,omitempty"`
}
