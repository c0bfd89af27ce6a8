package diagnose

import "eniorphan/internal/models"

// AuditFetcher returns the candidate audit events for the interface under
// diagnosis. It is called at most once per Diagnose call, and only when no
// function matches the interface exactly.
type AuditFetcher func() ([]models.AuditEvent, error)

// Diagnose correlates the interface with the function versions sharing its
// subnet and decides why the interface has not been reclaimed.
//
// subnetFunctions must already be filtered to eni.SubnetID. Errors returned
// by fetchAuditEvents are passed back unchanged.
func Diagnose(eni models.NetworkInterfaceInfo, subnetFunctions []models.FunctionNetworkConfig, fetchAuditEvents AuditFetcher) (Outcome, error) {
	if len(subnetFunctions) == 0 {
		return Outcome{Kind: NoCandidateFunctions}, nil
	}

	matches := FindExactMatches(eni.SecurityGroupIDs, subnetFunctions)
	if len(matches) > 0 {
		return Outcome{Kind: ExactMatchFound, ARNs: matches}, nil
	}

	// Subnet is shared but no security-group set matches: consult the audit trail.
	if fetchAuditEvents == nil {
		return Outcome{}, NewDiagnoseError(ErrInvalidInput, "audit event fetcher is nil", eni.ID)
	}
	events, err := fetchAuditEvents()
	if err != nil {
		return Outcome{}, err
	}

	relevant := FindRelevantChanges(eni.ID, events)
	if len(relevant) > 0 {
		return Outcome{
			Kind:     ExternalModificationSuspected,
			ARNs:     models.ARNs(subnetFunctions),
			Evidence: relevant,
		}, nil
	}

	return Outcome{Kind: NoExactMatchNoModification}, nil
}
