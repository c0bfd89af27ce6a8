package diagnose

import "eniorphan/internal/models"

// FindExactMatches returns the ARNs of the candidates whose security-group set
// is exactly equal to target. Matches keep the candidates' input order.
//
// Subsets and supersets never match: the platform binds a function version to
// exactly one security-group set at a time.
func FindExactMatches(target []string, candidates []models.FunctionNetworkConfig) []string {
	matches := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if EqualSets(target, candidate.SecurityGroupIDs) {
			matches = append(matches, candidate.ARN)
		}
	}
	return matches
}
