package diagnose

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eniorphan/internal/models"
)

// staticFetcher returns a fetcher that yields events and counts its calls.
func staticFetcher(events []models.AuditEvent, calls *int) AuditFetcher {
	return func() ([]models.AuditEvent, error) {
		*calls++
		return events, nil
	}
}

func TestDiagnose_NoCandidateFunctions(t *testing.T) {
	eni := models.NetworkInterfaceInfo{ID: testENI, SubnetID: "subnet-1", SecurityGroupIDs: []string{"sg-1"}}
	calls := 0

	outcome, err := Diagnose(eni, nil, staticFetcher(nil, &calls))

	require.NoError(t, err)
	assert.Equal(t, Outcome{Kind: NoCandidateFunctions}, outcome)
	assert.Equal(t, 0, calls, "audit events must not be fetched without candidates")
}

func TestDiagnose_ExactMatchFound(t *testing.T) {
	eni := models.NetworkInterfaceInfo{ID: testENI, SubnetID: "subnet-1", SecurityGroupIDs: []string{"sg-1", "sg-2"}}
	functions := []models.FunctionNetworkConfig{
		{ARN: arnPrefix + "f1", SubnetIDs: []string{"subnet-1"}, SecurityGroupIDs: []string{"sg-2", "sg-1"}},
	}
	calls := 0

	outcome, err := Diagnose(eni, functions, staticFetcher(nil, &calls))

	require.NoError(t, err)
	assert.Equal(t, ExactMatchFound, outcome.Kind)
	assert.Equal(t, []string{arnPrefix + "f1"}, outcome.ARNs)
	assert.Empty(t, outcome.Evidence)
	assert.Equal(t, 0, calls, "audit events must not be fetched when a function matches")
}

func TestDiagnose_ExternalModificationSuspected(t *testing.T) {
	eni := models.NetworkInterfaceInfo{ID: testENI, SubnetID: "subnet-1", SecurityGroupIDs: []string{"sg-1"}}
	functions := []models.FunctionNetworkConfig{
		{ARN: arnPrefix + "f1", SubnetIDs: []string{"subnet-1"}, SecurityGroupIDs: []string{"sg-1", "sg-9"}},
		{ARN: arnPrefix + "f2", SubnetIDs: []string{"subnet-1"}, SecurityGroupIDs: []string{"sg-7"}},
	}
	event := models.AuditEvent{EventID: "evt-1", EventName: "ModifyNetworkInterfaceAttribute", Payload: sgChangePayload}
	calls := 0

	outcome, err := Diagnose(eni, functions, staticFetcher([]models.AuditEvent{event}, &calls))

	require.NoError(t, err)
	assert.Equal(t, ExternalModificationSuspected, outcome.Kind)
	// Every subnet-sharing function is reported, not just near matches
	assert.Equal(t, []string{arnPrefix + "f1", arnPrefix + "f2"}, outcome.ARNs)
	assert.Equal(t, []models.AuditEvent{event}, outcome.Evidence)
	assert.Equal(t, 1, calls)
}

func TestDiagnose_NoExactMatchNoModification(t *testing.T) {
	eni := models.NetworkInterfaceInfo{ID: testENI, SubnetID: "subnet-1", SecurityGroupIDs: []string{"sg-1"}}
	functions := []models.FunctionNetworkConfig{
		{ARN: arnPrefix + "f1", SubnetIDs: []string{"subnet-1"}, SecurityGroupIDs: []string{"sg-1", "sg-9"}},
	}
	failed := models.AuditEvent{EventName: "ModifyNetworkInterfaceAttribute", Payload: sgChangePayload, HasError: true}
	calls := 0

	outcome, err := Diagnose(eni, functions, staticFetcher([]models.AuditEvent{failed}, &calls))

	require.NoError(t, err)
	assert.Equal(t, Outcome{Kind: NoExactMatchNoModification}, outcome)
	assert.Equal(t, 1, calls)
}

func TestDiagnose_AuditFetchErrorPropagates(t *testing.T) {
	eni := models.NetworkInterfaceInfo{ID: testENI, SubnetID: "subnet-1", SecurityGroupIDs: []string{"sg-1"}}
	functions := []models.FunctionNetworkConfig{
		{ARN: arnPrefix + "f1", SubnetIDs: []string{"subnet-1"}, SecurityGroupIDs: []string{"sg-2"}},
	}
	fetchErr := errors.New("AccessDeniedException: not authorized to perform cloudtrail:LookupEvents")

	_, err := Diagnose(eni, functions, func() ([]models.AuditEvent, error) {
		return nil, fetchErr
	})

	// The collaborator error is returned unmodified
	assert.Same(t, fetchErr, err)
}

func TestDiagnose_NilFetcher(t *testing.T) {
	eni := models.NetworkInterfaceInfo{ID: testENI, SubnetID: "subnet-1", SecurityGroupIDs: []string{"sg-1"}}
	functions := []models.FunctionNetworkConfig{
		{ARN: arnPrefix + "f1", SubnetIDs: []string{"subnet-1"}, SecurityGroupIDs: []string{"sg-2"}},
	}

	_, err := Diagnose(eni, functions, nil)

	assert.Error(t, err)
	assert.True(t, IsErrorCategory(err, ErrInvalidInput))

	// A nil fetcher is fine when the audit trail is never consulted
	outcome, err := Diagnose(eni, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, NoCandidateFunctions, outcome.Kind)
}

func TestDiagnose_Idempotent(t *testing.T) {
	eni := models.NetworkInterfaceInfo{ID: testENI, SubnetID: "subnet-1", SecurityGroupIDs: []string{"sg-1"}}
	functions := []models.FunctionNetworkConfig{
		{ARN: arnPrefix + "f1", SubnetIDs: []string{"subnet-1"}, SecurityGroupIDs: []string{"sg-1", "sg-9"}},
	}
	events := []models.AuditEvent{{EventID: "evt-1", Payload: sgChangePayload}}
	calls := 0

	first, err := Diagnose(eni, functions, staticFetcher(events, &calls))
	require.NoError(t, err)
	second, err := Diagnose(eni, functions, staticFetcher(events, &calls))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOutcomeKind_Text(t *testing.T) {
	kinds := []OutcomeKind{
		NoCandidateFunctions,
		ExactMatchFound,
		ExternalModificationSuspected,
		NoExactMatchNoModification,
	}

	for _, kind := range kinds {
		assert.NotEqual(t, string(kind), kind.String(), "kind %s should have a label", kind)
		assert.NotEmpty(t, kind.Recommendation(), "kind %s should have a recommendation", kind)
	}

	assert.Equal(t, "unknown", OutcomeKind("unknown").String())
	assert.Empty(t, OutcomeKind("unknown").Recommendation())
}
