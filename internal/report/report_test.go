package report_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eniorphan/internal/diagnose"
	"eniorphan/internal/models"
	"eniorphan/internal/report"
)

var generatedAt = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func testInterface() models.NetworkInterfaceInfo {
	return models.NetworkInterfaceInfo{
		ID:               "eni-0123456789abcdef0",
		SubnetID:         "subnet-1",
		SecurityGroupIDs: []string{"sg-1", "sg-2"},
	}
}

func TestPrintReport_JSON(t *testing.T) {
	outcome := diagnose.Outcome{
		Kind: diagnose.ExactMatchFound,
		ARNs: []string{"arn:aws:lambda:us-east-1:123456789012:function:f1"},
	}
	r := report.NewDiagnosticReport("us-east-1", testInterface(), 1, outcome, generatedAt)

	var buf bytes.Buffer
	require.NoError(t, report.PrintReport(&buf, r, report.OutputFormatTypeJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "us-east-1", decoded["region"])
	assert.Equal(t, float64(1), decoded["candidate_count"])
	assert.NotEmpty(t, decoded["recommendation"])

	decodedOutcome, ok := decoded["outcome"].(map[string]any)
	require.True(t, ok, "outcome should be an object")
	assert.Equal(t, "exact_match_found", decodedOutcome["kind"])
	assert.Equal(t, []any{"arn:aws:lambda:us-east-1:123456789012:function:f1"}, decodedOutcome["arns"])
}

func TestPrintReport_Table(t *testing.T) {
	outcome := diagnose.Outcome{
		Kind: diagnose.ExternalModificationSuspected,
		ARNs: []string{
			"arn:aws:lambda:us-east-1:123456789012:function:f1",
			"arn:aws:lambda:us-east-1:123456789012:function:f2",
		},
		Evidence: []models.AuditEvent{
			{
				EventID:   "evt-1",
				EventName: "ModifyNetworkInterfaceAttribute",
				EventTime: generatedAt.Add(-time.Hour),
				Username:  "alice",
			},
		},
	}
	r := report.NewDiagnosticReport("us-east-1", testInterface(), 2, outcome, generatedAt)

	var buf bytes.Buffer
	require.NoError(t, report.PrintReport(&buf, r, report.OutputFormatTypeTABLE))
	output := buf.String()

	assert.Contains(t, output, "INTERFACE ID:")
	assert.Contains(t, output, "eni-0123456789abcdef0")
	assert.Contains(t, output, "sg-1, sg-2")
	assert.Contains(t, output, "External modification suspected")
	assert.Contains(t, output, "function:f2")
	assert.Contains(t, output, "evt-1")
	assert.Contains(t, output, "2026-10-19T11:00:00Z")
	assert.Contains(t, output, "Recommendation:")
}

func TestPrintReport_TableNoCandidates(t *testing.T) {
	eni := testInterface()
	eni.SecurityGroupIDs = nil
	r := report.NewDiagnosticReport("", eni, 0, diagnose.Outcome{Kind: diagnose.NoCandidateFunctions}, generatedAt)

	var buf bytes.Buffer
	require.NoError(t, report.PrintReport(&buf, r, report.OutputFormatTypeTABLE))
	output := buf.String()

	assert.Contains(t, output, "<none>")
	assert.Contains(t, output, "<empty>")
	assert.NotContains(t, output, "CANDIDATE FUNCTION ARN")
	assert.NotContains(t, output, "EVENT ID")
}

func TestPrintReport_UnsupportedFormat(t *testing.T) {
	r := report.NewDiagnosticReport("us-east-1", testInterface(), 0, diagnose.Outcome{Kind: diagnose.NoCandidateFunctions}, generatedAt)

	var buf bytes.Buffer
	err := report.PrintReport(&buf, r, "XML")
	assert.Error(t, err, "expected error for unsupported format")
}

func TestParseOutputFormat(t *testing.T) {
	assert.Equal(t, report.OutputFormatTypeJSON, report.ParseOutputFormat("json"))
	assert.Equal(t, report.OutputFormatTypeJSON, report.ParseOutputFormat("JSON"))
	assert.Equal(t, report.OutputFormatTypeTABLE, report.ParseOutputFormat("table"))
	assert.Equal(t, report.OutputFormatTypeTABLE, report.ParseOutputFormat(""))
}
