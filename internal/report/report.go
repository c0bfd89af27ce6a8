package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"eniorphan/internal/diagnose"
	"eniorphan/internal/models"
)

// OutputFormatType defines the format types for the diagnostic report.
type OutputFormatType string

const (
	// OutputFormatTypeJSON represents JSON output format
	OutputFormatTypeJSON OutputFormatType = "JSON"
	// OutputFormatTypeTABLE represents table output format
	OutputFormatTypeTABLE OutputFormatType = "TABLE"
)

// ParseOutputFormat converts a user-supplied format name. Anything but "json"
// renders as a table.
func ParseOutputFormat(format string) OutputFormatType {
	if strings.EqualFold(format, "json") {
		return OutputFormatTypeJSON
	}
	return OutputFormatTypeTABLE
}

// DiagnosticReport is the rendered result of a diagnostic run.
type DiagnosticReport struct {
	Region         string                      `json:"region"`
	Interface      models.NetworkInterfaceInfo `json:"interface"`
	CandidateCount int                         `json:"candidate_count"`
	Outcome        diagnose.Outcome            `json:"outcome"`
	Recommendation string                      `json:"recommendation"`
	GeneratedAt    time.Time                   `json:"generated_at"`
}

// NewDiagnosticReport assembles a report for an outcome
func NewDiagnosticReport(region string, eni models.NetworkInterfaceInfo, candidates int, outcome diagnose.Outcome, at time.Time) DiagnosticReport {
	return DiagnosticReport{
		Region:         region,
		Interface:      eni,
		CandidateCount: candidates,
		Outcome:        outcome,
		Recommendation: outcome.Kind.Recommendation(),
		GeneratedAt:    at.UTC(),
	}
}

// PrintReport writes the report to w using the specified output format.
// Supported formats: "json" (machine-readable) and "table" (human-friendly).
func PrintReport(w io.Writer, r DiagnosticReport, outputFormat OutputFormatType) error {
	switch outputFormat {
	case OutputFormatTypeJSON:
		return printJSONReport(w, r)
	case OutputFormatTypeTABLE:
		return printTableReport(w, r)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// printJSONReport prints the report in JSON format
func printJSONReport(w io.Writer, r DiagnosticReport) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling report to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printTableReport prints the report in a human-friendly table format
func printTableReport(w io.Writer, r DiagnosticReport) error {
	writer := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(writer, "\nINTERFACE ID:\t%s\n", r.Interface.ID)
	fmt.Fprintf(writer, "REGION:\t%s\n", valueOrPlaceholder(r.Region))
	fmt.Fprintf(writer, "SUBNET:\t%s\n", valueOrPlaceholder(r.Interface.SubnetID))
	fmt.Fprintf(writer, "SECURITY GROUPS:\t%s\n", listOrPlaceholder(r.Interface.SecurityGroupIDs))
	fmt.Fprintf(writer, "FUNCTIONS IN SUBNET:\t%d\n", r.CandidateCount)
	fmt.Fprintf(writer, "OUTCOME:\t%s\n", r.Outcome.Kind)

	if len(r.Outcome.ARNs) > 0 {
		fmt.Fprintln(writer, "")
		fmt.Fprintln(writer, "CANDIDATE FUNCTION ARN")
		fmt.Fprintln(writer, "----------------------")
		for _, arn := range r.Outcome.ARNs {
			fmt.Fprintln(writer, arn)
		}
	}

	if len(r.Outcome.Evidence) > 0 {
		fmt.Fprintln(writer, "")
		fmt.Fprintln(writer, "EVENT ID\tEVENT TIME\tUSER\tEVENT")
		fmt.Fprintln(writer, "--------\t----------\t----\t-----")
		for _, e := range r.Outcome.Evidence {
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
				valueOrPlaceholder(e.EventID),
				formatTime(e.EventTime),
				valueOrPlaceholder(e.Username),
				e.EventName)
		}
	}

	fmt.Fprintln(writer, "")
	fmt.Fprintf(writer, "Recommendation: %s\n", r.Recommendation)

	return writer.Flush()
}

// valueOrPlaceholder formats empty strings for better display in the table
func valueOrPlaceholder(s string) string {
	if s == "" {
		return "<empty>"
	}
	return s
}

func listOrPlaceholder(values []string) string {
	if len(values) == 0 {
		return "<none>"
	}
	return strings.Join(values, ", ")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "<unknown>"
	}
	return t.UTC().Format(time.RFC3339)
}

// DefaultPrinter is the default implementation of the report printer
type DefaultPrinter struct{}

// PrintReport implements the printer interface
func (p DefaultPrinter) PrintReport(w io.Writer, r DiagnosticReport, format OutputFormatType) error {
	return PrintReport(w, r, format)
}
