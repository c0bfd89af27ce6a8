package orchestrator

import "eniorphan/internal/diagnose"

// Config contains all the parameters needed for a diagnostic run.
type Config struct {
	InterfaceID  string // ENI to diagnose
	Region       string // AWS region, reported only; clients are already bound to it
	OutputFormat string // Output format (json or table)
}

// DiagnosticResult contains the result of a diagnostic run.
type DiagnosticResult struct {
	InterfaceID    string
	SubnetID       string
	CandidateCount int
	AuditConsulted bool
	Outcome        diagnose.Outcome
}
