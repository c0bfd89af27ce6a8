package report

import "io"

// IPrinter is the interface for generating reports
//
//go:generate mockery --name=IPrinter --output=./mocks
type IPrinter interface {
	PrintReport(w io.Writer, r DiagnosticReport, format OutputFormatType) error
}
