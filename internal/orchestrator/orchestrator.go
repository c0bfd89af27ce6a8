package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"eniorphan/internal/config"
	"eniorphan/internal/diagnose"
	"eniorphan/internal/models"
	aws "eniorphan/internal/providers/aws"
	"eniorphan/internal/report"
)

// Service orchestrates the diagnostic process.
type Service struct {
	config        Config
	interfaces    aws.InterfaceServiceAPI
	functions     aws.FunctionServiceAPI
	audit         aws.AuditServiceAPI
	reportPrinter report.IPrinter
	out           io.Writer
	logger        logr.Logger
	now           func() time.Time
}

// NewService creates a new orchestrator service with the given configuration.
func NewService(
	config Config,
	interfaces aws.InterfaceServiceAPI,
	functions aws.FunctionServiceAPI,
	audit aws.AuditServiceAPI,
	reportPrinter report.IPrinter,
	out io.Writer,
	logger logr.Logger,
) *Service {
	return &Service{
		config:        config,
		interfaces:    interfaces,
		functions:     functions,
		audit:         audit,
		reportPrinter: reportPrinter,
		out:           out,
		logger:        logger.WithName("orchestrator"),
		now:           time.Now,
	}
}

// NewDefaultService creates a new service with default implementations of dependencies
func NewDefaultService(ctx context.Context, cfg config.Config, logger logr.Logger) (*Service, error) {
	opts := aws.ServiceOptions{
		Logger: logger,
		Retry: aws.RetryConfig{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: cfg.InitialDelay,
		},
		Limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
	auditOpts := aws.AuditOptions{
		Lookback: cfg.Lookback,
		Now:      time.Now,
	}

	services, err := aws.NewServicesWithDefaultConfig(ctx, cfg.Region, opts, auditOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AWS services: %w", err)
	}

	return NewService(
		Config{
			InterfaceID:  cfg.InterfaceID,
			Region:       services.Region,
			OutputFormat: cfg.Output,
		},
		services.Interfaces,
		services.Functions,
		services.Audit,
		report.DefaultPrinter{},
		os.Stdout,
		logger,
	), nil
}

// Run executes the diagnostic workflow for the configured interface
func (s *Service) Run(ctx context.Context) (*DiagnosticResult, error) {
	if err := s.validateConfig(); err != nil {
		return nil, err
	}

	log := s.logger.WithValues("eniID", s.config.InterfaceID, "region", s.config.Region)
	log.Info("Starting diagnosis")

	eni, functions, err := s.fetchInventory(ctx)
	if err != nil {
		return nil, err
	}

	candidates := models.FilterBySubnet(functions, eni.SubnetID)
	log.Info("Collected function inventory",
		"subnetID", eni.SubnetID,
		"securityGroups", eni.SecurityGroupIDs,
		"vpcFunctions", len(functions),
		"functionsInSubnet", len(candidates))

	result := &DiagnosticResult{
		InterfaceID:    eni.ID,
		SubnetID:       eni.SubnetID,
		CandidateCount: len(candidates),
	}

	// The audit lookup is the most expensive call; Diagnose only invokes it
	// when no function matches exactly.
	fetchAuditEvents := func() ([]models.AuditEvent, error) {
		result.AuditConsulted = true
		log.Info("No exact match, consulting audit trail")
		events, err := s.audit.FetchAuditEvents(ctx, eni.ID)
		if err != nil {
			return nil, fmt.Errorf("error fetching audit events: %w", err)
		}
		return events, nil
	}

	outcome, err := diagnose.Diagnose(*eni, candidates, fetchAuditEvents)
	if err != nil {
		return nil, err
	}
	result.Outcome = outcome

	log.Info("Diagnosis complete", "outcome", string(outcome.Kind), "arns", len(outcome.ARNs), "evidence", len(outcome.Evidence))

	r := report.NewDiagnosticReport(s.config.Region, *eni, len(candidates), outcome, s.now())
	if err := s.reportPrinter.PrintReport(s.out, r, s.getOutputFormat()); err != nil {
		return result, fmt.Errorf("error generating report: %w", err)
	}

	return result, nil
}

// fetchInventory fetches the interface and the function inventory concurrently.
// The two reads are independent; the inventory is narrowed to the interface's
// subnet afterwards.
func (s *Service) fetchInventory(ctx context.Context) (*models.NetworkInterfaceInfo, []models.FunctionNetworkConfig, error) {
	var (
		eni       *models.NetworkInterfaceInfo
		functions []models.FunctionNetworkConfig
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		eni, err = s.interfaces.FetchInterfaceInfo(gctx, s.config.InterfaceID)
		if err != nil {
			return fmt.Errorf("error fetching network interface %s: %w", s.config.InterfaceID, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		functions, err = s.functions.ListFunctionConfigs(gctx)
		if err != nil {
			return fmt.Errorf("error listing function configurations: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return eni, functions, nil
}

// validateConfig checks if the required configuration is provided.
func (s *Service) validateConfig() error {
	if s.config.InterfaceID == "" {
		return fmt.Errorf("network interface ID is required")
	}
	if s.interfaces == nil || s.functions == nil || s.audit == nil {
		return fmt.Errorf("AWS services are not configured")
	}
	return nil
}

// getOutputFormat converts the string format to report.OutputFormatType.
func (s *Service) getOutputFormat() report.OutputFormatType {
	return report.ParseOutputFormat(strings.TrimSpace(s.config.OutputFormat))
}
