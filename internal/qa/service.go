package qa

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"email-qa-backend/internal/emails"
	"email-qa-backend/internal/reports"
	"email-qa-backend/internal/shared/metrics"
	"email-qa-backend/internal/shared/telemetry"
)

// Service runs QA pipelines and persists the resulting reports.
type Service struct {
	Emails       *emails.Service
	Reports      reports.Repo
	Orchestrator *Orchestrator
}

// NewService constructs a Service.
func NewService(emailSvc *emails.Service, reportRepo reports.Repo, orch *Orchestrator) *Service {
	return &Service{Emails: emailSvc, Reports: reportRepo, Orchestrator: orch}
}

// RunQA executes the full pipeline for one stored email and persists the
// report. The returned report is complete even when agents degraded.
func (s *Service) RunQA(ctx context.Context, emailID string) (Report, error) {
	email, err := s.Emails.Get(ctx, emailID)
	if err != nil {
		return Report{}, err
	}

	metrics.IncQARunStarted()
	started := time.Now()

	report, err := s.Orchestrator.Run(ctx, email)
	if err != nil {
		metrics.IncQARunFailed()
		telemetry.Error("qa.run.failed", map[string]any{
			"email_id": emailID,
			"error":    err.Error(),
		})
		return Report{}, err
	}

	if err := s.persist(ctx, report); err != nil {
		// The run itself succeeded; callers still get the report.
		telemetry.Warn("qa.report.persist_failed", map[string]any{
			"email_id":  emailID,
			"report_id": report.ID,
			"error":     err.Error(),
		})
	}

	metrics.IncQARunCompleted()
	metrics.ObserveQARunDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("qa.run.completed", map[string]any{
		"email_id":   emailID,
		"report_id":  report.ID,
		"risk_score": report.RiskScore,
		"status":     report.OverallStatus,
	})
	return report, nil
}

func (s *Service) persist(ctx context.Context, report Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return s.Reports.Create(ctx, reports.Record{
		ID:              report.ID,
		EmailTemplateID: report.EmailID,
		OverallStatus:   report.OverallStatus,
		RiskScore:       report.RiskScore,
		RiskLevel:       report.RiskLevel,
		ReportData:      data,
		CreatedAt:       report.GeneratedAt,
	})
}
