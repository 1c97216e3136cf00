package reports

import (
	"encoding/json"
	"time"
)

// Record is one persisted QA report. The full report document is stored as
// JSON in ReportData; the indexed columns exist for listing and filtering.
type Record struct {
	ID              string          `json:"id"`
	EmailTemplateID string          `json:"email_template_id"`
	OverallStatus   string          `json:"overall_status"`
	RiskScore       int             `json:"risk_score"`
	RiskLevel       string          `json:"risk_level"`
	ReportData      json.RawMessage `json:"report_data"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Summary is the listing projection of a Record, without the report body.
type Summary struct {
	ID              string    `json:"id"`
	EmailTemplateID string    `json:"email_template_id"`
	OverallStatus   string    `json:"overall_status"`
	RiskScore       int       `json:"risk_score"`
	RiskLevel       string    `json:"risk_level"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToSummary projects a Record into a Summary.
func ToSummary(rec Record) Summary {
	return Summary{
		ID:              rec.ID,
		EmailTemplateID: rec.EmailTemplateID,
		OverallStatus:   rec.OverallStatus,
		RiskScore:       rec.RiskScore,
		RiskLevel:       rec.RiskLevel,
		CreatedAt:       rec.CreatedAt,
	}
}
