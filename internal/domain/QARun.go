package domain

import "time"

type QARunStatus string

const (
	QARunStatusCompleted QARunStatus = "COMPLETED"
	QARunStatusFailed    QARunStatus = "FAILED"
)

// QARun é o resumo persistido de uma execução de QA
type QARun struct {
	ID             string      `json:"id"`
	BriefName      string      `json:"brief_name"`
	Sheet          string      `json:"sheet"`
	CampaignAltIDs []string    `json:"campaign_alt_ids"`
	Status         QARunStatus `json:"status"`
	Error          *string     `json:"error,omitempty"`
	Entities       int         `json:"entities"`
	Resolved       int         `json:"resolved"`
	Unresolved     int         `json:"unresolved"`
	Ambiguous      int         `json:"ambiguous"`
	Infos          int         `json:"infos"`
	Warnings       int         `json:"warnings"`
	Errors         int         `json:"errors"`
	ReportPath     *string     `json:"report_path,omitempty"`
	StartedAt      time.Time   `json:"started_at"`
	CompletedAt    time.Time   `json:"completed_at"`
}

// QARunDetail é o resumo acompanhado dos findings persistidos
type QARunDetail struct {
	Run      *QARun    `json:"run"`
	Findings []Finding `json:"findings"`
}
