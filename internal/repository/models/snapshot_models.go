package models

import "time"

// Run is one persisted pipeline execution.
type Run struct {
	ID            int64
	InputChecksum string
	RecordCount   int
	TitleCount    int
	TopJobTitle   string
	TopScore      float64
	CreatedAt     time.Time
}

// JobTitleScore is one ranked result row belonging to a Run.
type JobTitleScore struct {
	ID            int64
	RunID         int64
	JobTitle      string
	AvgEngagement float64
	Respondents   int
}
