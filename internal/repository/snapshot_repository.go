package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/engagehq/engagement-report/internal/repository/models"
)

type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// InitSchema creates the snapshot tables when they do not exist yet.
func (r *SnapshotRepository) InitSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input_checksum TEXT NOT NULL,
		record_count INTEGER NOT NULL,
		title_count INTEGER NOT NULL,
		top_job_title TEXT NOT NULL,
		top_score REAL NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS job_title_scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL,
		job_title TEXT NOT NULL,
		avg_engagement REAL NOT NULL,
		respondents INTEGER NOT NULL,
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create snapshot schema: %w", err)
	}
	return nil
}

// SaveRun inserts the run and its ranked scores in a single transaction and
// returns the new run id.
func (r *SnapshotRepository) SaveRun(ctx context.Context, run models.Run, scores []models.JobTitleScore) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin SaveRun: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (input_checksum, record_count, title_count, top_job_title, top_score, created_at)
		VALUES (?, ?, ?, ?, ?, ?);
	`, run.InputChecksum, run.RecordCount, run.TitleCount, run.TopJobTitle, run.TopScore, run.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for _, s := range scores {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO job_title_scores (run_id, job_title, avg_engagement, respondents)
			VALUES (?, ?, ?, ?);
		`, runID, s.JobTitle, s.AvgEngagement, s.Respondents)
		if err != nil {
			return 0, fmt.Errorf("insert score for %q: %w", s.JobTitle, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit SaveRun: %w", err)
	}
	return runID, nil
}

// LatestRun returns the most recent run, or nil when no runs are recorded.
func (r *SnapshotRepository) LatestRun(ctx context.Context) (*models.Run, error) {
	const query = `
		SELECT id, input_checksum, record_count, title_count, top_job_title, top_score, created_at
		FROM runs
		ORDER BY id DESC
		LIMIT 1
	`

	var run models.Run
	var createdAt string

	err := r.db.QueryRowContext(ctx, query).Scan(
		&run.ID, &run.InputChecksum, &run.RecordCount, &run.TitleCount,
		&run.TopJobTitle, &run.TopScore, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query LatestRun: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse LatestRun created_at: %w", err)
	}
	run.CreatedAt = ts

	return &run, nil
}

// ScoresForRun returns the ranked rows persisted for a run, best first.
func (r *SnapshotRepository) ScoresForRun(ctx context.Context, runID int64) ([]models.JobTitleScore, error) {
	const query = `
		SELECT id, run_id, job_title, avg_engagement, respondents
		FROM job_title_scores
		WHERE run_id = ?
		ORDER BY avg_engagement DESC, job_title ASC
	`

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("query ScoresForRun: %w", err)
	}
	defer rows.Close()

	var results []models.JobTitleScore
	for rows.Next() {
		var s models.JobTitleScore
		if err := rows.Scan(&s.ID, &s.RunID, &s.JobTitle, &s.AvgEngagement, &s.Respondents); err != nil {
			return nil, fmt.Errorf("scan ScoresForRun row: %w", err)
		}
		results = append(results, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ScoresForRun: %w", err)
	}
	return results, nil
}
