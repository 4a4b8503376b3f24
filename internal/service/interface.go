package service

import (
	"context"

	"github.com/engagehq/engagement-report/internal/repository/models"
)

// SnapshotRepository defines the persistence operations the service needs
// for run history.
type SnapshotRepository interface {
	SaveRun(ctx context.Context, run models.Run, scores []models.JobTitleScore) (int64, error)
	LatestRun(ctx context.Context) (*models.Run, error)
}
