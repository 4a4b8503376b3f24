package mocks

import (
	"context"
	"errors"

	"github.com/engagehq/engagement-report/internal/repository/models"
)

// MockSnapshotRepository is a mock implementation of the SnapshotRepository
// interface for testing the service layer.
type MockSnapshotRepository struct {
	SaveRunFunc   func(ctx context.Context, run models.Run, scores []models.JobTitleScore) (int64, error)
	LatestRunFunc func(ctx context.Context) (*models.Run, error)
}

// SaveRun implements the SnapshotRepository interface
func (m *MockSnapshotRepository) SaveRun(ctx context.Context, run models.Run, scores []models.JobTitleScore) (int64, error) {
	if m.SaveRunFunc != nil {
		return m.SaveRunFunc(ctx, run, scores)
	}
	return 0, errors.New("SaveRunFunc not implemented")
}

// LatestRun implements the SnapshotRepository interface
func (m *MockSnapshotRepository) LatestRun(ctx context.Context) (*models.Run, error) {
	if m.LatestRunFunc != nil {
		return m.LatestRunFunc(ctx)
	}
	return nil, errors.New("LatestRunFunc not implemented")
}
