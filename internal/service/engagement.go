package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/engagehq/engagement-report/internal/repository/models"
	"github.com/engagehq/engagement-report/internal/survey"
	"go.uber.org/zap"
)

const dbTimeout = 1 * time.Second

var ErrStorageFailure = errors.New("storage failure")

// EngagementService derives the numeric engagement column and aggregates it
// by job title.
type EngagementService struct {
	snapshots SnapshotRepository
	logger    *zap.Logger
}

// NewEngagementService creates a new EngagementService instance. A nil
// snapshots repository disables run persistence.
func NewEngagementService(snapshots SnapshotRepository, logger *zap.Logger) *EngagementService {
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &EngagementService{
		snapshots: snapshots,
		logger:    logger,
	}
}

// CompareEngagementLevels partitions the dataset by job title, computes the
// mean numeric engagement per partition and returns the partitions ranked
// by that mean, best first. Ties rank alphabetically by job title. A job
// title whose rows all carry an unrecognized engagement level has no mean
// and is excluded. Pure function of the dataset.
func (s *EngagementService) CompareEngagementLevels(ds *survey.Dataset) []TitleScore {
	derived := survey.DeriveNumeric(ds.Records)

	type partition struct {
		sum   int64
		count int
	}
	partitions := make(map[string]*partition)
	titles := make([]string, 0)

	for _, r := range derived {
		p, ok := partitions[r.JobTitle]
		if !ok {
			p = &partition{}
			partitions[r.JobTitle] = p
			titles = append(titles, r.JobTitle)
		}
		if !r.Present {
			continue
		}
		p.sum += r.EngagementNumeric
		p.count++
	}

	scores := make([]TitleScore, 0, len(titles))
	for _, title := range titles {
		p := partitions[title]
		if p.count == 0 {
			s.logger.Debug("job title has no recognized engagement levels",
				zap.String("job_title", title))
			continue
		}
		scores = append(scores, TitleScore{
			JobTitle:           title,
			AvgEngagementLevel: float64(p.sum) / float64(p.count),
			Respondents:        p.count,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].AvgEngagementLevel != scores[j].AvgEngagementLevel {
			return scores[i].AvgEngagementLevel > scores[j].AvgEngagementLevel
		}
		return scores[i].JobTitle < scores[j].JobTitle
	})

	s.logger.Info("engagement comparison computed",
		zap.Int("records", len(ds.Records)),
		zap.Int("job_titles", len(scores)))

	return scores
}

// PersistRun records the run and its ranked scores in the snapshot store and
// logs the top-performer movement against the previous run. No-op when
// persistence is disabled.
func (s *EngagementService) PersistRun(ctx context.Context, ds *survey.Dataset, scores []TitleScore) error {
	if s.snapshots == nil {
		return nil
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	previous, err := s.snapshots.LatestRun(dbCtx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if previous != nil && len(scores) > 0 {
		s.logger.Info("top performer vs previous run",
			zap.String("current", scores[0].JobTitle),
			zap.Float64("current_avg", scores[0].AvgEngagementLevel),
			zap.String("previous", previous.TopJobTitle),
			zap.Float64("previous_avg", previous.TopScore),
			zap.Float64("change", scores[0].AvgEngagementLevel-previous.TopScore))
	}

	run := models.Run{
		InputChecksum: ds.Checksum,
		RecordCount:   len(ds.Records),
		TitleCount:    len(scores),
		CreatedAt:     time.Now().UTC(),
	}
	if len(scores) > 0 {
		run.TopJobTitle = scores[0].JobTitle
		run.TopScore = scores[0].AvgEngagementLevel
	}

	rows := make([]models.JobTitleScore, 0, len(scores))
	for _, sc := range scores {
		rows = append(rows, models.JobTitleScore{
			JobTitle:      sc.JobTitle,
			AvgEngagement: sc.AvgEngagementLevel,
			Respondents:   sc.Respondents,
		})
	}

	runID, err := s.snapshots.SaveRun(dbCtx, run, rows)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("run snapshot saved",
		zap.Int64("run_id", runID),
		zap.String("checksum", ds.Checksum))
	return nil
}
