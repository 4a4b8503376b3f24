package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/engagehq/engagement-report/internal/config"
	"github.com/engagehq/engagement-report/internal/dataset"
	"github.com/engagehq/engagement-report/internal/repository"
	"github.com/engagehq/engagement-report/internal/service"
	"github.com/engagehq/engagement-report/internal/survey"
	"github.com/engagehq/engagement-report/pkg/cache"
	dbbuilder "github.com/engagehq/engagement-report/pkg/database"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const summaryKeyPrefix = "engagement:summary:"

// App is the pipeline session. Every shared resource is acquired once in
// NewApp and released exactly once by Close, on the success path and on the
// handled missing-input path alike.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	engagement *service.EngagementService

	closeOnce sync.Once
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}

	var snapshots service.SnapshotRepository
	if cfg.DBPath != "" {
		if dir := filepath.Dir(cfg.DBPath); cfg.DBPath != ":memory:" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create snapshot directory: %w", err)
			}
		}

		dbPool, err := dbbuilder.New(
			dbbuilder.WithDriver(cfg.DBDriver),
			dbbuilder.WithDataSource(cfg.DBPath),
		)
		if err != nil {
			return nil, fmt.Errorf("snapshot store init failed: %w", err)
		}
		a.dbPool = dbPool

		repo := repository.NewSnapshotRepository(dbPool)
		if err := repo.InitSchema(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("snapshot schema init failed: %w", err)
		}
		snapshots = repo
		logger.Info("snapshot store initialized", zap.String("path", cfg.DBPath))
	}

	if cfg.RedisAddr != "" {
		cacheClient, err := cache.New(ctx, cache.WithAddress(cfg.RedisAddr))
		if err != nil {
			// A batch run must not depend on a cache server being up.
			logger.Warn("summary cache unavailable, continuing without it",
				zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			a.cache = cacheClient
			logger.Info("summary cache initialized", zap.String("addr", cfg.RedisAddr))
		}
	}

	a.engagement = service.NewEngagementService(snapshots, logger)

	return a, nil
}

// Run executes one pipeline pass: load, compare, preview, write, confirm.
// A missing input file is a reported, non-failing condition: the message is
// printed and Run returns nil.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("pipeline starting",
		zap.String("input", a.cfg.InputPath),
		zap.String("output", a.cfg.OutputPath))

	ds, err := dataset.Load(a.cfg.InputPath)
	if err != nil {
		if errors.Is(err, dataset.ErrInputNotFound) {
			fmt.Println(err)
			a.logger.Warn("input file missing, nothing to process",
				zap.String("path", a.cfg.InputPath))
			return nil
		}
		return fmt.Errorf("load input: %w", err)
	}
	a.logger.Info("input loaded",
		zap.Int("records", len(ds.Records)),
		zap.String("checksum", ds.Checksum))

	scores, cached := a.summary(ctx, ds)

	fmt.Println("Engagement Level Comparison Across Job Titles:")
	fmt.Print(service.RenderPreview(scores, a.cfg.PreviewRows))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := dataset.WriteScores(a.cfg.OutputPath, scores); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	})
	if !cached {
		g.Go(func() error {
			return a.engagement.PersistRun(gctx, ds, scores)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Results saved to %s\n", a.cfg.OutputPath)
	a.logger.Info("pipeline finished", zap.Int("job_titles", len(scores)))
	return nil
}

// summary returns the ranked comparison, consulting the cache when enabled.
// The bool reports whether the result came from the cache.
func (a *App) summary(ctx context.Context, ds *survey.Dataset) ([]service.TitleScore, bool) {
	if a.cache == nil {
		return a.engagement.CompareEngagementLevels(ds), false
	}

	key := summaryKeyPrefix + ds.Checksum
	var cachedScores []service.TitleScore
	if err := a.cache.Get(ctx, key, &cachedScores); err == nil {
		a.logger.Info("summary served from cache", zap.String("key", key))
		return cachedScores, true
	}

	scores := a.engagement.CompareEngagementLevels(ds)
	if err := a.cache.Set(ctx, key, scores, a.cfg.CacheTTL); err != nil {
		a.logger.Warn("failed to cache summary", zap.String("key", key), zap.Error(err))
	}
	return scores, false
}

// Close releases the session resources. Safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		if a.cache != nil {
			if err := a.cache.Close(); err != nil {
				a.logger.Error("cache shutdown error", zap.Error(err))
			}
		}
		if a.dbPool != nil {
			if err := a.dbPool.Close(); err != nil {
				a.logger.Error("snapshot store shutdown error", zap.Error(err))
			}
		}
		_ = a.logger.Sync()
	})
}
