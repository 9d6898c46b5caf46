package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hairsalon/internal/cache"
	"hairsalon/internal/repository"
)

// JobService holds the cron-driven housekeeping: sweeping abandoned wizard
// sessions and keeping the reference-data cache warm.
type JobService struct {
	Sessions   repository.SessionStore
	Catalog    *cache.Catalog
	SessionTTL time.Duration
	logger     *zap.SugaredLogger
}

func NewJobService(sessions repository.SessionStore, catalog *cache.Catalog, sessionTTL time.Duration, logger *zap.SugaredLogger) *JobService {
	return &JobService{
		Sessions:   sessions,
		Catalog:    catalog,
		SessionTTL: sessionTTL,
		logger:     logger,
	}
}

// PurgeAbandonedSessions drops sessions idle past the TTL. With the redis
// store this is a no-op; the postgres store needs the sweep.
func (j *JobService) PurgeAbandonedSessions(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-j.SessionTTL)
	n, err := j.Sessions.DeleteExpired(ctx, cutoff)
	if err != nil {
		j.logger.Errorw("session sweep failed", "error", err)
		return err
	}
	if n > 0 {
		j.logger.Infow("purged abandoned wizard sessions", "count", n)
	}
	return nil
}

// RefreshCatalog reloads the service, stylist and schedule lists.
func (j *JobService) RefreshCatalog(ctx context.Context) {
	j.Catalog.Refresh(ctx)
}
