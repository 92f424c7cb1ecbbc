package jobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/curioyard/studio-api/internal/service"
)

// RegisterStatsRefresh schedules the periodic dashboard recompute. The
// job polls both ledgers for every user with a cached snapshot.
func RegisterStatsRefresh(s *Scheduler, stats *service.StatsService, interval time.Duration, logger *zap.Logger) error {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	expr := fmt.Sprintf("@every %s", interval)
	return s.AddJob("stats_refresh", expr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()

		if err := stats.RefreshAll(ctx); err != nil {
			logger.Error("stats refresh job failed", zap.Error(err))
		}
	})
}
