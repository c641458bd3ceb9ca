package task

import (
	"context"

	"github.com/tams-cso/tams-club-cal-sub000/internal/service"

	"go.uber.org/zap"
)

// CacheSweepTask evicts expired user cache entries on a schedule, so stale
// entries do not sit in memory between reads.
type CacheSweepTask struct {
	userSvc service.UserService
	spec    string
	logger  *zap.Logger
}

func NewCacheSweepTask(userSvc service.UserService, spec string, logger *zap.Logger) *CacheSweepTask {
	return &CacheSweepTask{userSvc: userSvc, spec: spec, logger: logger}
}

func (t *CacheSweepTask) Name() string {
	return "cache-sweep"
}

func (t *CacheSweepTask) Spec() string {
	return t.spec
}

func (t *CacheSweepTask) Run(ctx context.Context) error {
	if n := t.userSvc.SweepCache(); n > 0 {
		t.logger.Debug("cache sweep evicted entries", zap.Int("count", n))
	}
	return nil
}
