package task

import (
	"context"
	"time"

	"github.com/tams-cso/tams-club-cal-sub000/internal/service"

	"go.uber.org/zap"
)

// ReservationCleanupTask prunes reservations whose slot ended longer ago
// than the retention window. History entries stay; the booking grid only
// needs current and recent rows.
type ReservationCleanupTask struct {
	reservationSvc service.ReservationService
	retention      time.Duration
	spec           string
	logger         *zap.Logger
}

func NewReservationCleanupTask(reservationSvc service.ReservationService, retention time.Duration, spec string, logger *zap.Logger) *ReservationCleanupTask {
	return &ReservationCleanupTask{
		reservationSvc: reservationSvc,
		retention:      retention,
		spec:           spec,
		logger:         logger,
	}
}

func (t *ReservationCleanupTask) Name() string {
	return "reservation-cleanup"
}

func (t *ReservationCleanupTask) Spec() string {
	return t.spec
}

func (t *ReservationCleanupTask) Run(ctx context.Context) error {
	cutoff := time.Now().Add(-t.retention).UnixMilli()
	n, err := t.reservationSvc.PruneEnded(ctx, cutoff)
	if err != nil {
		return err
	}
	if n > 0 {
		t.logger.Info("pruned ended reservations", zap.Int64("count", n))
	}
	return nil
}
