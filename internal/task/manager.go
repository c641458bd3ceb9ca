// Package task schedules background maintenance jobs with cron.
package task

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task is one scheduled maintenance job.
type Task interface {
	Name() string
	// Spec is a cron expression, including @every and @daily forms.
	Spec() string
	Run(ctx context.Context) error
}

// Manager owns the cron scheduler and the registered tasks.
type Manager struct {
	cron   *cron.Cron
	logger *zap.Logger
}

func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		cron:   cron.New(),
		logger: logger,
	}
}

// Add registers a task; a bad cron spec fails registration, not boot.
func (m *Manager) Add(t Task) error {
	_, err := m.cron.AddFunc(t.Spec(), func() {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("task panic",
					zap.String("name", t.Name()),
					zap.Any("panic", r),
					zap.Stack("stack"))
			}
		}()
		if err := t.Run(context.Background()); err != nil {
			m.logger.Error("task run error",
				zap.String("name", t.Name()),
				zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	m.logger.Info("task registered",
		zap.String("name", t.Name()),
		zap.String("spec", t.Spec()))
	return nil
}

func (m *Manager) Start() {
	m.cron.Start()
}

// Stop halts scheduling and returns once running jobs finish.
func (m *Manager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
}
