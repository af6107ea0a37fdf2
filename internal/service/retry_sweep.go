package service

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// RetrySweeper периодически повторяет передачу сообщений из очереди
type RetrySweeper struct {
	c       *cron.Cron
	service EmergencyService
	logger  *logrus.Logger
}

// NewRetrySweeper регистрирует задачу по cron-выражению schedule
func NewRetrySweeper(ctx context.Context, service EmergencyService, schedule string, logger *logrus.Logger) (*RetrySweeper, error) {
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)))
	sw := &RetrySweeper{c: c, service: service, logger: logger}

	if _, err := c.AddFunc(schedule, func() { sw.sweep(ctx) }); err != nil {
		return nil, fmt.Errorf("invalid retry sweep schedule %q: %w", schedule, err)
	}
	return sw, nil
}

func (sw *RetrySweeper) Start() { sw.c.Start() }

// Stop ждет завершения текущего прохода
func (sw *RetrySweeper) Stop() { ctx := sw.c.Stop(); <-ctx.Done() }

func (sw *RetrySweeper) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if len(sw.service.QueuedMessages(ctx)) == 0 {
		return
	}

	report := sw.service.RetryQueue(ctx)
	sw.logger.WithFields(logrus.Fields{
		"component":  "retry_sweep",
		"processed":  report.Processed,
		"successful": report.Successful,
		"failed":     report.Failed,
	}).Info("Retry sweep finished")
}
