package commands

import (
	"context"
	"log/slog"
	"time"

	"rental-core/internal/pkg/clock"
	"rental-core/internal/usecase/shared"
)

const maxNotificationAttempts = 5

//go:generate mockgen -source=jobs.go -destination=../../../tests/mock/commands/jobs.go -package=commandsmock
type JobCommands interface {
	// MarkOverdue flags rentals still out past their end date as late.
	MarkOverdue(ctx context.Context) (int, error)
	// QueueReturnReminders enqueues a reminder for rentals ending within window.
	QueueReturnReminders(ctx context.Context, window time.Duration) (int, error)
	// DispatchNotifications publishes up to limit due outbox jobs.
	DispatchNotifications(ctx context.Context, limit int) (int, error)
	PurgeIdempotencyKeys(ctx context.Context) (int64, error)
}

type jobUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher NotificationPublisher
	clock     clock.Clock
}

func NewJobCommands(uow shared.UnitOfWork, publisher NotificationPublisher, clk clock.Clock) JobCommands {
	return &jobUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

func (uc *jobUseCaseImpl) MarkOverdue(ctx context.Context) (int, error) {
	marked := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		marked = 0
		now := uc.clock.Now()
		orders, err := tx.Orders().ListOverdue(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		for _, o := range orders {
			if !o.MarkLate(now) {
				continue
			}
			if err := tx.Orders().Save(ctx, tx.DB(), o); err != nil {
				return err
			}
			marked++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return marked, nil
}

func (uc *jobUseCaseImpl) QueueReturnReminders(ctx context.Context, window time.Duration) (int, error) {
	queued := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		queued = 0
		now := uc.clock.Now()
		orders, err := tx.Orders().ListDueForReturn(ctx, tx.DB(), now, now.Add(window))
		if err != nil {
			return err
		}
		for _, o := range orders {
			if err := enqueue(ctx, tx, TopicReturnReminder, newOrderEvent(o), now); err != nil {
				return err
			}
			queued++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return queued, nil
}

// DispatchNotifications claims due jobs with SKIP LOCKED and publishes them
// while the rows stay locked. A failed publish is requeued until it has used
// maxNotificationAttempts.
func (uc *jobUseCaseImpl) DispatchNotifications(ctx context.Context, limit int) (int, error) {
	sent := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), uc.clock.Now(), limit)
		if err != nil {
			return err
		}
		for _, job := range jobs {
			status := shared.NotificationSent
			var lastError *string
			if perr := uc.publisher.Publish(ctx, job); perr != nil {
				msg := perr.Error()
				lastError = &msg
				status = shared.NotificationQueued
				if job.Attempts+1 >= maxNotificationAttempts {
					status = shared.NotificationFailed
				}
				slog.WarnContext(ctx, "notification publish failed",
					"job_id", job.ID,
					"topic", job.Topic,
					"attempts", job.Attempts+1,
					"error", perr)
			} else {
				sent++
			}
			if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, lastError); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

func (uc *jobUseCaseImpl) PurgeIdempotencyKeys(ctx context.Context) (int64, error) {
	var purged int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, tx.DB())
		purged = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}
