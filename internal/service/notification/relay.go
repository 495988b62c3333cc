package notification

import (
	"context"
	"fmt"
	"time"

	"orders/internal/entities"
	"orders/pkg/logger"
)

const stageRelay = "relay"

// Relay delivers order.created events taken from the broker. The guard makes
// a redelivered event a no-op so one order never produces two attempts.
type Relay struct {
	log    handlerLogger
	guard  DispatchGuard
	sender Sender
}

func NewRelay(log handlerLogger, guard DispatchGuard, sender Sender) *Relay {
	return &Relay{
		log:    log.With(logger.NewField("component", "notification_relay")),
		guard:  guard,
		sender: sender,
	}
}

func (r *Relay) Relay(ctx context.Context, order entities.Order) error {
	acquired, err := r.guard.Acquire(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("acquire dispatch guard: %w", err)
	}
	if !acquired {
		NotificationsTotal.WithLabelValues(stageRelay, resultSkipped).Inc()
		return fmt.Errorf("order %s: %w", order.ID, ErrAlreadyDispatched)
	}

	start := time.Now()
	err = r.sender.SendOrderCreated(ctx, order)
	NotificationDuration.WithLabelValues(stageRelay).Observe(time.Since(start).Seconds())
	if err != nil {
		NotificationsTotal.WithLabelValues(stageRelay, resultFailed).Inc()
		return fmt.Errorf("%w: %w", ErrNotification, err)
	}

	NotificationsTotal.WithLabelValues(stageRelay, resultSent).Inc()
	r.log.Info("order notification relayed",
		logger.NewField("order", order.ID),
	)
	return nil
}
