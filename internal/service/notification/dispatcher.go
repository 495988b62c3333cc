package notification

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"orders/internal/entities"
	"orders/pkg/logger"
)

const stageDispatch = "dispatch"

// Dispatcher sends the new order alert in its own goroutine. Each order gets
// exactly one attempt; failures are logged and dropped.
type Dispatcher struct {
	log     handlerLogger
	sender  Sender
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(log handlerLogger, sender Sender, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		log:     log.With(logger.NewField("component", "notification_dispatcher")),
		sender:  sender,
		timeout: timeout,
	}
}

// Dispatch returns immediately. The delivery outlives ctx cancellation and is
// bounded by the dispatcher timeout instead.
func (d *Dispatcher) Dispatch(ctx context.Context, order entities.Order) {
	deliveryCtx := context.WithoutCancel(ctx)

	d.wg.Add(1)
	NotificationsInFlight.Inc()
	go func() {
		defer d.wg.Done()
		defer NotificationsInFlight.Dec()

		if d.timeout > 0 {
			var cancel context.CancelFunc
			deliveryCtx, cancel = context.WithTimeout(deliveryCtx, d.timeout)
			defer cancel()
		}

		start := time.Now()
		err := d.deliver(deliveryCtx, order)
		NotificationDuration.WithLabelValues(stageDispatch).Observe(time.Since(start).Seconds())

		if err != nil {
			d.log.Error("order notification failed",
				logger.NewField("order", order.ID),
				logger.NewField("error", err),
			)
			return
		}
		d.log.Info("order notification sent",
			logger.NewField("order", order.ID),
		)
	}()
}

// Wait blocks until every detached delivery has finished or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for notifications: %w", ctx.Err())
	}
}

func (d *Dispatcher) deliver(ctx context.Context, order entities.Order) (err error) {
	defer func() {
		if r := recover(); r != nil {
			NotificationsTotal.WithLabelValues(stageDispatch, resultPanic).Inc()
			err = fmt.Errorf("%w: panic: %v\n%s", ErrNotification, r, debug.Stack())
		}
	}()

	if err := d.sender.SendOrderCreated(ctx, order); err != nil {
		NotificationsTotal.WithLabelValues(stageDispatch, resultFailed).Inc()
		return fmt.Errorf("%w: %w", ErrNotification, err)
	}

	NotificationsTotal.WithLabelValues(stageDispatch, resultSent).Inc()
	return nil
}
