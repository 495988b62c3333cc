package order_created

import (
	"context"
	"errors"
	"time"

	"orders/internal/gateway/kafka/order_events"
	"orders/internal/service/notification"
	"orders/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	relay                    Relay
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, relay Relay, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", order_events.OrderCreatedType))

	return &Handler{
		relay:                    relay,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.created: claim messages closed, exiting")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.created: session context done, exiting")
			return nil
		}
	}
}

// messageProcessing handles one message. It returns true when ConsumeClaim
// must stop; the message is then left unmarked and will be redelivered.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	event, err := order_events.DecodeOrderCreated(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.created handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.Order.ID),
		logger.NewField("event", event.EventID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.created processing")

	err = h.relay.Relay(ctx, event.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrAlreadyDispatched):
			msgLog.Info("order.created notification already attempted, skipping")

		case errors.Is(err, notification.ErrNotification):
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.created notification failed, not retrying")

		case sess.Context().Err() != nil:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler session closed, message will be reprocessed")
			return true

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.created: notification sent")

	sess.MarkMessage(message, "")
	return false
}
