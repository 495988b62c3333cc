package order_mailer

import (
	"context"
	"fmt"
	"time"

	"orders/internal/entities"
	"orders/internal/gateway/metrics"
	"orders/internal/pkg/config"

	"github.com/wneessen/go-mail"
)

const serviceName = "smtp"

// Mailer sends the new order alert to a fixed operational mailbox. It makes
// exactly one delivery attempt per call.
type Mailer struct {
	client    client
	from      string
	recipient string
}

func New(client client, from, recipient string) *Mailer {
	return &Mailer{
		client:    client,
		from:      from,
		recipient: recipient,
	}
}

// NewClient builds the go-mail client from SMTP settings.
func NewClient(cfg *config.SMTP) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(cfg.TLSPolicy)),
		mail.WithTimeout(15 * time.Second),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return client, nil
}

func (m *Mailer) SendOrderCreated(ctx context.Context, order entities.Order) error {
	msg, err := m.newOrderCreatedMessage(order)
	if err != nil {
		return fmt.Errorf("gateway mailer, order %s: %w", order.ID, err)
	}

	start := time.Now()
	err = m.client.DialAndSendWithContext(ctx, msg)
	metrics.ObserveRequest(serviceName, "SendOrderCreated", start, err)
	if err != nil {
		return fmt.Errorf("gateway mailer, send order %s: %w", order.ID, err)
	}

	return nil
}

func (m *Mailer) newOrderCreatedMessage(order entities.Order) (*mail.Msg, error) {
	body, err := RenderOrderCreated(order)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("sender address: %w", err)
	}
	if err := msg.To(m.recipient); err != nil {
		return nil, fmt.Errorf("recipient address: %w", err)
	}
	msg.Subject(orderCreatedSubject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	return msg, nil
}

func tlsPolicy(policy string) mail.TLSPolicy {
	switch policy {
	case "none":
		return mail.NoTLS
	case "opportunistic":
		return mail.TLSOpportunistic
	default:
		return mail.TLSMandatory
	}
}
