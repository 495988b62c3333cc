package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager runs functions inside a PostgreSQL transaction. Repositories pick
// the transaction up from the context through pgxv5.CtxGetter.
type Manager struct {
	internal *manager.Manager
	level    pgx.TxIsoLevel
}

type Option func(*Manager)

// WithIsoLevel overrides the default serializable isolation.
func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(m *Manager) {
		m.level = level
	}
}

func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		level:    pgx.Serializable,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: m.level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Noop satisfies the same contract for stores without multi-statement
// transactions (the document backend). fn runs directly.
type Noop struct{}

func NewNoop() Noop {
	return Noop{}
}

func (Noop) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
