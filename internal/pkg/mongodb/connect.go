package mongodb

import (
	"context"
	"fmt"

	"orders/internal/pkg/config"
	"orders/pkg/lazy"
	"orders/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewOrdersCollection returns a lazily dialed handle to the orders collection.
// Nothing touches the network until the first Get.
func NewOrdersCollection(log logger.Logger, cfg *config.Mongo) *lazy.Conn[*mongo.Collection] {
	mongoLog := log.With(
		logger.NewField("database", cfg.Database),
		logger.NewField("collection", cfg.Collection),
	)

	return lazy.New(func(ctx context.Context) (*mongo.Collection, error) {
		ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()

		mongoLog.Info("connecting to mongodb")

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			mongoLog.With(logger.NewField("error", err)).Error("mongodb connect failed")
			return nil, fmt.Errorf("mongodb connect: %w", err)
		}

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.WithoutCancel(ctx))
			mongoLog.With(logger.NewField("error", err)).Error("mongodb ping failed")
			return nil, fmt.Errorf("mongodb ping: %w", err)
		}

		mongoLog.Info("mongodb connection established")
		return client.Database(cfg.Database).Collection(cfg.Collection), nil
	})
}

// Disconnect closes the client behind conn if it was ever dialed.
func Disconnect(ctx context.Context, conn *lazy.Conn[*mongo.Collection]) error {
	collection, ok := conn.Loaded()
	if !ok {
		return nil
	}
	return collection.Database().Client().Disconnect(ctx)
}

// Pinger checks the primary through the lazily dialed client. The first ping
// dials when nothing has touched the collection yet.
type Pinger struct {
	conn *lazy.Conn[*mongo.Collection]
}

func NewPinger(conn *lazy.Conn[*mongo.Collection]) Pinger {
	return Pinger{conn: conn}
}

func (p Pinger) Ping(ctx context.Context) error {
	collection, err := p.conn.Get(ctx)
	if err != nil {
		return fmt.Errorf("mongodb connection: %w", err)
	}
	if err := collection.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping: %w", err)
	}
	return nil
}
