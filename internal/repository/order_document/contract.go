package order_document

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Collections hands out the orders collection, dialing on first use.
type Collections interface {
	Get(ctx context.Context) (*mongo.Collection, error)
}
