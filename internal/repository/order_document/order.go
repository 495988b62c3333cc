package order_document

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"orders/internal/entities"
	orderservice "orders/internal/service/order"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dayLayout = "2006-01-02"

// Expressions that read a field under either naming convention.
var (
	createdAtExpr     = bson.M{"$toDate": bson.M{"$ifNull": bson.A{"$createdAt", "$created_at"}}}
	totalExpr         = bson.M{"$toDouble": bson.M{"$ifNull": bson.A{"$totalPrice", bson.M{"$ifNull": bson.A{"$total", 0}}}}}
	statusExpr        = bson.M{"$ifNull": bson.A{"$status", "$order_status"}}
	paymentStatusExpr = bson.M{"$ifNull": bson.A{"$paymentStatus", bson.M{"$ifNull": bson.A{"$payment_status", entities.PaymentPending.String()}}}}
)

type Repository struct {
	collections Collections
	now         func() time.Time
}

func New(collections Collections) *Repository {
	return &Repository{
		collections: collections,
		now:         time.Now,
	}
}

func (r *Repository) Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	collection, err := r.collections.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("unexpected order document create error: %w", err)
	}

	// BSON dates keep milliseconds only.
	now := r.now().UTC().Truncate(time.Millisecond)
	document := fromDomainCreate(orderCreate, primitive.NewObjectID(), now)

	if _, err := collection.InsertOne(ctx, document); err != nil {
		return nil, fmt.Errorf("unexpected order document create error: %w", err)
	}

	return &entities.Order{
		ID:            document.ID.Hex(),
		CustomerName:  document.CustomerName,
		Email:         document.Email,
		Address:       document.Address,
		Items:         itemsToDomain(document.Items),
		TotalPrice:    document.TotalPrice,
		TransactionID: document.TransactionID,
		Status:        entities.OrderStatusType(document.Status),
		PaymentStatus: entities.PaymentStatusType(document.PaymentStatus),
		CreatedAt:     now,
	}, nil
}

func (r *Repository) List(ctx context.Context, page entities.Page) ([]entities.Order, error) {
	pipeline := newestFirst(bson.M{})
	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: int64(page.Offset)}},
		bson.D{{Key: "$limit", Value: int64(page.Limit)}},
	)

	return r.aggregateOrders(ctx, "list", pipeline)
}

func (r *Repository) ListByEmail(ctx context.Context, email string) ([]entities.Order, error) {
	exact := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(email) + "$", Options: "i"}
	match := bson.M{"$or": bson.A{
		bson.M{"email": exact},
		bson.M{"customer_email": exact},
	}}

	return r.aggregateOrders(ctx, "listbyemail", newestFirst(match))
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	collection, err := r.collections.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("unexpected order document getbyid error: %w", err)
	}

	var document OrderDocument
	err = collection.FindOne(ctx, idFilter(id)).Decode(&document)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order document getbyid error: %w", err)
	}

	return ToDomain(&document)
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil {
		return nil, orderservice.ErrOrderNotFound
	}

	collection, err := r.collections.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("unexpected order document update error: %w", err)
	}

	update := bson.M{"$set": fromDomainModify(orderModify, r.now().UTC())}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var document OrderDocument
	err = collection.FindOneAndUpdate(ctx, idFilter(*orderModify.ID), update, opts).Decode(&document)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order document update error: %w", err)
	}

	return ToDomain(&document)
}

func (r *Repository) Delete(ctx context.Context, id string) (*entities.Order, error) {
	collection, err := r.collections.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("unexpected order document delete error: %w", err)
	}

	var document OrderDocument
	err = collection.FindOneAndDelete(ctx, idFilter(id)).Decode(&document)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order document delete error: %w", err)
	}

	return ToDomain(&document)
}

func (r *Repository) RevenueByDay(ctx context.Context) ([]entities.RevenuePoint, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.M{
			"day": bson.M{"$dateToString": bson.M{
				"format":   "%Y-%m-%d",
				"date":     createdAtExpr,
				"timezone": "UTC",
			}},
			"total": totalExpr,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$day",
			"revenue": bson.M{"$sum": "$total"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	var documents []revenueDocument
	if err := r.aggregate(ctx, pipeline, &documents); err != nil {
		return nil, fmt.Errorf("unexpected order document revenue error: %w", err)
	}

	points := make([]entities.RevenuePoint, 0, len(documents))
	for _, document := range documents {
		day, err := time.ParseInLocation(dayLayout, document.Day, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("unexpected order document revenue error: %w", err)
		}
		points = append(points, entities.RevenuePoint{Day: day, Revenue: document.Revenue})
	}

	return points, nil
}

func (r *Repository) CountByState(ctx context.Context) ([]entities.OrderStateCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"status":        statusExpr,
				"paymentStatus": paymentStatusExpr,
			},
			"count": bson.M{"$sum": 1},
		}}},
	}

	var documents []stateCountDocument
	if err := r.aggregate(ctx, pipeline, &documents); err != nil {
		return nil, fmt.Errorf("unexpected order document countbystate error: %w", err)
	}

	counts := make([]entities.OrderStateCount, 0, len(documents))
	for _, document := range documents {
		counts = append(counts, entities.OrderStateCount{
			Status:        entities.OrderStatusType(document.State.Status),
			PaymentStatus: entities.PaymentStatusType(document.State.PaymentStatus),
			Count:         document.Count,
		})
	}

	return counts, nil
}

func (r *Repository) aggregateOrders(ctx context.Context, op string, pipeline mongo.Pipeline) ([]entities.Order, error) {
	var documents []OrderDocument
	if err := r.aggregate(ctx, pipeline, &documents); err != nil {
		return nil, fmt.Errorf("unexpected order document %s error: %w", op, err)
	}

	return ToDomainList(documents)
}

func (r *Repository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	collection, err := r.collections.Get(ctx)
	if err != nil {
		return err
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}

	return cursor.All(ctx, out)
}

// newestFirst sorts on the creation time whichever field holds it.
func newestFirst(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$addFields", Value: bson.M{"sortAt": createdAtExpr}}},
		{{Key: "$sort", Value: bson.D{{Key: "sortAt", Value: -1}, {Key: "_id", Value: -1}}}},
	}
}

// idFilter matches the generated ObjectID for hex ids and the imported "id"
// field for anything else. Ids that match neither are simply not found.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"id": id}
}
