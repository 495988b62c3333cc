package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"orders/internal/entities"
	"orders/internal/repository"
	orderservice "orders/internal/service/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, customer_name, customer_email, customer_address, order_details,
	total, transaction_id, order_status, payment_status, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	details, err := itemsFromDomain(orderCreate.Items)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO orders (id, customer_name, customer_email, customer_address, order_details,
			total, transaction_id, order_status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		uuid.New().String(),
		orderCreate.CustomerName,
		orderCreate.Email,
		orderCreate.Address,
		details,
		*orderCreate.TotalPrice,
		orderCreate.TransactionID,
		entities.DefaultOrderStatus.String(),
		entities.PaymentPending.String(),
	)

	orderModel, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: %w", orderservice.ErrMissingRequiredFields, err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel)
}

func (r *Repository) List(ctx context.Context, page entities.Page) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return r.queryOrders(ctx, "list", query, args...)
}

func (r *Repository) ListByEmail(ctx context.Context, email string) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"lower(customer_email)": strings.ToLower(email)}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listbyemail error: %w", err)
	}

	return r.queryOrders(ctx, "listbyemail", query, args...)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	if !isOrderID(id) {
		return nil, orderservice.ErrOrderNotFound
	}

	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel)
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	if orderModifyModel.ID == nil || !isOrderID(*orderModifyModel.ID) {
		return nil, orderservice.ErrOrderNotFound
	}

	builder := qb.
		Update("orders")

	if orderModifyModel.OrderStatus != nil {
		builder = builder.Set("order_status", orderModifyModel.OrderStatus)
	}
	if orderModifyModel.PaymentStatus != nil {
		builder = builder.Set("payment_status", orderModifyModel.PaymentStatus)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel)
}

func (r *Repository) Delete(ctx context.Context, id string) (*entities.Order, error) {
	if !isOrderID(id) {
		return nil, orderservice.ErrOrderNotFound
	}

	query := `DELETE FROM orders
		WHERE id = $1
		RETURNING ` + orderColumns

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	return ToDomain(orderModel)
}

func (r *Repository) RevenueByDay(ctx context.Context) ([]entities.RevenuePoint, error) {
	query := `SELECT date_trunc('day', created_at AT TIME ZONE 'UTC') AS day, SUM(total)::float8
		FROM orders
		GROUP BY day
		ORDER BY day`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository revenue error: %w", err)
	}
	defer rows.Close()

	points := make([]entities.RevenuePoint, 0, 32)
	for rows.Next() {
		var revenueModel RevenueDB
		if err := rows.Scan(&revenueModel.Day, &revenueModel.Revenue); err != nil {
			return nil, fmt.Errorf("unexpected order repository revenue error: %w", err)
		}
		points = append(points, entities.RevenuePoint{
			Day:     time.Date(revenueModel.Day.Year(), revenueModel.Day.Month(), revenueModel.Day.Day(), 0, 0, 0, 0, time.UTC),
			Revenue: revenueModel.Revenue,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository revenue error: %w", err)
	}

	return points, nil
}

func (r *Repository) CountByState(ctx context.Context) ([]entities.OrderStateCount, error) {
	query := `SELECT order_status, payment_status, COUNT(*)
		FROM orders
		GROUP BY order_status, payment_status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystate error: %w", err)
	}
	defer rows.Close()

	counts := make([]entities.OrderStateCount, 0, 8)
	for rows.Next() {
		var countModel StateCountDB
		if err := rows.Scan(&countModel.OrderStatus, &countModel.PaymentStatus, &countModel.Count); err != nil {
			return nil, fmt.Errorf("unexpected order repository countbystate error: %w", err)
		}
		counts = append(counts, entities.OrderStateCount{
			Status:        entities.OrderStatusType(countModel.OrderStatus),
			PaymentStatus: entities.PaymentStatusType(countModel.PaymentStatus),
			Count:         countModel.Count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystate error: %w", err)
	}

	return counts, nil
}

func (r *Repository) queryOrders(ctx context.Context, op string, query string, args ...any) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
		}
		orderModels = append(orderModels, *orderModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}

	return ToDomainList(orderModels)
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.CustomerName,
		&orderModel.CustomerEmail,
		&orderModel.CustomerAddress,
		&orderModel.OrderDetails,
		&orderModel.Total,
		&orderModel.TransactionID,
		&orderModel.OrderStatus,
		&orderModel.PaymentStatus,
		&orderModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}

// isOrderID rejects ids this table can never hold, such as document ids
// from the other backend.
func isOrderID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
