package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует таблицу заказов поверх PostgreSQL.
// В отличие от таблицы в памяти, заказы доступны по ID и после перезапуска.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// Create атомарно сохраняет заголовок заказа и его позиции.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (err error) {
	const op = "OrderRepo.Create"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.pool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()
	ctx = tr.WithTx(ctx, tx.Transaction())

	model, items := o.conv.ToModel(order)

	if err = o.insertOrder(ctx, model); err != nil {
		return e.Wrap(op, err)
	}

	if err = o.insertItems(ctx, items); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// GetByID возвращает заказ вместе с позициями в исходном порядке.
func (o *OrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, created_at, full_name, email, phone, address, city, state, pincode,
		       total, status, payment_status
		FROM orders
		WHERE id = $1
	`

	var model converter.OrderModel
	err := o.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.CreatedAt, &model.FullName, &model.Email, &model.Phone,
		&model.Address, &model.City, &model.State, &model.Pincode,
		&model.Total, &model.Status, &model.PaymentStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrOrderNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	items, err := o.getItems(ctx, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model, items), nil
}

func (o *OrderRepo) insertOrder(ctx context.Context, model *converter.OrderModel) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (
			id, created_at, full_name, email, phone, address, city, state, pincode,
			total, status, payment_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	if _, err := tx.Exec(ctx, query,
		model.ID, model.CreatedAt, model.FullName, model.Email, model.Phone,
		model.Address, model.City, model.State, model.Pincode,
		model.Total, model.Status, model.PaymentStatus,
	); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (o *OrderRepo) insertItems(ctx context.Context, items []converter.OrderItemModel) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO order_items (order_id, position, product_id, name, price, image, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.OrderID, item.Position, item.ProductID, item.Name, item.Price, item.Image, item.Quantity)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (o *OrderRepo) getItems(ctx context.Context, orderID string) ([]converter.OrderItemModel, error) {
	query := `
		SELECT order_id, position, product_id, name, price, image, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`

	rows, err := o.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]converter.OrderItemModel, 0)
	for rows.Next() {
		var item converter.OrderItemModel
		if err := rows.Scan(&item.OrderID, &item.Position, &item.ProductID, &item.Name, &item.Price, &item.Image, &item.Quantity); err != nil {
			return nil, err
		}

		result = append(result, item)
	}

	return result, rows.Err()
}
