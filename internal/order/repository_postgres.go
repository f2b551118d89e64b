package order

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (order_number, user_id, subtotal, shipping, tax, total, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`
	insertOrderItemQuery = `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`
	clearCartLinesQuery = `DELETE FROM cart_items WHERE user_id = $1`

	listOrdersQuery = `
		SELECT id, order_number, user_id, subtotal, shipping, tax, total, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY id DESC
	`
	getOrderQuery = `
		SELECT id, order_number, user_id, subtotal, shipping, tax, total, status, created_at
		FROM orders
		WHERE id = $1 AND user_id = $2
	`
	listItemsQuery = `
		SELECT oi.id, oi.order_id, oi.product_id, COALESCE(p.name, ''), oi.quantity, oi.price
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1::int[])
		ORDER BY oi.id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateOrder runs the full checkout write set — order row, item rows, cart
// clear — inside one transaction so a failure partway leaves no half-order
// behind.
func (r *PostgresRepository) CreateOrder(ord Order, items []OrderItem) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := tx.QueryRow(
		insertOrderQuery,
		ord.OrderNumber,
		ord.UserID,
		ord.Subtotal,
		ord.Shipping,
		ord.Tax,
		ord.Total,
		ord.Status,
		ord.CreatedAt,
	).Scan(&ord.OrderID); err != nil {
		return Order{}, err
	}

	ord.Items = make([]OrderItem, 0, len(items))
	for _, it := range items {
		it.OrderID = ord.OrderID
		if err := tx.QueryRow(insertOrderItemQuery, it.OrderID, it.ProductID, it.Quantity, it.Price).Scan(&it.ItemID); err != nil {
			return Order{}, err
		}
		ord.Items = append(ord.Items, it)
	}

	if _, err := tx.Exec(clearCartLinesQuery, ord.UserID); err != nil {
		return Order{}, err
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(listOrdersQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	ids := make([]int, 0)
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.OrderID, &o.OrderNumber, &o.UserID, &o.Subtotal, &o.Shipping, &o.Tax, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.OrderID)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := r.listItems(ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].OrderID]
	}
	return orders, nil
}

func (r *PostgresRepository) GetByID(orderID, userID int) (Order, error) {
	var o Order
	err := r.db.QueryRow(getOrderQuery, orderID, userID).
		Scan(&o.OrderID, &o.OrderNumber, &o.UserID, &o.Subtotal, &o.Shipping, &o.Tax, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}

	itemsByOrder, err := r.listItems([]int{o.OrderID})
	if err != nil {
		return Order{}, err
	}
	o.Items = itemsByOrder[o.OrderID]
	return o, nil
}

func (r *PostgresRepository) listItems(orderIDs []int) (map[int][]OrderItem, error) {
	rows, err := r.db.Query(listItemsQuery, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]OrderItem)
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ItemID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, nil
}
