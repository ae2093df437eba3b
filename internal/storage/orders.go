package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"buntudelice/internal/domain"
)

const orderColumns = `
	id, user_id, restaurant_id, status, payment_status, delivery_status,
	total_amount, delivery_address, COALESCE(special_instructions, ''),
	created_at, updated_at`

func scanOrder(s interface{ Scan(...any) error }) (domain.Order, error) {
	var o domain.Order
	err := s.Scan(
		&o.ID, &o.UserID, &o.RestaurantID, &o.Status, &o.PaymentStatus,
		&o.DeliveryStatus, &o.TotalAmount, &o.DeliveryAddress,
		&o.SpecialInstructions, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

// CreateOrder inserts the order and its items in one transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, restaurant_id, status, payment_status,
			delivery_status, total_amount, delivery_address, special_instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, order.UserID, order.RestaurantID, order.Status, order.PaymentStatus,
		order.DeliveryStatus, order.TotalAmount, order.DeliveryAddress,
		order.SpecialInstructions).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		customizations, _ := json.Marshal(item.Customizations)
		err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, name, quantity, price, customizations)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, item.OrderID, item.MenuItemID, item.Name, item.Quantity, item.Price, customizations).
			Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return domain.Order{}, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, menu_item_id, name, quantity, price, customizations
		FROM order_items WHERE order_id = $1`, id)
	if err != nil {
		return domain.Order{}, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		var customizations []byte
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID,
			&item.Name, &item.Quantity, &item.Price, &customizations); err != nil {
			logrus.WithError(err).Warn("skipping unreadable order item row")
			continue
		}
		item.Customizations = domain.ParseCustomizations(customizations)
		order.Items = append(order.Items, item)
	}
	return order, rows.Err()
}

func (r *PostgresRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			logrus.WithError(err).Warn("skipping unreadable order row")
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateOrderStatuses persists the three status axes together; transition
// validation happens in the service layer before this is called.
func (r *PostgresRepository) UpdateOrderStatuses(ctx context.Context, order domain.Order) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, payment_status = $2, delivery_status = $3, updated_at = NOW()
		WHERE id = $4
	`, order.Status, order.PaymentStatus, order.DeliveryStatus, order.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("order %s not updated", order.ID)
	}
	return nil
}

func (r *PostgresRepository) SaveOrderQRCode(ctx context.Context, orderID uuid.UUID, qr []byte) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetOrderQRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRowContext(ctx,
		`SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qr)
	return qr, err
}

func (r *PostgresRepository) CountOrdersByStatus(ctx context.Context) (map[domain.OrderStatus]int, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.OrderStatus]int{}
	for rows.Next() {
		var status domain.OrderStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			continue
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
