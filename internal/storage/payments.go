package storage

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"buntudelice/internal/domain"
)

const paymentColumns = `
	id, user_id, order_id, amount, method, status,
	COALESCE(description, ''), phone_number, operator, created_at, updated_at`

func scanPayment(s interface{ Scan(...any) error }) (domain.Payment, error) {
	var p domain.Payment
	err := s.Scan(
		&p.ID, &p.UserID, &p.OrderID, &p.Amount, &p.Method, &p.Status,
		&p.Description, &p.PhoneNumber, &p.Operator, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *PostgresRepository) InsertPayment(ctx context.Context, payment *domain.Payment) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO payments (user_id, order_id, amount, method, status,
			description, phone_number, operator)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, payment.UserID, payment.OrderID, payment.Amount, payment.Method,
		payment.Status, payment.Description, payment.PhoneNumber, payment.Operator).
		Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
}

func (r *PostgresRepository) GetPayment(ctx context.Context, id uuid.UUID) (domain.Payment, error) {
	return scanPayment(r.DB.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
}

// SettlePayment moves a pending payment to a terminal status. The WHERE
// guard makes settling idempotence violations visible: zero rows affected
// means the record was already settled (or never existed).
func (r *PostgresRepository) SettlePayment(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE payments SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, status, id, domain.PaymentPending)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresRepository) ListPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			logrus.WithError(err).Warn("skipping unreadable payment row")
			continue
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func (r *PostgresRepository) TotalCompletedByUser(ctx context.Context, userID uuid.UUID) (float64, error) {
	var total sql.NullFloat64
	err := r.DB.QueryRowContext(ctx, `
		SELECT SUM(amount) FROM payments
		WHERE user_id = $1 AND status = $2
	`, userID, domain.PaymentCompleted).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

func (r *PostgresRepository) TotalCompleted(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	err := r.DB.QueryRowContext(ctx,
		`SELECT SUM(amount) FROM payments WHERE status = $1`, domain.PaymentCompleted).
		Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}
