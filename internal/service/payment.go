package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"buntudelice/internal/domain"
)

// FlowState tracks a payment attempt through its machine:
// validating -> submitting -> settling -> completed | failed.
// The stored record only ever sees pending/completed/failed; the earlier
// states live in the logs of one Initiate call.
type FlowState string

const (
	FlowValidating FlowState = "validating"
	FlowSubmitting FlowState = "submitting"
	FlowSettling   FlowState = "settling"
	FlowCompleted  FlowState = "completed"
	FlowFailed     FlowState = "failed"
)

var phonePattern = regexp.MustCompile(`^[0-9]{9}$`)

type PaymentRequest struct {
	UserID      uuid.UUID       `json:"user_id"`
	OrderID     *uuid.UUID      `json:"order_id,omitempty"`
	Amount      float64         `json:"amount"`
	PhoneNumber string          `json:"phone_number"`
	Operator    domain.Operator `json:"operator"`
	Description string          `json:"description"`
}

type Wallet struct {
	Balance  float64          `json:"balance"`
	Payments []domain.Payment `json:"payments"`
}

type PaymentService struct {
	repo      PaymentRepository
	orders    OrderRepository
	publisher EventPublisher
}

func NewPaymentService(repo PaymentRepository, orders OrderRepository, publisher EventPublisher) *PaymentService {
	return &PaymentService{repo: repo, orders: orders, publisher: publisher}
}

// Initiate validates the request entirely before any network call, then
// records a pending payment awaiting settlement. Never retried: a failure
// surfaces rather than risking a duplicate charge. A pending record whose
// settlement never arrives is an accepted inconsistency reconciled out of
// band; nothing is rolled back here.
func (s *PaymentService) Initiate(ctx context.Context, req PaymentRequest) (domain.Payment, error) {
	logrus.WithField("state", FlowValidating).Debug("validating payment request")
	if err := validatePaymentRequest(req); err != nil {
		logrus.WithField("state", FlowFailed).WithError(err).Info("payment rejected before submission")
		return domain.Payment{}, err
	}

	logrus.WithField("state", FlowSubmitting).Debug("submitting payment record")
	payment := domain.Payment{
		UserID:      req.UserID,
		OrderID:     req.OrderID,
		Amount:      req.Amount,
		Method:      methodFor(req.Operator),
		Status:      domain.PaymentPending,
		Description: req.Description,
		PhoneNumber: req.PhoneNumber,
		Operator:    req.Operator,
	}
	if err := s.repo.InsertPayment(ctx, &payment); err != nil {
		return domain.Payment{}, fmt.Errorf("create payment record: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"operator":   payment.Operator,
		"state":      FlowSettling,
	}).Info("payment awaiting settlement")

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, domain.Event{
			Type:      "payment_initiated",
			PaymentID: payment.ID,
			UserID:    payment.UserID,
			Amount:    payment.Amount,
			Status:    string(payment.Status),
			Timestamp: time.Now(),
		})
	}

	return payment, nil
}

// Settle is the settlement callback: it moves exactly one pending record to
// a terminal status and mirrors the outcome onto the linked order.
func (s *PaymentService) Settle(ctx context.Context, id uuid.UUID, outcome domain.PaymentStatus) (domain.Payment, error) {
	if outcome != domain.PaymentCompleted && outcome != domain.PaymentFailed {
		return domain.Payment{}, invalidField("status", "settlement outcome must be completed or failed")
	}

	settled, err := s.repo.SettlePayment(ctx, id, outcome)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("settle payment: %w", err)
	}
	if !settled {
		if _, err := s.repo.GetPayment(ctx, id); errors.Is(err, sql.ErrNoRows) {
			return domain.Payment{}, ErrPaymentNotFound
		}
		return domain.Payment{}, ErrPaymentSettled
	}

	payment, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("reload payment: %w", err)
	}

	state := FlowCompleted
	if outcome == domain.PaymentFailed {
		state = FlowFailed
	}
	logrus.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"state":      state,
	}).Info("payment settled")

	if payment.OrderID != nil && s.orders != nil {
		if order, err := s.orders.GetOrder(ctx, *payment.OrderID); err == nil {
			if order.PaymentStatus.CanTransitionTo(outcome) {
				order.PaymentStatus = outcome
				if err := s.orders.UpdateOrderStatuses(ctx, order); err != nil {
					logrus.WithError(err).Warn("failed to mirror settlement onto order")
				}
			}
		}
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, domain.Event{
			Type:      "payment_settled",
			PaymentID: payment.ID,
			UserID:    payment.UserID,
			Amount:    payment.Amount,
			Status:    string(payment.Status),
			Timestamp: time.Now(),
		})
	}

	return payment, nil
}

func (s *PaymentService) Wallet(ctx context.Context, userID uuid.UUID) (Wallet, error) {
	var payments []domain.Payment
	err := retryRead(ctx, func() error {
		var err error
		payments, err = s.repo.ListPaymentsByUser(ctx, userID)
		return err
	})
	if err != nil {
		return Wallet{}, fmt.Errorf("list payments: %w", err)
	}

	balance, err := s.repo.TotalCompletedByUser(ctx, userID)
	if err != nil {
		return Wallet{}, fmt.Errorf("wallet balance: %w", err)
	}

	return Wallet{Balance: balance, Payments: payments}, nil
}

func validatePaymentRequest(req PaymentRequest) error {
	if req.PhoneNumber == "" {
		return invalidField("phone_number", "phone number is required")
	}
	if !phonePattern.MatchString(req.PhoneNumber) {
		return invalidField("phone_number", "phone number must be exactly 9 digits")
	}
	if req.Operator == "" {
		return invalidField("operator", "operator is required")
	}
	if req.Operator != domain.OperatorMTN && req.Operator != domain.OperatorAirtel {
		return invalidField("operator", "operator must be mtn or airtel")
	}
	if req.Amount <= 0 {
		return invalidField("amount", "amount must be positive")
	}
	return nil
}

func methodFor(operator domain.Operator) string {
	if operator == domain.OperatorMTN {
		return "mobile_mtn"
	}
	return "mobile_airtel"
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
