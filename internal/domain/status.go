package domain

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderAccepted   OrderStatus = "accepted"
	OrderPreparing  OrderStatus = "preparing"
	OrderPrepared   OrderStatus = "prepared"
	OrderDelivering OrderStatus = "delivering"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var orderStatusRank = map[OrderStatus]int{
	OrderPending:    0,
	OrderAccepted:   1,
	OrderPreparing:  2,
	OrderPrepared:   3,
	OrderDelivering: 4,
	OrderDelivered:  5,
}

func (s OrderStatus) Valid() bool {
	if s == OrderCancelled {
		return true
	}
	_, ok := orderStatusRank[s]
	return ok
}

// CanTransitionTo allows only forward movement along the listed order.
// Cancellation is allowed from any state before delivered; both cancelled
// and delivered are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == OrderDelivered || s == OrderCancelled {
		return false
	}
	if next == OrderCancelled {
		return true
	}
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentPending:
		return next == PaymentCompleted || next == PaymentFailed
	case PaymentCompleted:
		return next == PaymentRefunded
	}
	return false
}

type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "pending"
	DeliveryAssigned   DeliveryStatus = "assigned"
	DeliveryPickedUp   DeliveryStatus = "picked_up"
	DeliveryDelivering DeliveryStatus = "delivering"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryFailed     DeliveryStatus = "failed"
)

var deliveryStatusRank = map[DeliveryStatus]int{
	DeliveryPending:    0,
	DeliveryAssigned:   1,
	DeliveryPickedUp:   2,
	DeliveryDelivering: 3,
	DeliveryDelivered:  4,
}

func (s DeliveryStatus) Valid() bool {
	if s == DeliveryFailed {
		return true
	}
	_, ok := deliveryStatusRank[s]
	return ok
}

func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	if s == DeliveryDelivered || s == DeliveryFailed {
		return false
	}
	if next == DeliveryFailed {
		return true
	}
	from, ok := deliveryStatusRank[s]
	if !ok {
		return false
	}
	to, ok := deliveryStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}
