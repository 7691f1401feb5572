package entity

// OrderStatus is the order's kitchen/delivery progression.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderEnRoute   OrderStatus = "EN_ROUTE"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady,
		OrderEnRoute, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Cancellable reports whether a customer may still cancel the order.
// Once the kitchen starts preparing, cancellation is closed.
func (s OrderStatus) Cancellable() bool {
	return s == OrderPending || s == OrderConfirmed
}

// PaymentStatus tracks the payment side of an order independently of
// its delivery progression.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Delivery status tags. Free-form progression, not a strict machine;
// ASSIGNED is set via driver assignment rather than a status endpoint.
const (
	DeliveryNotStarted = "NOT_STARTED"
	DeliveryAssigned   = "ASSIGNED"
	DeliveryPreparing  = "PREPARING"
	DeliveryEnRoute    = "EN_ROUTE"
	DeliveryArrived    = "ARRIVED"
	DeliveryDelivered  = "DELIVERED"
)
