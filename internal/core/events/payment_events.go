package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypePaymentSettled  = "payment.settled"
	EventTypePaymentRejected = "payment.rejected"
)

// PaymentSettledEvent is published after a callback settles a batch of fees.
type PaymentSettledEvent struct {
	BaseEvent
	TransactionID string `json:"transaction_id"`
	ValidationID  string `json:"validation_id"`
	UserID        int64  `json:"user_id"`
	HallFees      int    `json:"hall_fees"`
	DiningFees    int    `json:"dining_fees"`
	PaymentMethod string `json:"payment_method"`
}

func NewPaymentSettledEvent(transactionID, validationID string, userID int64, hallFees, diningFees int, method string) *PaymentSettledEvent {
	return &PaymentSettledEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePaymentSettled,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"transaction_id": transactionID,
				"validation_id":  validationID,
				"user_id":        userID,
				"hall_fees":      hallFees,
				"dining_fees":    diningFees,
				"payment_method": method,
			},
		},
		TransactionID: transactionID,
		ValidationID:  validationID,
		UserID:        userID,
		HallFees:      hallFees,
		DiningFees:    diningFees,
		PaymentMethod: method,
	}
}

// PaymentRejectedEvent is published when a success callback is rejected before
// settlement. Duplicate deliveries do not produce an event.
type PaymentRejectedEvent struct {
	BaseEvent
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason"`
	Amount        string `json:"amount"`
}

func NewPaymentRejectedEvent(transactionID, reason, amount string) *PaymentRejectedEvent {
	return &PaymentRejectedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePaymentRejected,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"transaction_id": transactionID,
				"reason":         reason,
				"amount":         amount,
			},
		},
		TransactionID: transactionID,
		Reason:        reason,
		Amount:        amount,
	}
}
