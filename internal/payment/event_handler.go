package payment

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/dorm-management/internal/core/events"
)

// EventHandler writes an audit trail for reconciliation outcomes. Settlement
// itself never depends on these handlers running.
type EventHandler struct {
	logger *slog.Logger
}

func NewEventHandler(logger *slog.Logger) *EventHandler {
	return &EventHandler{logger: logger}
}

func (h *EventHandler) RegisterHandlers(bus *events.EventBus) {
	bus.Subscribe(events.EventTypePaymentSettled, h.handleSettled)
	bus.Subscribe(events.EventTypePaymentRejected, h.handleRejected)
}

func (h *EventHandler) handleSettled(ctx context.Context, event events.Event) error {
	settled, ok := event.(*events.PaymentSettledEvent)
	if !ok {
		h.logger.Error("unexpected event payload", "event_type", event.EventType())
		return nil
	}

	h.logger.Info("audit: payment settled",
		"event_id", settled.EventID(),
		"tran_id", settled.TransactionID,
		"val_id", settled.ValidationID,
		"user_id", settled.UserID,
		"hall_fees", settled.HallFees,
		"dining_fees", settled.DiningFees,
		"payment_method", settled.PaymentMethod)
	return nil
}

func (h *EventHandler) handleRejected(ctx context.Context, event events.Event) error {
	rejected, ok := event.(*events.PaymentRejectedEvent)
	if !ok {
		h.logger.Error("unexpected event payload", "event_type", event.EventType())
		return nil
	}

	h.logger.Warn("audit: payment rejected",
		"event_id", rejected.EventID(),
		"tran_id", rejected.TransactionID,
		"reason", rejected.Reason,
		"amount", rejected.Amount)
	return nil
}
