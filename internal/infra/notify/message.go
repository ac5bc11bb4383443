package notify

import (
	"context"
	"fmt"
	"log/slog"

	"repairshop/internal/domain/order"
)

// Sender delivers a rendered message to a client's phone.
type Sender interface {
	Send(ctx context.Context, phone, message string, ev order.Event) error
}

// MessageObserver turns each status change into a customer-facing message.
type MessageObserver struct {
	sender Sender
	logger *slog.Logger
}

func NewMessageObserver(sender Sender, logger *slog.Logger) *MessageObserver {
	return &MessageObserver{sender: sender, logger: logger}
}

func (m *MessageObserver) Notify(ctx context.Context, ev order.Event) {
	msg, ok := RenderMessage(ev)
	if !ok {
		return
	}
	if err := m.sender.Send(ctx, ev.Client.Phone, msg, ev); err != nil {
		m.logger.Warn("Failed to deliver order notification",
			slog.String("order_id", ev.OrderID.String()),
			slog.String("status", ev.Status.String()),
			slog.String("error", err.Error()))
	}
}

// RenderMessage returns false for statuses without a template.
func RenderMessage(ev order.Event) (string, bool) {
	name := ev.Client.Name
	switch ev.Status {
	case order.StatusWaiting:
		return fmt.Sprintf("Hello, %s! We have received your %s. Order #%s is open and inspection will start shortly.",
			name, ev.Vehicle.Model, ev.OrderID), true
	case order.StatusInspecting:
		return fmt.Sprintf("Hello, %s! Our team has started inspecting your %s (order #%s).",
			name, ev.Vehicle.Model, ev.OrderID), true
	case order.StatusInService:
		return fmt.Sprintf("Good news, %s! Work on your vehicle (order #%s) is under way.",
			name, ev.OrderID), true
	case order.StatusFinalized:
		return fmt.Sprintf("Service complete! %s, your %s (plate %s) is ready for pickup.",
			name, ev.Vehicle.Model, ev.Vehicle.Plate), true
	case order.StatusCancelled:
		return fmt.Sprintf("Attention, %s. Order #%s for your vehicle has been cancelled.",
			name, ev.OrderID), true
	default:
		return "", false
	}
}
