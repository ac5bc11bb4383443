package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"repairshop/internal/domain/order"

	"github.com/nats-io/nats.go"
)

type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, phone, message string, ev order.Event) error {
	s.logger.InfoContext(ctx, "Client notification",
		slog.String("to", phone),
		slog.String("order_id", ev.OrderID.String()),
		slog.String("message", message))
	return nil
}

// Publisher is the part of *nats.Conn the sender needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSSender publishes every notification to "<subject>.<status>".
type NATSSender struct {
	pub     Publisher
	subject string
}

func NewNATSSender(pub Publisher, subject string) *NATSSender {
	return &NATSSender{pub: pub, subject: subject}
}

type natsMessage struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Plate     string    `json:"plate"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *NATSSender) Send(_ context.Context, phone, message string, ev order.Event) error {
	data, err := json.Marshal(natsMessage{
		OrderID:   ev.OrderID.String(),
		Status:    ev.Status.String(),
		Phone:     phone,
		Message:   message,
		Plate:     ev.Vehicle.Plate,
		Timestamp: ev.At,
	})
	if err != nil {
		return fmt.Errorf("marshal nats message: %w", err)
	}
	return s.pub.Publish(s.subject+"."+ev.Status.String(), data)
}

// ConnectNATS dials url with unlimited reconnects.
func ConnectNATS(url string, logger *slog.Logger) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("repairshop"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", slog.String("error", err.Error()))
			}
		}),
	)
}
