package ordproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/platform/kafka"
	"github.com/you-humble/fieldservice/platform/logger"
)

type Converter interface {
	StatusChangedToPayload(m model.StatusChanged) ([]byte, error)
	StockAlertToPayload(m model.StockAlert) ([]byte, error)
}

type service struct {
	statusProducer kafka.Producer
	alertProducer  kafka.Producer
	conv           Converter
}

func NewOrderProducer(statusProducer, alertProducer kafka.Producer, conv Converter) *service {
	return &service{
		statusProducer: statusProducer,
		alertProducer:  alertProducer,
		conv:           conv,
	}
}

func (s *service) SendStatusChanged(ctx context.Context, event model.StatusChanged) error {
	payload, err := s.conv.StatusChangedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter status_changed_to_payload error: %w", err)
	}

	if err := s.statusProducer.Send(ctx, event.OrderID[:], payload); err != nil {
		return fmt.Errorf("producer to order.status_changed topic error: %w", err)
	}

	return nil
}

func (s *service) SendStockAlert(ctx context.Context, event model.StockAlert) error {
	payload, err := s.conv.StockAlertToPayload(event)
	if err != nil {
		return fmt.Errorf("converter stock_alert_to_payload error: %w", err)
	}

	if err := s.alertProducer.Send(ctx, []byte(event.ItemID), payload); err != nil {
		return fmt.Errorf("producer to catalog.stock_alert topic error: %w", err)
	}

	return nil
}

type nopSender struct{}

// NewNopSender drops events. It is used when the broker is disabled.
func NewNopSender() *nopSender { return &nopSender{} }

func (nopSender) SendStatusChanged(ctx context.Context, event model.StatusChanged) error {
	logger.Debug(ctx, "broker disabled, status change dropped",
		logger.String("order_id", event.OrderID.String()),
		logger.String("to", string(event.To)),
	)
	return nil
}

func (nopSender) SendStockAlert(ctx context.Context, event model.StockAlert) error {
	logger.Debug(ctx, "broker disabled, stock alert dropped", logger.String("item_id", event.ItemID))
	return nil
}
