package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/fieldservice/internal/model"
)

type statusChangedRecord struct {
	EventUUID string `json:"event_uuid"`
	OrderUUID string `json:"order_uuid"`
	Code      string `json:"code"`
	From      string `json:"from"`
	To        string `json:"to"`
	At        string `json:"at"`
}

type stockAlertRecord struct {
	EventUUID string `json:"event_uuid"`
	ItemID    string `json:"item_id"`
	Reference string `json:"reference"`
	Stock     int64  `json:"stock"`
	At        string `json:"at"`
}

type partsReceivedRecord struct {
	EventUUID string `json:"event_uuid"`
	OrderUUID string `json:"order_uuid"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) StatusChangedToPayload(m model.StatusChanged) ([]byte, error) {
	payload, err := json.Marshal(statusChangedRecord{
		EventUUID: m.EventID.String(),
		OrderUUID: m.OrderID.String(),
		Code:      m.Code,
		From:      string(m.From),
		To:        string(m.To),
		At:        m.At.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal status changed record: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) StockAlertToPayload(m model.StockAlert) ([]byte, error) {
	payload, err := json.Marshal(stockAlertRecord{
		EventUUID: m.EventID.String(),
		ItemID:    m.ItemID,
		Reference: m.Reference,
		Stock:     m.Stock,
		At:        m.At.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stock alert record: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) PartsReceivedToModel(data []byte) (model.PartsReceived, error) {
	var rec partsReceivedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.PartsReceived{}, fmt.Errorf("failed to unmarshal parts received record: %w", err)
	}

	orderID, err := uuid.Parse(rec.OrderUUID)
	if err != nil {
		return model.PartsReceived{}, fmt.Errorf("invalid order_uuid %q: %w", rec.OrderUUID, err)
	}

	// the event id is informational; a missing one is not an error
	eventID, _ := uuid.Parse(rec.EventUUID)

	return model.PartsReceived{EventID: eventID, OrderID: orderID}, nil
}
