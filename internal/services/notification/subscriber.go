package notification

import (
	"context"
	"fmt"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/messaging"
)

// Subscriber consumes order lifecycle events and surfaces them as
// human-readable notifications. In production this is where email or SMS
// delivery would hook in.
type Subscriber struct {
	consumer *messaging.Consumer
	logger   *logger.Logger
}

// NewSubscriber creates a new notification subscriber.
func NewSubscriber(consumer *messaging.Consumer, log *logger.Logger) *Subscriber {
	return &Subscriber{
		consumer: consumer,
		logger:   log,
	}
}

// Start consumes order events until the context is cancelled.
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()
	s.logger.Info("service_started", "Notification subscriber started", requestID, nil)

	return s.consumer.StartConsuming(ctx, s.handleEvent)
}

func (s *Subscriber) handleEvent(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var event messaging.OrderEvent
	if err := messaging.ParseMessage(body, &event); err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse order event", requestID, err, nil)
		return fmt.Errorf("failed to parse order event: %w", err)
	}

	fmt.Println(s.formatNotification(&event))

	s.logger.Info("notification_displayed", "Notification displayed", requestID, map[string]interface{}{
		"event_type":   event.EventType,
		"order_id":     event.OrderID,
		"status":       event.Status,
		"table_number": event.TableNumber,
	})

	return nil
}

func (s *Subscriber) formatNotification(event *messaging.OrderEvent) string {
	timestamp := event.Timestamp.Format("2006-01-02 15:04:05")

	switch event.EventType {
	case messaging.OrderCreatedKey:
		return fmt.Sprintf("[%s] New order #%d for table %d, total %s.",
			timestamp, event.OrderID, event.TableNumber, event.TotalAmount.StringFixed(2))
	case messaging.OrderStatusChangedKey:
		return fmt.Sprintf("[%s] Order #%d is now %s.",
			timestamp, event.OrderID, event.Status)
	default:
		return fmt.Sprintf("[%s] Order #%d: %s.",
			timestamp, event.OrderID, event.EventType)
	}
}
