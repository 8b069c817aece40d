package ordconsumer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/platform/kafka"
	"github.com/you-humble/fieldservice/platform/logger"
)

type Converter interface {
	PartsReceivedToModel(data []byte) (model.PartsReceived, error)
}

type Service interface {
	Transition(ctx context.Context, req model.TransitionRequest) (*model.TransitionResult, error)
}

const (
	defaultAttempts   = 3
	defaultRetryDelay = 500 * time.Millisecond
)

type service struct {
	consumer kafka.Consumer
	conv     Converter
	svc      Service

	attempts   int
	retryDelay time.Duration
}

type Option func(*service)

// WithRetry sets how many times a storage failure is tried before the event
// is logged and skipped.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(s *service) {
		if attempts > 0 {
			s.attempts = attempts
		}
		s.retryDelay = delay
	}
}

func NewOrderConsumer(
	consumer kafka.Consumer,
	conv Converter,
	svc Service,
	opts ...Option,
) *service {
	s := &service{
		consumer:   consumer,
		conv:       conv,
		svc:        svc,
		attempts:   defaultAttempts,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) RunPartsReceivedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting parts received consumer")

	if err := s.consumer.Consume(ctx, s.partsReceivedHandler); err != nil {
		logger.Error(ctx, "Consume from parts.received topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

// partsReceivedHandler acknowledges events that can never apply (unknown
// order, read-only order, already received). Storage failures are retried a
// bounded number of times; the group handler does not mark a failed message
// but a later commit moves past it, so a returned error means the event was
// skipped.
func (s *service) partsReceivedHandler(ctx context.Context, msg kafka.Message) error {
	ev, err := s.conv.PartsReceivedToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode PartsReceivedRecord, skipping", logger.ErrorF(err))
		return fmt.Errorf("converter parts_received_to_model error: %w", err)
	}

	log := logger.With(logger.String("order_id", ev.OrderID.String()))

	err = s.transition(ctx, ev)
	switch {
	case err == nil:
		log.Info(ctx, "parts received")
		return nil
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrPrecondition):
		log.Warn(ctx, "parts received event skipped", logger.ErrorF(err))
		return nil
	default:
		log.Error(ctx, "consumer.Transition, event skipped", logger.ErrorF(err))
		return err
	}
}

func (s *service) transition(ctx context.Context, ev model.PartsReceived) error {
	req := model.TransitionRequest{
		OrderID:   ev.OrderID,
		Target:    model.StatusPartsReceived,
		Confirmed: true,
	}

	for attempt := 1; ; attempt++ {
		_, err := s.svc.Transition(ctx, req)
		if err == nil || !errors.Is(err, model.ErrAdapter) || attempt >= s.attempts {
			return err
		}

		logger.Warn(ctx, "parts received retry",
			logger.String("order_id", ev.OrderID.String()),
			logger.Int("attempt", attempt),
			logger.ErrorF(err),
		)

		select {
		case <-ctx.Done():
			return err
		case <-time.After(s.retryDelay):
		}
	}
}
