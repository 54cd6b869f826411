package relay

import (
	"context"
	"time"

	"avery/internal/constants"
	"avery/internal/logger"
	"avery/internal/notifier"
	"avery/internal/store"
	pkgerrors "avery/pkg/errors"
	"avery/pkg/logging"
	"avery/pkg/metrics"
	"avery/pkg/models"
)

// Service relays inbound events: persist first, then notify the admin.
// Persistence failures abort the event; delivery failures never roll the
// persisted record back.
type Service interface {
	IngestOrder(ctx context.Context, sub models.OrderSubmission) (*models.Record, error)
	IngestChat(ctx context.Context, msg models.ChatMessage) (string, error)
	ListOrders(ctx context.Context) ([]models.Record, error)
}

type service struct {
	repo     store.Repository
	notifier notifier.Notifier
	log      logger.Logger
	now      func() time.Time
}

type ServiceOption func(*service)

// WithClock overrides the timestamp source, used by tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		s.now = now
	}
}

func NewService(repo store.Repository, n notifier.Notifier, log logger.Logger, opts ...ServiceOption) Service {
	s := &service{
		repo:     repo,
		notifier: n,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) IngestOrder(ctx context.Context, sub models.OrderSubmission) (*models.Record, error) {
	text, err := FormatOrderNotification(sub)
	if err != nil {
		metrics.RelayEventsTotal.WithLabelValues("order", "rejected").Inc()
		return nil, pkgerrors.Wrap(err, pkgerrors.ErrValidation)
	}

	ctx = logging.WithCollection(ctx, constants.CollectionOrders)
	rec := NewOrderRecord(text, s.now().UTC())

	if err := s.repo.Append(ctx, constants.CollectionOrders, rec); err != nil {
		s.log.ErrorwCtx(ctx, "Failed to persist order", "error", err)
		metrics.RelayEventsTotal.WithLabelValues("order", "persist_error").Inc()
		return nil, pkgerrors.Wrap(err, pkgerrors.ErrPersistence)
	}

	if err := s.notifier.Notify(ctx, text); err != nil {
		s.log.ErrorwCtx(ctx, "Order persisted but notification failed",
			"record_id", rec.ID,
			"error", err)
		metrics.RelayEventsTotal.WithLabelValues("order", "delivery_error").Inc()
		return &rec, pkgerrors.Wrap(err, pkgerrors.ErrDelivery)
	}

	s.log.InfowCtx(ctx, "Order relayed", "record_id", rec.ID)
	metrics.RelayEventsTotal.WithLabelValues("order", "ok").Inc()
	return &rec, nil
}

func (s *service) IngestChat(ctx context.Context, msg models.ChatMessage) (string, error) {
	collection := Classify(msg.Text)
	ctx = logging.WithCollection(ctx, collection)

	kind := "message"
	if collection == constants.CollectionOrders {
		kind = "order"
	}

	rec := NewChatRecord(msg, s.now().UTC())

	if err := s.repo.Append(ctx, collection, rec); err != nil {
		s.log.ErrorwCtx(ctx, "Failed to persist chat event", "error", err)
		metrics.RelayEventsTotal.WithLabelValues(kind, "persist_error").Inc()
		return collection, pkgerrors.Wrap(err, pkgerrors.ErrPersistence)
	}

	text := FormatChatNotification(msg, collection)
	if err := s.notifier.Notify(ctx, text); err != nil {
		s.log.ErrorwCtx(ctx, "Chat event persisted but notification failed",
			"record_id", rec.ID,
			"error", err)
		metrics.RelayEventsTotal.WithLabelValues(kind, "delivery_error").Inc()
		return collection, pkgerrors.Wrap(err, pkgerrors.ErrDelivery)
	}

	s.log.InfowCtx(ctx, "Chat event relayed", "record_id", rec.ID)
	metrics.RelayEventsTotal.WithLabelValues(kind, "ok").Inc()
	return collection, nil
}

func (s *service) ListOrders(ctx context.Context) ([]models.Record, error) {
	ctx = logging.WithCollection(ctx, constants.CollectionOrders)

	records, err := s.repo.List(ctx, constants.CollectionOrders)
	if err != nil {
		s.log.ErrorwCtx(ctx, "Failed to list orders", "error", err)
		return nil, pkgerrors.Wrap(err, pkgerrors.ErrPersistence)
	}
	return records, nil
}
