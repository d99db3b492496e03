package kafka

import (
	"context"
	"log/slog"

	"linenflow/internal/pkg/errs"

	"github.com/IBM/sarama"
)

// RecomputeFunc is invoked once per consumed change-feed message. The message
// body is deliberately not passed along: consumers recompute from the
// repository, never from event payloads.
type RecomputeFunc func(ctx context.Context) error

// OrderChangedConsumer subscribes to the change feed and triggers a
// projection recompute for every message. It complements the periodic sweep
// by shortening the window between a lifecycle write and the projections
// reflecting it.
type OrderChangedConsumer struct {
	group     sarama.ConsumerGroup
	topic     string
	recompute RecomputeFunc
	logger    *slog.Logger
}

// NewOrderChangedConsumer joins the given consumer group on the brokers.
func NewOrderChangedConsumer(
	brokers []string,
	groupID string,
	topic string,
	recompute RecomputeFunc,
	logger *slog.Logger,
) (*OrderChangedConsumer, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if groupID == "" {
		return nil, errs.NewValueIsRequiredError("groupID")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	if recompute == nil {
		return nil, errs.NewValueIsRequiredError("recompute")
	}

	config := sarama.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, err
	}

	return &OrderChangedConsumer{
		group:     group,
		topic:     topic,
		recompute: recompute,
		logger:    logger.With("component", "order_changed_consumer"),
	}, nil
}

// Run consumes the change feed until the context is cancelled. Consume
// returns whenever the group rebalances, so it loops.
func (c *OrderChangedConsumer) Run(ctx context.Context) {
	handler := &recomputeHandler{recompute: c.recompute, logger: c.logger}

	for {
		if ctx.Err() != nil {
			return
		}
		if err := c.group.Consume(ctx, []string{c.topic}, handler); err != nil {
			c.logger.ErrorContext(ctx, "Change feed consume failed", "error", err)
		}
	}
}

// Close leaves the consumer group.
func (c *OrderChangedConsumer) Close() error {
	return c.group.Close()
}

type recomputeHandler struct {
	recompute RecomputeFunc
	logger    *slog.Logger
}

func (h *recomputeHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *recomputeHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *recomputeHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		if err := h.recompute(session.Context()); err != nil {
			h.logger.WarnContext(session.Context(), "Projection recompute failed",
				"topic", message.Topic, "offset", message.Offset, "error", err)
		}
		session.MarkMessage(message, "")
	}
	return nil
}
