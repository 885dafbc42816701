// Package event carries booking status changes to other parts of the system.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

const TypeStatusChanged = "booking.status_changed"

type StatusChanged struct {
	Type       string             `json:"type"`
	BookingID  string             `json:"booking_id"`
	Reference  string             `json:"reference"`
	RoomNumber string             `json:"room_number,omitempty"`
	RoomType   roomModel.RoomType `json:"room_type"`
	From       model.Status       `json:"from"`
	To         model.Status       `json:"to"`
	OccurredAt time.Time          `json:"occurred_at"`
}

func NewStatusChanged(booking model.Booking, from model.Status) StatusChanged {
	return StatusChanged{
		Type:       TypeStatusChanged,
		BookingID:  booking.ID,
		Reference:  booking.Reference,
		RoomNumber: booking.RoomNumber,
		RoomType:   booking.RoomType,
		From:       from,
		To:         booking.BookingStatus,
		OccurredAt: booking.ModifiedAt,
	}
}

type Publisher interface {
	PublishStatusChanged(ctx context.Context, evt StatusChanged) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topics.BookingEvents,
		otel:   otel,
	}
}

// PublishStatusChanged keys the message by booking id so the events of one booking stay ordered.
func (p *kafkaPublisher) PublishStatusChanged(ctx context.Context, evt StatusChanged) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishStatusChanged")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = p.client.SendMessages(ctx, p.topic, kafka.Message{Key: evt.BookingID, Value: evt})
	if err != nil {
		log.Error().Err(err).Str("booking", evt.BookingID).Msg("failed to publish booking status change")

		return fmt.Errorf("failed to publish booking status change: %w", err)
	}

	log.Info().Str("booking", evt.BookingID).Str("from", string(evt.From)).Str("to", string(evt.To)).Msg("booking status change published")

	return nil
}
