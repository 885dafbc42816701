// Package consumer keeps room status in step with the booking lifecycle.
package consumer

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/event"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/service"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Consumer struct {
	client kafka.Client
	rooms  service.Room
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, rooms service.Room, cfg *config.Config, otel otel.Otel) *Consumer {
	return &Consumer{
		client: client,
		rooms:  rooms,
		cfg:    cfg,
		otel:   otel,
	}
}

// Run consumes booking events until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	topic := c.cfg.Kafka.Topics.BookingEvents

	log.Info().Str("topic", topic).Msg("room consumer started")

	if err := c.client.Consume(ctx, constant.Empty, topic, c.Handle); err != nil {
		return fmt.Errorf("room consumer stopped: %w", err)
	}

	return nil
}

// Handle applies one booking event. Events that need no room change are acknowledged
// without side effects.
func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".room.Handle")
	defer scope.End()
	defer scope.TraceIfError(err)

	evt, err := kafka.DecodeKafkaMessage[event.StatusChanged](message)
	if err != nil {
		// a malformed payload will never decode, retrying cannot help
		log.Error().Err(err).Str("key", string(message.Key)).Msg("skipping undecodable booking event")

		return nil
	}

	status, ok := RoomStatusFor(evt.From, evt.To)
	if !ok || evt.RoomNumber == constant.Empty {
		return nil
	}

	err = c.rooms.SetStatusByNumber(ctx, evt.RoomNumber, status)
	if failure.IsNotFound(err) {
		log.Warn().Str("room", evt.RoomNumber).Str("booking", evt.BookingID).Msg("booking references an unknown room")

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to set room %s %s: %w", evt.RoomNumber, status, err)
	}

	log.Info().Str("room", evt.RoomNumber).Str("status", string(status)).Str("booking", evt.BookingID).Msg("room status updated")

	return nil
}

// RoomStatusFor maps a booking status change onto the status its room should take.
// Only a guest who actually stayed releases the room, so cancelling a booking that
// never checked in leaves the room alone.
func RoomStatusFor(from, to bookingModel.Status) (model.Status, bool) {
	switch {
	case to == bookingModel.StatusCheckedIn:
		return model.StatusOccupied, true
	case from == bookingModel.StatusCheckedIn && (to == bookingModel.StatusCheckedOut || to == bookingModel.StatusCancelled):
		return model.StatusAvailable, true
	default:
		return constant.Empty, false
	}
}
