package kafka_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kafkaGo "github.com/segmentio/kafka-go"

	"hotel/infras/kafka"
)

type roomEvent struct {
	Room   string `json:"room"`
	Status string `json:"status"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{Key: "b1", Value: roomEvent{Room: "101", Status: "occupied"}}

	got, err := message.ToKafkaMessage("booking.events")
	require.NoError(t, err)

	assert.Equal(t, "booking.events", got.Topic)
	assert.Equal(t, []byte("b1"), got.Key)
	assert.JSONEq(t, `{"room":"101","status":"occupied"}`, string(got.Value))
}

func TestMessage_ToKafkaMessageRejectsUnencodableValue(t *testing.T) {
	message := kafka.Message{Key: "b1", Value: make(chan int)}

	_, err := message.ToKafkaMessage("booking.events")
	assert.Error(t, err)
}

func TestDecodeKafkaMessage(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		got, err := kafka.DecodeKafkaMessage[roomEvent](kafkaGo.Message{Value: []byte(`{"room":"204","status":"available"}`)})
		require.NoError(t, err)

		assert.Equal(t, roomEvent{Room: "204", Status: "available"}, got)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := kafka.DecodeKafkaMessage[roomEvent](kafkaGo.Message{Topic: "booking.events", Value: []byte(`{"room":`)})
		assert.Error(t, err)
	})
}
