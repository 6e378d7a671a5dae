package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher is the part of mqtt.Client the reporter needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTReporter publishes each report as JSON on a topic. The message is
// retained so late subscribers see the latest pose.
type MQTTReporter struct {
	client Publisher
	topic  string
}

// NewMQTTReporter returns a reporter publishing on topic through client.
func NewMQTTReporter(client Publisher, topic string) *MQTTReporter {
	return &MQTTReporter{client: client, topic: topic}
}

func (m *MQTTReporter) Report(ctx context.Context, r Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("json marshal error (report): %w", err)
	}

	token := m.client.Publish(m.topic, 0, true, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("MQTT publish error (%s): %w", m.topic, err)
	}
	return nil
}
