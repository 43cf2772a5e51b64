package messaging

import (
	"encoding/json"

	"fleet-service/src/internal/model"
	"fleet-service/src/pkg/kafka"
	"fleet-service/src/pkg/log"
)

// Producer publishes one event type to one topic. A nil kafka producer
// disables publishing without the callers noticing.
type Producer[T model.Event] struct {
	Producer kafka.Producer
	Topic    string
	Log      log.Log
}

func (p *Producer[T]) Send(event T) error {
	if p.Producer == nil {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("gateway/messaging", "failed to marshal event", p.Topic, err.Error())
		return err
	}

	if err := p.Producer.Publish(p.Topic, []byte(event.GetID()), value); err != nil {
		p.Log.Error("gateway/messaging", "failed to publish event", p.Topic, err.Error())
		return err
	}
	return nil
}
