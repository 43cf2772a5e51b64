package messaging

import (
	"time"

	"fleet-service/src/internal/model"
	"fleet-service/src/pkg/kafka"
	"fleet-service/src/pkg/log"

	"github.com/google/uuid"
)

type DriverProducer struct {
	LifecycleProducer Producer[*model.DriverEvent]
}

func NewDriverProducer(producer kafka.Producer, logger log.Log) *DriverProducer {
	return &DriverProducer{
		LifecycleProducer: Producer[*model.DriverEvent]{
			Producer: producer,
			Topic:    "fleet.driver",
			Log:      logger,
		},
	}
}

func (p *DriverProducer) SendLifecycle(action string, driverID int64) error {
	return p.LifecycleProducer.Send(&model.DriverEvent{
		EventID:    uuid.NewString(),
		Action:     action,
		DriverID:   driverID,
		OccurredAt: time.Now(),
	})
}
