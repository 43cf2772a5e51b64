package messaging

import (
	"time"

	"fleet-service/src/internal/model"
	"fleet-service/src/pkg/kafka"
	"fleet-service/src/pkg/log"

	"github.com/google/uuid"
)

type VehicleProducer struct {
	LifecycleProducer Producer[*model.VehicleEvent]
}

func NewVehicleProducer(producer kafka.Producer, logger log.Log) *VehicleProducer {
	return &VehicleProducer{
		LifecycleProducer: Producer[*model.VehicleEvent]{
			Producer: producer,
			Topic:    "fleet.vehicle",
			Log:      logger,
		},
	}
}

func (p *VehicleProducer) SendLifecycle(action string, vehicleID, driverID int64) error {
	return p.LifecycleProducer.Send(&model.VehicleEvent{
		EventID:    uuid.NewString(),
		Action:     action,
		VehicleID:  vehicleID,
		DriverID:   driverID,
		OccurredAt: time.Now(),
	})
}
