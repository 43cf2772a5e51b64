package model

import "time"

const (
	EventActionCreated = "created"
	EventActionUpdated = "updated"
	EventActionDeleted = "deleted"
)

// Event is anything the messaging gateway can publish; the id becomes the
// partition key.
type Event interface {
	GetID() string
}

type DriverEvent struct {
	EventID    string    `json:"event_id"`
	Action     string    `json:"action"`
	DriverID   int64     `json:"driver_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *DriverEvent) GetID() string {
	return e.EventID
}

type VehicleEvent struct {
	EventID    string    `json:"event_id"`
	Action     string    `json:"action"`
	VehicleID  int64     `json:"vehicle_id"`
	DriverID   int64     `json:"driver_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *VehicleEvent) GetID() string {
	return e.EventID
}
