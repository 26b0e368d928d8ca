package models

import "time"

// Delivery statuses. Any state is reachable from any other.
const (
	DeliveryPending   = "pending"
	DeliveryInTransit = "inTransit"
	DeliveryDelivered = "delivered"
)

func ValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryPending, DeliveryInTransit, DeliveryDelivered:
		return true
	}
	return false
}

// Delivery tracks one LR from dispatch to handover
type Delivery struct {
	ID             int        `json:"id"`
	LRNo           string     `json:"lrNo"`
	Status         string     `json:"status"`
	VehicleNumber  string     `json:"vehicleNumber"`
	DeliveryPerson string     `json:"deliveryPerson,omitempty"`
	DeliveryDate   *time.Time `json:"deliveryDate,omitempty"`
	Remarks        string     `json:"remarks,omitempty"`
	Origin         string     `json:"origin"`
	Destination    string     `json:"destination,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// CreateDeliveryRequest represents the request body for creating a delivery
type CreateDeliveryRequest struct {
	LRNo           string     `json:"lrNo"`
	Status         string     `json:"status"`
	VehicleNumber  string     `json:"vehicleNumber"`
	DeliveryPerson string     `json:"deliveryPerson"`
	DeliveryDate   *time.Time `json:"deliveryDate"`
	Remarks        string     `json:"remarks"`
	Origin         string     `json:"origin"`
	Destination    string     `json:"destination"`
}

// UpdateDeliveryRequest is the allow-list of mutable delivery fields
type UpdateDeliveryRequest struct {
	Status         *string    `json:"status"`
	VehicleNumber  *string    `json:"vehicleNumber"`
	DeliveryPerson *string    `json:"deliveryPerson"`
	DeliveryDate   *time.Time `json:"deliveryDate"`
	Remarks        *string    `json:"remarks"`
	Origin         *string    `json:"origin"`
	Destination    *string    `json:"destination"`
}

// UpdateDeliveryStatusRequest is the narrow status-transition payload
type UpdateDeliveryStatusRequest struct {
	Status         string     `json:"status"`
	DeliveryPerson string     `json:"deliveryPerson"`
	DeliveryDate   *time.Time `json:"deliveryDate"`
	Remarks        string     `json:"remarks"`
}
