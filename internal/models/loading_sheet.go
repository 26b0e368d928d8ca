package models

import "time"

// Payment modes for an LR row on a loading sheet
const (
	PaymentToPay = "TOPAY"
	PaymentPaid  = "PAID"
	PaymentOnAcc = "ON ACC"
)

func ValidPayment(p string) bool {
	switch p {
	case PaymentToPay, PaymentPaid, PaymentOnAcc:
		return true
	}
	return false
}

// LRRow is one consignment line on a loading sheet manifest
type LRRow struct {
	LRNo     string    `json:"lrNo"`
	BDate    time.Time `json:"bDate"`
	Payment  string    `json:"payment"`
	Sender   string    `json:"sender"`
	Receiver string    `json:"receiver"`
	Articles int       `json:"articles"`
	Freight  float64   `json:"freight"`
}

// LoadingSheet groups multiple LRs onto one vehicle trip
type LoadingSheet struct {
	ID             int       `json:"id"`
	BookingBranch  string    `json:"bookingBranch"`
	DeliveryBranch string    `json:"deliveryBranch"`
	VehicleNumber  string    `json:"vehicleNumber"`
	DriverName     string    `json:"driverName"`
	DriverMobile   string    `json:"driverMobile"`
	LRRows         []LRRow   `json:"lrRows"`
	TotalFreight   float64   `json:"totalFreight"`
	DoorDelivery   float64   `json:"doorDelivery"`
	Pickup         float64   `json:"pickup"`
	Handling       float64   `json:"handling"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreateLoadingSheetRequest represents the request body for creating a loading sheet
type CreateLoadingSheetRequest struct {
	BookingBranch  string  `json:"bookingBranch"`
	DeliveryBranch string  `json:"deliveryBranch"`
	VehicleNumber  string  `json:"vehicleNumber"`
	DriverName     string  `json:"driverName"`
	DriverMobile   string  `json:"driverMobile"`
	LRRows         []LRRow `json:"lrRows"`
	TotalFreight   float64 `json:"totalFreight"`
	DoorDelivery   float64 `json:"doorDelivery"`
	Pickup         float64 `json:"pickup"`
	Handling       float64 `json:"handling"`
}

// UpdateLoadingSheetRequest is the allow-list of mutable loading sheet fields
type UpdateLoadingSheetRequest struct {
	BookingBranch  *string  `json:"bookingBranch"`
	DeliveryBranch *string  `json:"deliveryBranch"`
	VehicleNumber  *string  `json:"vehicleNumber"`
	DriverName     *string  `json:"driverName"`
	DriverMobile   *string  `json:"driverMobile"`
	LRRows         *[]LRRow `json:"lrRows"`
	TotalFreight   *float64 `json:"totalFreight"`
	DoorDelivery   *float64 `json:"doorDelivery"`
	Pickup         *float64 `json:"pickup"`
	Handling       *float64 `json:"handling"`
}
