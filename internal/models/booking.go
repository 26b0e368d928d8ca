package models

import "time"

// Booking statuses. No enforced ordering between states.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingDelivered = "delivered"
	BookingCancelled = "cancelled"
)

func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingDelivered, BookingCancelled:
		return true
	}
	return false
}

// Booking is one LR (lorry receipt) consignment record
type Booking struct {
	ID              int       `json:"id"`
	LRNumber        string    `json:"lrNumber"`
	AgentName       string    `json:"agentName"`
	FromLocation    string    `json:"fromLocation"`
	ToLocation      string    `json:"toLocation"`
	Status          string    `json:"status"`
	SenderCompany   string    `json:"senderCompany"`
	SenderMobile    string    `json:"senderMobile"`
	SenderGST       string    `json:"senderGST"`
	ReceiverCompany string    `json:"receiverCompany"`
	ReceiverMobile  string    `json:"receiverMobile"`
	ReceiverGST     string    `json:"receiverGST"`
	Material        string    `json:"material"`
	Qty             int       `json:"qty"`
	Weight          float64   `json:"weight"`
	Freight         float64   `json:"freight"`
	Invoice         string    `json:"invoice,omitempty"`
	InvoiceValue    string    `json:"invoiceValue,omitempty"`
	GoodsCondition  string    `json:"goodsCondition,omitempty"`
	LRCharge        float64   `json:"lrCharge"`
	Handling        float64   `json:"handling"`
	Pickup          float64   `json:"pickup"`
	DoorDelivery    float64   `json:"doorDelivery"`
	Others          float64   `json:"others"`
	Total           float64   `json:"total"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CreateBookingRequest represents the request body for creating a booking
type CreateBookingRequest struct {
	LRNumber        string  `json:"lrNumber"`
	AgentName       string  `json:"agentName"`
	FromLocation    string  `json:"fromLocation"`
	ToLocation      string  `json:"toLocation"`
	Status          string  `json:"status"`
	SenderCompany   string  `json:"senderCompany"`
	SenderMobile    string  `json:"senderMobile"`
	SenderGST       string  `json:"senderGST"`
	ReceiverCompany string  `json:"receiverCompany"`
	ReceiverMobile  string  `json:"receiverMobile"`
	ReceiverGST     string  `json:"receiverGST"`
	Material        string  `json:"material"`
	Qty             int     `json:"qty"`
	Weight          float64 `json:"weight"`
	Freight         float64 `json:"freight"`
	Invoice         string  `json:"invoice"`
	InvoiceValue    string  `json:"invoiceValue"`
	GoodsCondition  string  `json:"goodsCondition"`
	LRCharge        float64 `json:"lrCharge"`
	Handling        float64 `json:"handling"`
	Pickup          float64 `json:"pickup"`
	DoorDelivery    float64 `json:"doorDelivery"`
	Others          float64 `json:"others"`
	Total           float64 `json:"total"`
}

// UpdateBookingRequest is the allow-list of mutable booking fields.
// The LR number is fixed at creation.
type UpdateBookingRequest struct {
	AgentName       *string  `json:"agentName"`
	FromLocation    *string  `json:"fromLocation"`
	ToLocation      *string  `json:"toLocation"`
	Status          *string  `json:"status"`
	SenderCompany   *string  `json:"senderCompany"`
	SenderMobile    *string  `json:"senderMobile"`
	SenderGST       *string  `json:"senderGST"`
	ReceiverCompany *string  `json:"receiverCompany"`
	ReceiverMobile  *string  `json:"receiverMobile"`
	ReceiverGST     *string  `json:"receiverGST"`
	Material        *string  `json:"material"`
	Qty             *int     `json:"qty"`
	Weight          *float64 `json:"weight"`
	Freight         *float64 `json:"freight"`
	Invoice         *string  `json:"invoice"`
	InvoiceValue    *string  `json:"invoiceValue"`
	GoodsCondition  *string  `json:"goodsCondition"`
	LRCharge        *float64 `json:"lrCharge"`
	Handling        *float64 `json:"handling"`
	Pickup          *float64 `json:"pickup"`
	DoorDelivery    *float64 `json:"doorDelivery"`
	Others          *float64 `json:"others"`
	Total           *float64 `json:"total"`
}
