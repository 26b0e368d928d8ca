package services

import (
	"context"
	"errors"
	"time"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"
)

// BookingStore is implemented by repositories.BookingRepository
type BookingStore interface {
	Create(ctx context.Context, b *models.Booking) error
	Get(ctx context.Context, id int) (*models.Booking, error)
	List(ctx context.Context) ([]*models.Booking, error)
	ListBetween(ctx context.Context, from, to *time.Time, location string) ([]*models.Booking, error)
	Update(ctx context.Context, b *models.Booking) error
	Delete(ctx context.Context, id int) error
}

type BookingService struct {
	Store BookingStore
}

func NewBookingService(store BookingStore) *BookingService {
	return &BookingService{Store: store}
}

func (s *BookingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	if req.LRNumber == "" {
		return nil, apperrors.E(apperrors.ErrValidation, "lrNumber is required")
	}
	if req.AgentName == "" || req.FromLocation == "" || req.ToLocation == "" ||
		req.SenderCompany == "" || req.SenderMobile == "" || req.SenderGST == "" ||
		req.ReceiverCompany == "" || req.ReceiverMobile == "" || req.ReceiverGST == "" ||
		req.Material == "" {
		return nil, apperrors.E(apperrors.ErrValidation, "Missing required booking fields")
	}
	if req.Qty <= 0 || req.Weight <= 0 {
		return nil, apperrors.E(apperrors.ErrValidation, "qty and weight must be positive")
	}

	status := req.Status
	if status == "" {
		status = models.BookingPending
	}
	if !models.ValidBookingStatus(status) {
		return nil, apperrors.Ef(apperrors.ErrValidation, "Invalid status: %s", status)
	}

	b := &models.Booking{
		LRNumber:        req.LRNumber,
		AgentName:       req.AgentName,
		FromLocation:    req.FromLocation,
		ToLocation:      req.ToLocation,
		Status:          status,
		SenderCompany:   req.SenderCompany,
		SenderMobile:    req.SenderMobile,
		SenderGST:       req.SenderGST,
		ReceiverCompany: req.ReceiverCompany,
		ReceiverMobile:  req.ReceiverMobile,
		ReceiverGST:     req.ReceiverGST,
		Material:        req.Material,
		Qty:             req.Qty,
		Weight:          req.Weight,
		Freight:         req.Freight,
		Invoice:         req.Invoice,
		InvoiceValue:    req.InvoiceValue,
		GoodsCondition:  req.GoodsCondition,
		LRCharge:        req.LRCharge,
		Handling:        req.Handling,
		Pickup:          req.Pickup,
		DoorDelivery:    req.DoorDelivery,
		Others:          req.Others,
		Total:           req.Total,
	}

	if err := s.Store.Create(ctx, b); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Ef(apperrors.ErrConflict, "Booking with LR number %s already exists", b.LRNumber)
		}
		return nil, err
	}
	return b, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id int) (*models.Booking, error) {
	b, err := s.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.E(apperrors.ErrNotFound, "Booking not found")
		}
		return nil, err
	}
	return b, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return s.Store.List(ctx)
}

func (s *BookingService) UpdateBooking(ctx context.Context, id int, req *models.UpdateBookingRequest) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !models.ValidBookingStatus(*req.Status) {
			return nil, apperrors.Ef(apperrors.ErrValidation, "Invalid status: %s", *req.Status)
		}
		b.Status = *req.Status
	}
	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&b.AgentName, req.AgentName)
	applyString(&b.FromLocation, req.FromLocation)
	applyString(&b.ToLocation, req.ToLocation)
	applyString(&b.SenderCompany, req.SenderCompany)
	applyString(&b.SenderMobile, req.SenderMobile)
	applyString(&b.SenderGST, req.SenderGST)
	applyString(&b.ReceiverCompany, req.ReceiverCompany)
	applyString(&b.ReceiverMobile, req.ReceiverMobile)
	applyString(&b.ReceiverGST, req.ReceiverGST)
	applyString(&b.Material, req.Material)
	applyString(&b.Invoice, req.Invoice)
	applyString(&b.InvoiceValue, req.InvoiceValue)
	applyString(&b.GoodsCondition, req.GoodsCondition)
	if req.Qty != nil {
		if *req.Qty <= 0 {
			return nil, apperrors.E(apperrors.ErrValidation, "qty must be positive")
		}
		b.Qty = *req.Qty
	}
	if req.Weight != nil {
		if *req.Weight <= 0 {
			return nil, apperrors.E(apperrors.ErrValidation, "weight must be positive")
		}
		b.Weight = *req.Weight
	}
	applyFloat(&b.Freight, req.Freight)
	applyFloat(&b.LRCharge, req.LRCharge)
	applyFloat(&b.Handling, req.Handling)
	applyFloat(&b.Pickup, req.Pickup)
	applyFloat(&b.DoorDelivery, req.DoorDelivery)
	applyFloat(&b.Others, req.Others)
	applyFloat(&b.Total, req.Total)

	if err := s.Store.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id int) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.E(apperrors.ErrNotFound, "Booking not found")
		}
		return err
	}
	return nil
}
