package services

import (
	"context"
	"errors"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"
)

// defaultOrigin matches the booking branch most dispatches leave from
const defaultOrigin = "KTD"

// DeliveryStore is implemented by repositories.DeliveryRepository
type DeliveryStore interface {
	Create(ctx context.Context, d *models.Delivery) error
	Get(ctx context.Context, id int) (*models.Delivery, error)
	List(ctx context.Context) ([]*models.Delivery, error)
	Update(ctx context.Context, d *models.Delivery) error
	Delete(ctx context.Context, id int) error
}

type DeliveryService struct {
	Store DeliveryStore
}

func NewDeliveryService(store DeliveryStore) *DeliveryService {
	return &DeliveryService{Store: store}
}

func (s *DeliveryService) CreateDelivery(ctx context.Context, req *models.CreateDeliveryRequest) (*models.Delivery, error) {
	if req.LRNo == "" || req.VehicleNumber == "" {
		return nil, apperrors.E(apperrors.ErrValidation, "lrNo and vehicleNumber are required")
	}

	status := req.Status
	if status == "" {
		status = models.DeliveryPending
	}
	if !models.ValidDeliveryStatus(status) {
		return nil, apperrors.Ef(apperrors.ErrValidation, "Invalid status: %s", status)
	}

	origin := req.Origin
	if origin == "" {
		origin = defaultOrigin
	}

	d := &models.Delivery{
		LRNo:           req.LRNo,
		Status:         status,
		VehicleNumber:  req.VehicleNumber,
		DeliveryPerson: req.DeliveryPerson,
		DeliveryDate:   req.DeliveryDate,
		Remarks:        req.Remarks,
		Origin:         origin,
		Destination:    req.Destination,
	}
	if err := s.Store.Create(ctx, d); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Ef(apperrors.ErrConflict, "Delivery for LR %s already exists", d.LRNo)
		}
		return nil, err
	}
	return d, nil
}

func (s *DeliveryService) GetDelivery(ctx context.Context, id int) (*models.Delivery, error) {
	d, err := s.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.E(apperrors.ErrNotFound, "Delivery not found")
		}
		return nil, err
	}
	return d, nil
}

func (s *DeliveryService) ListDeliveries(ctx context.Context) ([]*models.Delivery, error) {
	return s.Store.List(ctx)
}

func (s *DeliveryService) UpdateDelivery(ctx context.Context, id int, req *models.UpdateDeliveryRequest) (*models.Delivery, error) {
	d, err := s.GetDelivery(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !models.ValidDeliveryStatus(*req.Status) {
			return nil, apperrors.Ef(apperrors.ErrValidation, "Invalid status: %s", *req.Status)
		}
		d.Status = *req.Status
	}
	if req.VehicleNumber != nil {
		if *req.VehicleNumber == "" {
			return nil, apperrors.E(apperrors.ErrValidation, "vehicleNumber cannot be empty")
		}
		d.VehicleNumber = *req.VehicleNumber
	}
	if req.DeliveryPerson != nil {
		d.DeliveryPerson = *req.DeliveryPerson
	}
	if req.DeliveryDate != nil {
		d.DeliveryDate = req.DeliveryDate
	}
	if req.Remarks != nil {
		d.Remarks = *req.Remarks
	}
	if req.Origin != nil {
		d.Origin = *req.Origin
	}
	if req.Destination != nil {
		d.Destination = *req.Destination
	}

	if err := s.Store.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateStatus is the narrow transition used by the delivery board. Any
// status is reachable from any other.
func (s *DeliveryService) UpdateStatus(ctx context.Context, id int, req *models.UpdateDeliveryStatusRequest) (*models.Delivery, error) {
	if !models.ValidDeliveryStatus(req.Status) {
		return nil, apperrors.Ef(apperrors.ErrValidation, "Invalid status: %s", req.Status)
	}

	d, err := s.GetDelivery(ctx, id)
	if err != nil {
		return nil, err
	}

	d.Status = req.Status
	d.DeliveryPerson = req.DeliveryPerson
	d.DeliveryDate = req.DeliveryDate
	d.Remarks = req.Remarks

	if err := s.Store.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DeliveryService) DeleteDelivery(ctx context.Context, id int) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.E(apperrors.ErrNotFound, "Delivery not found")
		}
		return err
	}
	return nil
}
