package services

import (
	"context"
	"errors"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"
)

// LoadingSheetStore is implemented by repositories.LoadingSheetRepository
type LoadingSheetStore interface {
	Create(ctx context.Context, s *models.LoadingSheet) error
	Get(ctx context.Context, id int) (*models.LoadingSheet, error)
	List(ctx context.Context) ([]*models.LoadingSheet, error)
	Update(ctx context.Context, s *models.LoadingSheet) error
	Delete(ctx context.Context, id int) error
}

type LoadingSheetService struct {
	Store LoadingSheetStore
}

func NewLoadingSheetService(store LoadingSheetStore) *LoadingSheetService {
	return &LoadingSheetService{Store: store}
}

func validateLRRows(rows []models.LRRow) error {
	for _, row := range rows {
		if row.LRNo == "" || row.Sender == "" || row.Receiver == "" {
			return apperrors.E(apperrors.ErrValidation, "Each LR row needs lrNo, sender, and receiver")
		}
		if row.Payment != "" && !models.ValidPayment(row.Payment) {
			return apperrors.Ef(apperrors.ErrValidation, "Invalid payment mode: %s", row.Payment)
		}
	}
	return nil
}

func (s *LoadingSheetService) CreateLoadingSheet(ctx context.Context, req *models.CreateLoadingSheetRequest) (*models.LoadingSheet, error) {
	if req.BookingBranch == "" || req.DeliveryBranch == "" || req.VehicleNumber == "" ||
		req.DriverName == "" || req.DriverMobile == "" {
		return nil, apperrors.E(apperrors.ErrValidation, "Branch, vehicle, and driver fields are required")
	}
	if err := validateLRRows(req.LRRows); err != nil {
		return nil, err
	}

	rows := make([]models.LRRow, len(req.LRRows))
	copy(rows, req.LRRows)
	for i := range rows {
		if rows[i].Payment == "" {
			rows[i].Payment = models.PaymentToPay
		}
	}

	sheet := &models.LoadingSheet{
		BookingBranch:  req.BookingBranch,
		DeliveryBranch: req.DeliveryBranch,
		VehicleNumber:  req.VehicleNumber,
		DriverName:     req.DriverName,
		DriverMobile:   req.DriverMobile,
		LRRows:         rows,
		TotalFreight:   req.TotalFreight,
		DoorDelivery:   req.DoorDelivery,
		Pickup:         req.Pickup,
		Handling:       req.Handling,
	}
	if err := s.Store.Create(ctx, sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}

func (s *LoadingSheetService) GetLoadingSheet(ctx context.Context, id int) (*models.LoadingSheet, error) {
	sheet, err := s.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.E(apperrors.ErrNotFound, "Loading sheet not found")
		}
		return nil, err
	}
	return sheet, nil
}

func (s *LoadingSheetService) ListLoadingSheets(ctx context.Context) ([]*models.LoadingSheet, error) {
	return s.Store.List(ctx)
}

func (s *LoadingSheetService) UpdateLoadingSheet(ctx context.Context, id int, req *models.UpdateLoadingSheetRequest) (*models.LoadingSheet, error) {
	sheet, err := s.GetLoadingSheet(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BookingBranch != nil {
		sheet.BookingBranch = *req.BookingBranch
	}
	if req.DeliveryBranch != nil {
		sheet.DeliveryBranch = *req.DeliveryBranch
	}
	if req.VehicleNumber != nil {
		sheet.VehicleNumber = *req.VehicleNumber
	}
	if req.DriverName != nil {
		sheet.DriverName = *req.DriverName
	}
	if req.DriverMobile != nil {
		sheet.DriverMobile = *req.DriverMobile
	}
	if req.LRRows != nil {
		if err := validateLRRows(*req.LRRows); err != nil {
			return nil, err
		}
		sheet.LRRows = *req.LRRows
	}
	if req.TotalFreight != nil {
		sheet.TotalFreight = *req.TotalFreight
	}
	if req.DoorDelivery != nil {
		sheet.DoorDelivery = *req.DoorDelivery
	}
	if req.Pickup != nil {
		sheet.Pickup = *req.Pickup
	}
	if req.Handling != nil {
		sheet.Handling = *req.Handling
	}

	if err := s.Store.Update(ctx, sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}

func (s *LoadingSheetService) DeleteLoadingSheet(ctx context.Context, id int) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.E(apperrors.ErrNotFound, "Loading sheet not found")
		}
		return err
	}
	return nil
}
