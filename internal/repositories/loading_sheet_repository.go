package repositories

import (
	"context"
	"encoding/json"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LoadingSheetRepository struct {
	DB *pgxpool.Pool
}

func NewLoadingSheetRepository(db *pgxpool.Pool) *LoadingSheetRepository {
	return &LoadingSheetRepository{DB: db}
}

// LR rows ride along as JSONB; they are only ever read and written as a
// unit with their sheet.
func (r *LoadingSheetRepository) Create(ctx context.Context, s *models.LoadingSheet) error {
	rowsJSON, err := json.Marshal(s.LRRows)
	if err != nil {
		return err
	}
	err = r.DB.QueryRow(ctx,
		`INSERT INTO loading_sheets(booking_branch, delivery_branch, vehicle_number, driver_name, driver_mobile,
			lr_rows, total_freight, door_delivery, pickup, handling)
         VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
         RETURNING id, created_at, updated_at`,
		s.BookingBranch, s.DeliveryBranch, s.VehicleNumber, s.DriverName, s.DriverMobile,
		rowsJSON, s.TotalFreight, s.DoorDelivery, s.Pickup, s.Handling,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return translate(err)
}

func (r *LoadingSheetRepository) Get(ctx context.Context, id int) (*models.LoadingSheet, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, booking_branch, delivery_branch, vehicle_number, driver_name, driver_mobile,
			lr_rows, total_freight, door_delivery, pickup, handling, created_at, updated_at
         FROM loading_sheets WHERE id=$1`, id)
	return scanLoadingSheet(row)
}

func (r *LoadingSheetRepository) List(ctx context.Context) ([]*models.LoadingSheet, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, booking_branch, delivery_branch, vehicle_number, driver_name, driver_mobile,
			lr_rows, total_freight, door_delivery, pickup, handling, created_at, updated_at
         FROM loading_sheets ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var sheets []*models.LoadingSheet
	for rows.Next() {
		s, err := scanLoadingSheet(rows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}

func (r *LoadingSheetRepository) Update(ctx context.Context, s *models.LoadingSheet) error {
	rowsJSON, err := json.Marshal(s.LRRows)
	if err != nil {
		return err
	}
	tag, err := r.DB.Exec(ctx,
		`UPDATE loading_sheets SET booking_branch=$1, delivery_branch=$2, vehicle_number=$3, driver_name=$4,
			driver_mobile=$5, lr_rows=$6, total_freight=$7, door_delivery=$8, pickup=$9, handling=$10,
			updated_at=CURRENT_TIMESTAMP
         WHERE id=$11`,
		s.BookingBranch, s.DeliveryBranch, s.VehicleNumber, s.DriverName,
		s.DriverMobile, rowsJSON, s.TotalFreight, s.DoorDelivery, s.Pickup, s.Handling, s.ID)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *LoadingSheetRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM loading_sheets WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanLoadingSheet(row interface{ Scan(...interface{}) error }) (*models.LoadingSheet, error) {
	var s models.LoadingSheet
	var rowsJSON []byte
	err := row.Scan(&s.ID, &s.BookingBranch, &s.DeliveryBranch, &s.VehicleNumber, &s.DriverName, &s.DriverMobile,
		&rowsJSON, &s.TotalFreight, &s.DoorDelivery, &s.Pickup, &s.Handling, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	if len(rowsJSON) > 0 {
		if err := json.Unmarshal(rowsJSON, &s.LRRows); err != nil {
			return nil, err
		}
	}
	return &s, nil
}
