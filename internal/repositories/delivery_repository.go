package repositories

import (
	"context"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DeliveryRepository struct {
	DB *pgxpool.Pool
}

func NewDeliveryRepository(db *pgxpool.Pool) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

const deliveryColumns = `id, lr_no, status, vehicle_number, COALESCE(delivery_person, ''),
	delivery_date, COALESCE(remarks, ''), origin, COALESCE(destination, ''), created_at, updated_at`

func scanDelivery(row interface{ Scan(...interface{}) error }) (*models.Delivery, error) {
	var d models.Delivery
	err := row.Scan(&d.ID, &d.LRNo, &d.Status, &d.VehicleNumber, &d.DeliveryPerson,
		&d.DeliveryDate, &d.Remarks, &d.Origin, &d.Destination, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *DeliveryRepository) Create(ctx context.Context, d *models.Delivery) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO deliveries(lr_no, status, vehicle_number, delivery_person, delivery_date, remarks, origin, destination)
         VALUES($1,$2,$3,NULLIF($4,''),$5,NULLIF($6,''),$7,NULLIF($8,''))
         RETURNING id, created_at, updated_at`,
		d.LRNo, d.Status, d.VehicleNumber, d.DeliveryPerson, d.DeliveryDate, d.Remarks, d.Origin, d.Destination,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	return translate(err)
}

func (r *DeliveryRepository) Get(ctx context.Context, id int) (*models.Delivery, error) {
	return scanDelivery(r.DB.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE id=$1`, id))
}

func (r *DeliveryRepository) List(ctx context.Context) ([]*models.Delivery, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var deliveries []*models.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}

func (r *DeliveryRepository) Update(ctx context.Context, d *models.Delivery) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE deliveries SET status=$1, vehicle_number=$2, delivery_person=NULLIF($3,''),
			delivery_date=$4, remarks=NULLIF($5,''), origin=$6, destination=NULLIF($7,''),
			updated_at=CURRENT_TIMESTAMP
         WHERE id=$8`,
		d.Status, d.VehicleNumber, d.DeliveryPerson, d.DeliveryDate, d.Remarks, d.Origin, d.Destination, d.ID)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DeliveryRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM deliveries WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
