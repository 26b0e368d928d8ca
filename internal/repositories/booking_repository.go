package repositories

import (
	"context"
	"time"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	DB *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{DB: db}
}

const bookingColumns = `id, lr_number, agent_name, from_location, to_location, status,
	sender_company, sender_mobile, sender_gst, receiver_company, receiver_mobile, receiver_gst,
	material, qty, weight, freight, COALESCE(invoice, ''), COALESCE(invoice_value, ''), COALESCE(goods_condition, ''),
	lr_charge, handling, pickup, door_delivery, others, total, created_at, updated_at`

func scanBooking(row interface{ Scan(...interface{}) error }) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.LRNumber, &b.AgentName, &b.FromLocation, &b.ToLocation, &b.Status,
		&b.SenderCompany, &b.SenderMobile, &b.SenderGST, &b.ReceiverCompany, &b.ReceiverMobile, &b.ReceiverGST,
		&b.Material, &b.Qty, &b.Weight, &b.Freight, &b.Invoice, &b.InvoiceValue, &b.GoodsCondition,
		&b.LRCharge, &b.Handling, &b.Pickup, &b.DoorDelivery, &b.Others, &b.Total, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO bookings(lr_number, agent_name, from_location, to_location, status,
			sender_company, sender_mobile, sender_gst, receiver_company, receiver_mobile, receiver_gst,
			material, qty, weight, freight, invoice, invoice_value, goods_condition,
			lr_charge, handling, pickup, door_delivery, others, total)
         VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
         RETURNING id, created_at, updated_at`,
		b.LRNumber, b.AgentName, b.FromLocation, b.ToLocation, b.Status,
		b.SenderCompany, b.SenderMobile, b.SenderGST, b.ReceiverCompany, b.ReceiverMobile, b.ReceiverGST,
		b.Material, b.Qty, b.Weight, b.Freight, b.Invoice, b.InvoiceValue, b.GoodsCondition,
		b.LRCharge, b.Handling, b.Pickup, b.DoorDelivery, b.Others, b.Total,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return translate(err)
}

func (r *BookingRepository) Get(ctx context.Context, id int) (*models.Booking, error) {
	return scanBooking(r.DB.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id))
}

// List returns all bookings, newest first
func (r *BookingRepository) List(ctx context.Context) ([]*models.Booking, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// ListBetween returns bookings created within [from, to], optionally
// restricted to one origin branch. Used by the CSV report.
func (r *BookingRepository) ListBetween(ctx context.Context, from, to *time.Time, location string) ([]*models.Booking, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings
         WHERE ($1::timestamptz IS NULL OR created_at >= $1)
           AND ($2::timestamptz IS NULL OR created_at <= $2)
           AND ($3 = '' OR from_location = $3)
         ORDER BY created_at DESC`, from, to, location)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *models.Booking) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE bookings SET agent_name=$1, from_location=$2, to_location=$3, status=$4,
			sender_company=$5, sender_mobile=$6, sender_gst=$7, receiver_company=$8, receiver_mobile=$9, receiver_gst=$10,
			material=$11, qty=$12, weight=$13, freight=$14, invoice=$15, invoice_value=$16, goods_condition=$17,
			lr_charge=$18, handling=$19, pickup=$20, door_delivery=$21, others=$22, total=$23, updated_at=CURRENT_TIMESTAMP
         WHERE id=$24`,
		b.AgentName, b.FromLocation, b.ToLocation, b.Status,
		b.SenderCompany, b.SenderMobile, b.SenderGST, b.ReceiverCompany, b.ReceiverMobile, b.ReceiverGST,
		b.Material, b.Qty, b.Weight, b.Freight, b.Invoice, b.InvoiceValue, b.GoodsCondition,
		b.LRCharge, b.Handling, b.Pickup, b.DoorDelivery, b.Others, b.Total, b.ID)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
