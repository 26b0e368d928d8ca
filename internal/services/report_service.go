package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"freight-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

type ReportService struct {
	Bookings BookingStore
	Sheets   LoadingSheetStore
}

func NewReportService(bookings BookingStore, sheets LoadingSheetStore) *ReportService {
	return &ReportService{Bookings: bookings, Sheets: sheets}
}

// GenerateBookingsCSV exports bookings created within [from, to] (either
// side optional), optionally filtered to one origin branch, with a derived
// totals row at the bottom.
func (s *ReportService) GenerateBookingsCSV(ctx context.Context, from, to *time.Time, location string) ([]byte, error) {
	bookings, err := s.Bookings.ListBetween(ctx, from, to, location)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// Header
	w.Write([]string{
		"#", "LR No", "Date", "Agent", "From", "To", "Status",
		"Sender", "Receiver", "Material", "Qty", "Weight", "Freight", "Total",
	})

	var totalQty int
	var totalWeight, totalFreight, grandTotal float64
	for i, b := range bookings {
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			b.LRNumber,
			timeutil.ToIST(b.CreatedAt).Format(timeutil.DateLayout),
			b.AgentName,
			b.FromLocation,
			b.ToLocation,
			b.Status,
			b.SenderCompany,
			b.ReceiverCompany,
			b.Material,
			fmt.Sprintf("%d", b.Qty),
			fmt.Sprintf("%.2f", b.Weight),
			fmt.Sprintf("%.2f", b.Freight),
			fmt.Sprintf("%.2f", b.Total),
		})
		totalQty += b.Qty
		totalWeight += b.Weight
		totalFreight += b.Freight
		grandTotal += b.Total
	}

	w.Write([]string{
		"", "TOTAL", "", "", "", "", "", "", "", "",
		fmt.Sprintf("%d", totalQty),
		fmt.Sprintf("%.2f", totalWeight),
		fmt.Sprintf("%.2f", totalFreight),
		fmt.Sprintf("%.2f", grandTotal),
	})

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateLoadingSheetPDF renders an A4 manifest for one loading sheet
func (s *ReportService) GenerateLoadingSheetPDF(ctx context.Context, id int) ([]byte, error) {
	sheet, err := s.Sheets.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Loading Sheet Manifest", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Sheet #%d  Generated: %s", sheet.ID,
		timeutil.Now().Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Trip Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Trip Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Booking Branch: %s", sheet.BookingBranch), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Delivery Branch: %s", sheet.DeliveryBranch), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Vehicle: %s", sheet.VehicleNumber), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Driver: %s (%s)", sheet.DriverName, sheet.DriverMobile), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// LR rows
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Consignments", "1", 1, "L", true, 0, "")

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(30, 7, "LR No", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Payment", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Sender", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Receiver", "1", 0, "C", true, 0, "")
	pdf.CellFormat(10, 7, "Art", "1", 0, "C", true, 0, "")
	pdf.CellFormat(15, 7, "Freight", "1", 1, "C", true, 0, "")

	// Table rows
	pdf.SetFont("Arial", "", 10)
	for _, row := range sheet.LRRows {
		sender := row.Sender
		if len(sender) > 24 {
			sender = sender[:21] + "..."
		}
		receiver := row.Receiver
		if len(receiver) > 24 {
			receiver = receiver[:21] + "..."
		}
		pdf.CellFormat(30, 6, row.LRNo, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, timeutil.ToIST(row.BDate).Format(timeutil.DateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 6, row.Payment, "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, sender, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, receiver, "1", 0, "L", false, 0, "")
		pdf.CellFormat(10, 6, fmt.Sprintf("%d", row.Articles), "1", 0, "C", false, 0, "")
		pdf.CellFormat(15, 6, fmt.Sprintf("%.0f", row.Freight), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// Charges summary
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Total Freight: %.2f", sheet.TotalFreight), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Door Delivery: %.2f", sheet.DoorDelivery), "1", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Pickup: %.2f", sheet.Pickup), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Handling: %.2f", sheet.Handling), "1", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
