package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"couriersathi/internal/domain/models"
	"couriersathi/internal/utils"
)

// ExportService renders the recent bookings as a downloadable PDF for
// the admin page.
type ExportService struct {
	Loader    func(ctx context.Context, limit int) ([]models.Booking, error)
	RequestID string
}

const exportLimit = 200

// GenerateBookingsPDF builds a one-page-per-overflow table of the most
// recent bookings and returns the bytes plus a dated filename.
func (s ExportService) GenerateBookingsPDF(ctx context.Context) ([]byte, string, error) {
	rows, err := s.Loader(ctx, exportLimit)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "export", "generate_pdf", fmt.Sprintf("rows=%d", len(rows)))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("CourierSathi Bookings", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "CourierSathi Bookings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Exported "+time.Now().UTC().Format("2006-01-02 15:04")+" UTC")
	pdf.Ln(10)

	widths := []float64{12, 55, 32, 28, 22, 22, 28}
	headers := []string{"ID", "Item", "Sender", "Phone", "From", "To", "Created"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, b := range rows {
		cols := []string{
			fmt.Sprintf("%d", b.ID),
			clip(b.ItemDescription, 40),
			clip(b.SenderName, 22),
			clip(b.SenderPhone, 16),
			clip(b.SenderPincode, 10),
			clip(b.ReceiverPincode, 10),
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for i, v := range cols {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(rows) == 0 {
		pdf.Cell(0, 7, "No bookings yet.")
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("bookings_%s.pdf", time.Now().UTC().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}
