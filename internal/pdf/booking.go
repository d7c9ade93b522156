package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator renders booking confirmation documents.
type Generator interface {
	BookingConfirmation(data BookingData) ([]byte, error)
}

type BookingData struct {
	Name             string
	Email            string
	ConsultationType string
	ConfirmedAt      time.Time
}

type ConfirmationGenerator struct{}

func NewConfirmationGenerator() *ConfirmationGenerator {
	return &ConfirmationGenerator{}
}

// BookingConfirmation renders a one-page confirmation PDF for the email
// attachment.
func (g *ConfirmationGenerator) BookingConfirmation(data BookingData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Consultation Booking Confirmation", false)
	doc.SetAuthor("Doctor Kays", false)
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 12, "Consultation Booking Confirmation", "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 12)
	line := func(label, value string) {
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 12)
		doc.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}
	line("Patient:", data.Name)
	line("Email:", data.Email)
	line("Consultation:", data.ConsultationType)
	line("Confirmed:", data.ConfirmedAt.Format("02 Jan 2006 15:04"))

	doc.Ln(8)
	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(0, 6,
		"Your consultation booking has been confirmed. Please keep this document "+
			"for your records and have it at hand when joining your session.",
		"", "L", false)

	doc.Ln(10)
	doc.SetFont("Helvetica", "I", 10)
	doc.CellFormat(0, 6, fmt.Sprintf("Doctor Kays - generated %s", time.Now().Format("2006-01-02")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render booking confirmation: %w", err)
	}
	return buf.Bytes(), nil
}
