package document

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"

	"github.com/phpdave11/gofpdf"
)

// BuildBookingVoucher renders an A4 PDF voucher for a confirmed booking.
// The amount is printed with the currency code rather than the symbol; the
// core fonts are latin-only.
func BuildBookingVoucher(b entities.BookingRecord, item entities.ReservableItem) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	total := fmt.Sprintf("%s %s", b.TotalPrice.Currency, strconv.FormatFloat(b.TotalPrice.Amount, 'f', -1, 64))
	lines := []string{
		fmt.Sprintf("Booking Code   : %s", safe(b.ID, "-")),
		fmt.Sprintf("Guest          : %s", safe(b.RequesterName, "-")),
		fmt.Sprintf("Email          : %s", safe(b.RequesterEmail, "-")),
		fmt.Sprintf("Item           : %s", safe(item.Name, "-")),
		fmt.Sprintf("Category       : %s", safe(string(b.Category), "-")),
		fmt.Sprintf("Guests         : %d", b.ParticipantCount),
		fmt.Sprintf("Total          : %s", total),
		fmt.Sprintf("Status         : %s", safe(string(b.Status), "-")),
		fmt.Sprintf("Booked At      : %s", b.CreatedAt.Format("2006-01-02 15:04")),
	}
	if b.DateRange != nil {
		stay := b.DateRange.Start
		if b.DateRange.End != "" {
			stay = fmt.Sprintf("%s -> %s", b.DateRange.Start, b.DateRange.End)
		}
		lines = append(lines[:5], append([]string{fmt.Sprintf("Dates          : %s", stay)}, lines[5:]...)...)
	}

	pdf.SetFont("Helvetica", "", 12)
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Present this voucher at check-in together with a valid ID.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%s.pdf", safeFilenamePart(b.ID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(v string) string {
	out := make([]rune, 0, len(v))
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "booking"
	}
	return string(out)
}
