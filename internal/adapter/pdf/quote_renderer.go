package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

type QuoteRenderer struct {
	businessName string
	now          func() time.Time
}

func NewQuoteRenderer(businessName string) *QuoteRenderer {
	return &QuoteRenderer{businessName: businessName, now: time.Now}
}

func (r *QuoteRenderer) Render(q domain.QuoteDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quote "+q.Reference, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, r.businessName)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "QUOTE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		"Reference  : " + q.Reference,
		"Issued     : " + r.now().Format("2006-01-02"),
		"Event date : " + safe(q.EventDate, "to be confirmed"),
		"Event type : " + safe(q.EventType, "-"),
		"Menu       : " + safe(q.MenuName, "-"),
		"Guests     : " + strconv.Itoa(q.Quote.Guests),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	if q.Customer.Name != "" {
		pdf.Cell(0, 6, "Prepared for: "+q.Customer.Name)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, l := range q.Lines {
		pdf.CellFormat(130, 7, l.Label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, formatRand(l.Amount), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(130, 9, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 9, formatRand(q.Quote.Total), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 10)
	if q.Quote.DiscountApplied {
		pdf.MultiCell(0, 5, "This event qualifies for our large-event discount. The final amount will be confirmed with you.", "", "", false)
	}
	if !q.Quote.TravelKnown {
		pdf.MultiCell(0, 5, "The venue is outside our listed service areas. Travel will be quoted separately.", "", "", false)
	}
	pdf.MultiCell(0, 5, "Quotes are valid for 30 days and subject to date availability.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// formatRand renders whole Rand with thousands separators, e.g. R12 750.
func formatRand(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-R" + b.String()
	}
	return "R" + b.String()
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
