package invoicegen

import (
	"strconv"

	"github.com/lvillar/invoicegen/money"
)

func formatMoney(v float64) string {
	return money.Format(v)
}

// drawTotals renders the totals block, right-aligned at a fixed offset from
// the right margin. The CGST and SGST amounts are computed here from the
// subtotal; the total renders exactly as the caller supplied it.
func (r *renderer) drawTotals() {
	const (
		blockW = 220.0
		rowH   = 16.0
	)

	cgst := r.inv.Subtotal * r.inv.CGSTRate / 100
	sgst := r.inv.Subtotal * r.inv.SGSTRate / 100

	rows := []struct {
		label string
		value string
	}{
		{"Subtotal", formatMoney(r.inv.Subtotal)},
		{"CGST (" + formatRate(r.inv.CGSTRate) + "%)", formatMoney(cgst)},
		{"SGST (" + formatRate(r.inv.SGSTRate) + "%)", formatMoney(sgst)},
	}

	blockH := float64(len(rows))*rowH + 4 + rowH + 8
	r.ensure(blockH)

	x := pageWidth - pageMargin - blockW
	right := pageWidth - pageMargin
	y := r.cur.Y()

	r.setFont("", 10)
	for _, row := range rows {
		r.text(x, y, blockW/2, row.label, "L")
		r.text(x+blockW/2, y, blockW/2, row.value, "R")
		y += rowH
	}

	// Double-ruled total line.
	r.pdf.SetLineWidth(0.6)
	r.pdf.Line(x, y, right, y)
	r.pdf.Line(x, y+2, right, y+2)
	r.pdf.SetLineWidth(0.2)
	y += 6

	r.setFont("B", 11)
	r.text(x, y, blockW/2, "Total", "L")
	r.text(x+blockW/2, y, blockW/2, formatMoney(r.inv.Total), "R")
	y += rowH

	r.cur.Advance(y - r.cur.Y() + sectionGap)
}

// formatRate renders a tax percentage without trailing zeros.
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// drawQR renders the optional payment QR code with its caption.
func (r *renderer) drawQR() {
	if r.qr == nil {
		return
	}
	const qrSize = 80.0

	r.ensure(qrSize + lineHeight + 4)
	top := r.cur.Y()
	if _, ok := r.drawImage(r.qr, pageMargin, top, qrSize, qrSize); !ok {
		return
	}

	r.setFont("", 9)
	r.text(pageMargin, top+qrSize+2, qrSize, "Scan to pay", "C")
	r.cur.Advance(qrSize + lineHeight + 4 + sectionGap)
}
