package invoicegen

import "strconv"

// Fixed four-column layout of the item table, as shares of the content
// width.
var (
	itemHeaders   = [4]string{"QTY", "DESCRIPTION", "RATE", "AMOUNT"}
	itemShares    = [4]float64{0.10, 0.55, 0.17, 0.18}
	itemAligns    = [4]string{"C", "L", "R", "R"}
	itemHeaderRow = 20.0
)

// itemCols returns the absolute x offsets and widths of the four columns.
func (r *renderer) itemCols() (xs, ws [4]float64) {
	contentW := r.cur.Geometry().ContentWidth()
	x := float64(pageMargin)
	for i, share := range itemShares {
		xs[i] = x
		ws[i] = contentW * share
		x += ws[i]
	}
	return xs, ws
}

// drawItems renders the line item table. The header row is re-emitted on
// every page that receives rows; a row that would overflow the current page
// is deferred whole to the next page, never split.
func (r *renderer) drawItems() {
	xs, ws := r.itemCols()

	// Keep the header attached to at least one row.
	r.ensure(itemHeaderRow + baseRowHeight)
	r.drawItemHeader(xs, ws)

	for _, it := range r.inv.Items {
		rowH := r.itemRowHeight(it, ws[1])
		if !r.cur.Fits(rowH) {
			r.breakPage()
			r.drawItemHeader(xs, ws)
		}
		r.drawItemRow(it, rowH, xs, ws)
	}
	r.cur.Advance(sectionGap)
}

func (r *renderer) drawItemHeader(xs, ws [4]float64) {
	y := r.cur.Y()
	r.pdf.SetFillColor(235, 235, 235)
	r.pdf.Rect(pageMargin, y, r.cur.Geometry().ContentWidth(), itemHeaderRow, "F")

	r.setFont("B", 9)
	for i, h := range itemHeaders {
		r.pdf.SetXY(xs[i]+cellPadding, y+3)
		r.pdf.CellFormat(ws[i]-2*cellPadding, lineHeight, h, "", 0, itemAligns[i], false, 0, "")
	}
	r.cur.Advance(itemHeaderRow)
}

// itemRowHeight computes a row's height from its wrapped description: the
// base row height, or taller when the description wraps.
func (r *renderer) itemRowHeight(it LineItem, descW float64) float64 {
	r.setFont("", 10)
	lines := r.pdf.SplitLines([]byte(it.Description), descW-2*cellPadding)
	h := float64(len(lines))*lineHeight + 2*cellPadding
	if h < baseRowHeight {
		h = baseRowHeight
	}
	return h
}

func (r *renderer) drawItemRow(it LineItem, rowH float64, xs, ws [4]float64) {
	y := r.cur.Y()

	r.setFont("", 10)
	cells := [4]string{
		formatQuantity(it.Quantity),
		it.Description,
		formatMoney(it.Rate),
		formatMoney(it.Amount),
	}
	for i, s := range cells {
		r.pdf.SetXY(xs[i]+cellPadding, y+cellPadding)
		if i == 1 {
			r.pdf.MultiCell(ws[i]-2*cellPadding, lineHeight, s, "", "L", false)
		} else {
			r.pdf.CellFormat(ws[i]-2*cellPadding, lineHeight, s, "", 0, itemAligns[i], false, 0, "")
		}
	}

	// Row separator.
	r.pdf.SetDrawColor(220, 220, 220)
	r.pdf.SetLineWidth(0.3)
	r.pdf.Line(pageMargin, y+rowH, pageWidth-pageMargin, y+rowH)
	r.pdf.SetDrawColor(0, 0, 0)
	r.pdf.SetLineWidth(0.2)

	r.cur.Advance(rowH)
}

// formatQuantity trims insignificant zeros: 3 renders as "3", 2.5 as "2.5".
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
