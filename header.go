package invoicegen

import "fmt"

// drawHeader renders the first-page header: optional logo, company block on
// the left, document title and invoice number/date block on the right.
func (r *renderer) drawHeader() {
	top := r.cur.Y()
	left := float64(pageMargin)
	contentW := r.cur.Geometry().ContentWidth()

	leftH := 0.0
	textX := left
	if r.logo != nil {
		if h, ok := r.drawImage(r.logo, left, top, 70, 0); ok {
			textX = left + 82
			leftH = h
		}
	}

	y := top
	r.setFont("B", 16)
	r.pdf.SetXY(textX, y)
	r.pdf.CellFormat(contentW/2, 20, r.cfg.company.Name, "", 0, "L", false, 0, "")
	y += 22

	r.setFont("", 9)
	for _, line := range companyLines(r.cfg.company) {
		r.text(textX, y, contentW/2, line, "L")
		y += 12
	}
	if h := y - top; h > leftH {
		leftH = h
	}

	// Right block: title plus the invoice identity, right-aligned.
	y = top
	r.setFont("B", 22)
	r.pdf.SetXY(left, y)
	r.pdf.CellFormat(contentW, 24, "INVOICE", "", 0, "R", false, 0, "")
	y += 30

	r.setFont("", 10)
	r.text(left, y, contentW, "Invoice #: "+r.inv.Number, "R")
	y += lineHeight
	r.text(left, y, contentW, "Date: "+r.issued.Format(dateDisplay), "R")
	y += lineHeight
	if r.due != nil {
		r.text(left, y, contentW, "Due Date: "+r.due.Format(dateDisplay), "R")
		y += lineHeight
	}
	rightH := y - top

	h := leftH
	if rightH > h {
		h = rightH
	}
	r.cur.Advance(h + 8)

	r.ruleAt(r.cur.Y())
	r.cur.Advance(sectionGap)
}

// companyLines flattens the non-empty company fields into display lines.
func companyLines(ci CompanyInfo) []string {
	var lines []string
	if ci.Address != "" {
		lines = append(lines, ci.Address)
	}
	if ci.City != "" {
		lines = append(lines, ci.City)
	}
	if ci.Phone != "" {
		lines = append(lines, "Phone: "+ci.Phone)
	}
	if ci.Email != "" {
		lines = append(lines, ci.Email)
	}
	if ci.Website != "" {
		lines = append(lines, ci.Website)
	}
	if ci.GSTIN != "" {
		lines = append(lines, "GSTIN: "+ci.GSTIN)
	}
	if ci.PAN != "" {
		lines = append(lines, "PAN: "+ci.PAN)
	}
	return lines
}

// continuationHeader is the condensed header re-rendered atop every page
// after the first.
func (r *renderer) continuationHeader() {
	contentW := r.cur.Geometry().ContentWidth()

	r.setFont("B", 11)
	r.text(pageMargin, r.cur.Y(), contentW, r.cfg.company.Name, "L")
	r.cur.Advance(lineHeight)

	r.setFont("", 9)
	r.text(pageMargin, r.cur.Y(), contentW, fmt.Sprintf("Invoice #%s - Continued", r.inv.Number), "L")
	r.cur.Advance(lineHeight + 4)

	r.ruleAt(r.cur.Y())
	r.cur.Advance(sectionGap)
}

// ruleAt draws a light horizontal separator across the content width.
func (r *renderer) ruleAt(y float64) {
	r.pdf.SetDrawColor(180, 180, 180)
	r.pdf.SetLineWidth(0.5)
	r.pdf.Line(pageMargin, y, pageWidth-pageMargin, y)
	r.pdf.SetDrawColor(0, 0, 0)
	r.pdf.SetLineWidth(0.2)
}
