package invoicegen

import "strings"

// Fixed label for the document type shown in the project details column.
const projectTypeLabel = "Work Order"

// drawBilling renders the two-column billing block: "Bill To" on the left,
// "Project Details" on the right. Column heights are independent; the cursor
// advances by the taller of the two.
func (r *renderer) drawBilling() {
	leftLines := billToLines(r.inv.BillTo)
	rightLines := projectLines(r.inv)

	colW := (r.cur.Geometry().ContentWidth() - 20) / 2
	headH := float64(lineHeight + 4)
	blockH := func(lines []string) float64 {
		return headH + float64(len(lines))*lineHeight
	}
	maxH := blockH(leftLines)
	if h := blockH(rightLines); h > maxH {
		maxH = h
	}

	r.ensure(maxH)
	top := r.cur.Y()
	leftX := float64(pageMargin)
	rightX := pageMargin + colW + 20

	r.drawColumn(leftX, top, colW, "Bill To", leftLines)
	r.drawColumn(rightX, top, colW, "Project Details", rightLines)

	r.cur.Advance(maxH + sectionGap)
}

func (r *renderer) drawColumn(x, y, w float64, title string, lines []string) {
	r.setFont("B", 11)
	r.text(x, y, w, title, "L")
	y += lineHeight + 4

	r.setFont("", 10)
	for _, line := range lines {
		r.text(x, y, w, line, "L")
		y += lineHeight
	}
}

// billToLines returns the billed party's display lines, or blank-line
// placeholders when no party was supplied.
func billToLines(p *Party) []string {
	if p == nil {
		return []string{"____________________", "____________________", "____________________"}
	}
	var lines []string
	if p.Name != "" {
		lines = append(lines, p.Name)
	}
	lines = append(lines, p.Address...)
	if p.Contact != "" {
		lines = append(lines, p.Contact)
	}
	if len(lines) == 0 {
		return []string{"____________________", "____________________", "____________________"}
	}
	return lines
}

func projectLines(inv *Invoice) []string {
	project := inv.Project
	if project == "" {
		project = "-"
	}
	return []string{
		"Project: " + project,
		"Unit: " + unitLabel(inv.Items),
		"Type: " + projectTypeLabel,
	}
}

// unitLabel derives the unit name from the first line item: the token of
// its description before the first "(".
func unitLabel(items []LineItem) string {
	if len(items) == 0 {
		return "-"
	}
	d := items[0].Description
	if i := strings.IndexByte(d, '('); i >= 0 {
		d = d[:i]
	}
	d = strings.TrimSpace(d)
	if d == "" {
		return "-"
	}
	return d
}

// drawNotes renders the optional word-wrapped notes block. Nothing is
// emitted when the notes are blank.
func (r *renderer) drawNotes() {
	notes := strings.TrimSpace(r.inv.Notes)
	if notes == "" {
		return
	}
	contentW := r.cur.Geometry().ContentWidth()

	r.ensure(lineHeight + 4 + lineHeight) // heading plus at least one line
	r.setFont("B", 11)
	r.text(pageMargin, r.cur.Y(), contentW, "Notes", "L")
	r.cur.Advance(lineHeight + 4)

	r.setFont("", 10)
	for _, line := range r.pdf.SplitLines([]byte(notes), contentW) {
		r.ensure(lineHeight)
		// A page break switches fonts for the continuation header.
		r.setFont("", 10)
		r.text(pageMargin, r.cur.Y(), contentW, string(line), "L")
		r.cur.Advance(lineHeight)
	}
	r.cur.Advance(sectionGap)
}
