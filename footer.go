package invoicegen

import "fmt"

// Fixed terms appended to the full footer when WithTermsAndConditions is
// set.
var termsAndConditions = []string{
	"Payment is due within 15 days of the invoice date.",
	"Interest at 18% per annum is charged on overdue balances.",
	"Work is certified and measured as per the attached schedule.",
	"All disputes are subject to the jurisdiction of the issuing city.",
}

// drawFooters runs after every content section has been laid out, when the
// page count is final: the last page gets the full footer, every earlier
// page the signature-only variant, and all pages a page number.
func (r *renderer) drawFooters() {
	last := r.pdf.PageCount()
	for p := 1; p <= last; p++ {
		r.pdf.SetPage(p)
		if p == last {
			r.drawFullFooter()
		} else {
			r.drawSignatureFooter()
		}
		r.drawPageNumber(p, last)
	}
}

// fullFooterHeight is the vertical space the full footer occupies. It never
// exceeds the layout footer reserve.
func (r *renderer) fullFooterHeight() float64 {
	left := 14.0 + float64(len(bankLines(r.cfg.bank)))*12
	if r.cfg.showTerms {
		left += 6 + 14 + float64(len(termsAndConditions))*11
	}
	h := left
	if h < 50 { // signature block minimum
		h = 50
	}
	h += 8 // separator gap
	if r.cfg.footerText != "" {
		h += 18
	}
	return h
}

// drawFullFooter renders the complete footer at the bottom of the final
// page: payment details, optional terms, signature block and optional
// custom text.
func (r *renderer) drawFullFooter() {
	yTop := pageHeight - pageMargin - r.fullFooterHeight()
	r.ruleAt(yTop)
	y := yTop + 8

	colW := r.cur.Geometry().ContentWidth() * 0.55

	r.setFont("B", 10)
	r.text(pageMargin, y, colW, "Payment Details", "L")
	y += 14

	r.setFont("", 9)
	for _, line := range bankLines(r.cfg.bank) {
		r.text(pageMargin, y, colW, line, "L")
		y += 12
	}

	if r.cfg.showTerms {
		y += 6
		r.setFont("B", 10)
		r.text(pageMargin, y, colW, "Terms & Conditions", "L")
		y += 14

		r.setFont("", 8)
		for i, term := range termsAndConditions {
			r.text(pageMargin, y, colW, fmt.Sprintf("%d. %s", i+1, term), "L")
			y += 11
		}
	}

	r.drawSignature(yTop + 8)

	if r.cfg.footerText != "" {
		r.setFont("I", 9)
		r.text(pageMargin, pageHeight-pageMargin-14, r.cur.Geometry().ContentWidth(), r.cfg.footerText, "C")
	}
}

// drawSignatureFooter is the simplified footer for pages closed by an
// overflow: the signature block only.
func (r *renderer) drawSignatureFooter() {
	r.drawSignature(pageHeight - pageMargin - 50)
}

func (r *renderer) drawSignature(yTop float64) {
	const w = 180.0
	x := pageWidth - pageMargin - w

	r.setFont("", 9)
	r.text(x, yTop, w, "For "+r.cfg.company.Name, "R")

	lineY := yTop + 32
	r.pdf.SetLineWidth(0.4)
	r.pdf.Line(x+w-150, lineY, x+w, lineY)
	r.pdf.SetLineWidth(0.2)
	r.text(x, lineY+2, w, "Authorised Signatory", "R")
}

func (r *renderer) drawPageNumber(p, total int) {
	r.setFont("", 8)
	r.pdf.SetXY(pageWidth-pageMargin-80, pageHeight-16)
	r.pdf.CellFormat(80, 10, fmt.Sprintf("Page %d of %d", p, total), "", 0, "R", false, 0, "")
}

// bankLines flattens the non-empty bank fields into display lines.
func bankLines(b BankDetails) []string {
	var lines []string
	if b.BankName != "" {
		lines = append(lines, "Bank: "+b.BankName)
	}
	if b.AccountNumber != "" {
		lines = append(lines, "A/C No: "+b.AccountNumber)
	}
	if b.IFSC != "" {
		lines = append(lines, "IFSC: "+b.IFSC)
	}
	if b.Branch != "" {
		lines = append(lines, "Branch: "+b.Branch)
	}
	if b.AccountHolder != "" {
		lines = append(lines, "Account Holder: "+b.AccountHolder)
	}
	return lines
}
