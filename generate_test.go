package invoicegen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/invoicegen/layout"
)

// renderRaw renders with compression off so page content streams stay
// readable for assertions.
func renderRaw(t *testing.T, inv *Invoice, opts ...Option) (*gofpdf.Fpdf, []byte) {
	t.Helper()
	cfg := newRenderConfig(opts...)
	cfg.compress = false

	pdf, err := render(inv, cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	return pdf, buf.Bytes()
}

func longInvoice(n int) *Invoice {
	inv := &Invoice{
		Number:  "INV-42",
		Date:    "2024-03-05",
		Project: "Hillside Residency",
		BillTo:  &Party{Name: "R. Sharma", Address: []string{"Flat 7, Lake View"}, Contact: "+91 90000 00000"},
	}
	for i := 0; i < n; i++ {
		inv.Items = append(inv.Items, LineItem{
			Quantity:    1,
			Description: fmt.Sprintf("Work stage %03d finishing", i+1),
			Rate:        100,
			Amount:      100,
		})
		inv.Subtotal += 100
	}
	inv.CGSTRate = 9
	inv.SGSTRate = 9
	inv.Total = inv.Subtotal * 1.18
	return inv
}

func logoPayload(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{B: 180, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestGenerateWritesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, validInvoice()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
}

func TestGenerateRejectsNonFiniteAmounts(t *testing.T) {
	inv := validInvoice()
	inv.Items[0].Rate = math.NaN()

	var buf bytes.Buffer
	if err := Generate(&buf, inv); err == nil {
		t.Fatal("expected validation error for a NaN rate")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %d bytes", buf.Len())
	}
}

func TestGenerateRejectsInvalidWithoutOutput(t *testing.T) {
	inv := validInvoice()
	inv.Items = nil

	var buf bytes.Buffer
	if err := Generate(&buf, inv); err == nil {
		t.Fatal("expected validation error")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output on validation failure, got %d bytes", buf.Len())
	}
}

func TestSinglePageDocument(t *testing.T) {
	pdf, out := renderRaw(t, validInvoice())

	if got := pdf.PageCount(); got != 1 {
		t.Fatalf("PageCount = %d, want 1", got)
	}
	if n := bytes.Count(out, []byte("(Payment Details)")); n != 1 {
		t.Errorf("full footer appears %d times, want 1", n)
	}
	if n := bytes.Count(out, []byte("(Page 1 of 1)")); n != 1 {
		t.Errorf("page number appears %d times, want 1", n)
	}
	if !bytes.Contains(out, []byte("(Date: 05/03/2024)")) {
		t.Error("issue date not rendered as DD/MM/YYYY")
	}
}

func TestPaginationLongItemList(t *testing.T) {
	pdf, out := renderRaw(t, longInvoice(80))

	pages := pdf.PageCount()
	if pages < 2 {
		t.Fatalf("PageCount = %d, want at least 2", pages)
	}

	// The table header is re-emitted on every page that receives rows.
	headers := bytes.Count(out, []byte("(QTY)"))
	if headers < 2 || headers > pages {
		t.Errorf("table header appears %d times across %d pages", headers, pages)
	}
	if n := bytes.Count(out, []byte("(DESCRIPTION)")); n != headers {
		t.Errorf("header columns out of sync: QTY %d, DESCRIPTION %d", headers, n)
	}

	// Continuation header on every page after the first.
	if n := bytes.Count(out, []byte("- Continued")); n != pages-1 {
		t.Errorf("continuation header appears %d times, want %d", n, pages-1)
	}

	// Full footer exactly once; the signature block is on every page.
	if n := bytes.Count(out, []byte("(Payment Details)")); n != 1 {
		t.Errorf("full footer appears %d times, want 1", n)
	}
	if n := bytes.Count(out, []byte("(Authorised Signatory)")); n != pages {
		t.Errorf("signature appears %d times, want %d", n, pages)
	}

	// Page numbers start at 1 and increase by one.
	for p := 1; p <= pages; p++ {
		marker := fmt.Sprintf("(Page %d of %d)", p, pages)
		if !bytes.Contains(out, []byte(marker)) {
			t.Errorf("missing page number %q", marker)
		}
	}
}

func TestItemRowHeightGrowsWithDescription(t *testing.T) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	r := &renderer{
		pdf: pdf,
		cfg: newRenderConfig(),
		cur: layout.NewCursor(layout.Geometry{
			PageWidth: pageWidth, PageHeight: pageHeight,
			Margin: pageMargin, FooterReserve: footerReserve,
		}),
	}
	_, ws := r.itemCols()

	short := r.itemRowHeight(LineItem{Description: "Short"}, ws[1])
	if short != baseRowHeight {
		t.Fatalf("short row height = %v, want base %v", short, baseRowHeight)
	}

	long := r.itemRowHeight(LineItem{
		Description: strings.Repeat("long description with many words ", 20),
	}, ws[1])
	if long <= baseRowHeight {
		t.Fatalf("wrapped row height = %v, want > %v", long, baseRowHeight)
	}
}

func TestOversizedRowsDeferredNotSplit(t *testing.T) {
	inv := longInvoice(25)
	// A row tall enough that it cannot share a page tail.
	inv.Items[20].Description = strings.Repeat("very long measurement narrative ", 40)

	pdf, _ := renderRaw(t, inv)
	if pdf.PageCount() < 2 {
		t.Fatalf("expected a page break, got %d page(s)", pdf.PageCount())
	}
	if pdf.Err() {
		t.Fatalf("render error: %v", pdf.Error())
	}
}

func TestTaxAmountsComputedFromSubtotal(t *testing.T) {
	inv := validInvoice() // subtotal 1200, 9% + 9%
	inv.Total = 9999      // deliberately inconsistent; rendered as supplied

	_, out := renderRaw(t, inv)

	if n := bytes.Count(out, []byte("Rs. 108.00")); n != 2 {
		t.Errorf("expected CGST and SGST amounts of Rs. 108.00, found %d", n)
	}
	if !bytes.Contains(out, []byte("Rs. 9,999.00")) {
		t.Error("total must render exactly as supplied by the caller")
	}
}

func TestIdempotence(t *testing.T) {
	inv := longInvoice(30)

	var a, b bytes.Buffer
	if err := Generate(&a, inv, WithTermsAndConditions()); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if err := Generate(&b, inv, WithTermsAndConditions()); err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("identical inputs produced different output bytes")
	}
}

func TestMalformedLogoDegradesGracefully(t *testing.T) {
	var logbuf bytes.Buffer
	logger := log.New(&logbuf, "", 0)

	var buf bytes.Buffer
	err := Generate(&buf, validInvoice(),
		WithLogo("!!!not-an-image!!!"),
		WithLogger(logger),
	)
	if err != nil {
		t.Fatalf("Generate must not fail on a malformed logo: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("expected a valid document without the logo")
	}
	if !strings.Contains(logbuf.String(), "logo") {
		t.Errorf("expected a logo warning, log: %q", logbuf.String())
	}
}

func TestMalformedQRDegradesGracefully(t *testing.T) {
	var logbuf bytes.Buffer

	var buf bytes.Buffer
	err := Generate(&buf, validInvoice(),
		WithQRImage("data:image/png;base64"),
		WithLogger(log.New(&logbuf, "", 0)),
	)
	if err != nil {
		t.Fatalf("Generate must not fail on a malformed QR payload: %v", err)
	}
	if !strings.Contains(logbuf.String(), "qr") {
		t.Errorf("expected a qr warning, log: %q", logbuf.String())
	}
}

func TestLogoRendered(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, validInvoice(), WithLogo(logoPayload(t))); err != nil {
		t.Fatalf("Generate with logo: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/XObject")) {
		t.Error("expected an embedded image object")
	}
}

func TestPaymentQRRendered(t *testing.T) {
	_, out := renderRaw(t, validInvoice(), WithPaymentQR("upi://pay?pa=acme@bank&am=1416.00"))
	if !bytes.Contains(out, []byte("(Scan to pay)")) {
		t.Error("expected the QR caption")
	}
}

func TestTermsAndFooterText(t *testing.T) {
	_, out := renderRaw(t, validInvoice(),
		WithTermsAndConditions(),
		WithFooterText("Thank you for your business!"),
	)
	if !bytes.Contains(out, []byte("Terms & Conditions")) {
		t.Error("expected the terms block")
	}
	if !bytes.Contains(out, []byte("Thank you for your business!")) {
		t.Error("expected the custom footer text")
	}

	// Neither appears without the options.
	_, out = renderRaw(t, validInvoice())
	if bytes.Contains(out, []byte("Terms & Conditions")) {
		t.Error("terms block must be opt-in")
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		number string
		date   string
		want   string
	}{
		{"INV-2024-001", "2024-03-05", "Invoice-INV-2024-001-05-03-2024.pdf"},
		{"INV/7 #2", "2024-03-05", "Invoice-INV-7--2-05-03-2024.pdf"},
		{"2024.017", "31/12/2024", "Invoice-2024-017-31-12-2024.pdf"},
	}
	for _, tc := range tests {
		inv := &Invoice{Number: tc.number, Date: tc.date}
		if got := Filename(inv); got != tc.want {
			t.Errorf("Filename(%q, %q) = %q, want %q", tc.number, tc.date, got, tc.want)
		}
	}
}

func TestGenerateFile(t *testing.T) {
	dir := t.TempDir()
	path, err := GenerateFile(dir, validInvoice())
	if err != nil {
		t.Fatalf("GenerateFile: %v", err)
	}
	if filepath.Base(path) != "Invoice-INV-2024-001-05-03-2024.pdf" {
		t.Errorf("unexpected file name %q", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("saved file is not a PDF")
	}
}

func TestGenerateFileLeavesNothingOnFailure(t *testing.T) {
	dir := t.TempDir()
	inv := validInvoice()
	inv.Date = "not a date"

	if _, err := GenerateFile(dir, inv); err == nil {
		t.Fatal("expected validation error")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files, found %d", len(entries))
	}
}

func TestLetterheadUnderlay(t *testing.T) {
	dir := t.TempDir()
	lh := filepath.Join(dir, "letterhead.pdf")

	src := gofpdf.New("P", "pt", "A4", "")
	src.AddPage()
	src.SetFont("Helvetica", "", 12)
	src.Text(40, 40, "STATIONERY")
	if err := src.OutputFileAndClose(lh); err != nil {
		t.Fatalf("writing letterhead fixture: %v", err)
	}

	var buf bytes.Buffer
	if err := Generate(&buf, longInvoice(80), WithLetterhead(lh)); err != nil {
		t.Fatalf("Generate with letterhead: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("expected a valid document")
	}
}

func TestLetterheadMissingFileIsFatal(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, validInvoice(), WithLetterhead("no-such-file.pdf"))
	if err == nil {
		t.Fatal("expected an error for a missing letterhead")
	}
	if buf.Len() != 0 {
		t.Fatal("expected no output on letterhead failure")
	}
}
