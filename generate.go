package invoicegen

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/lvillar/invoicegen/assets"
	"github.com/lvillar/invoicegen/layout"
)

// Page geometry: A4 portrait in points with a uniform 20 pt margin. The
// footer reserve is sized to the tallest footer variant (bank details plus
// terms plus signature plus custom text) so the page that turns out to be
// the last always has room for the full footer.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
	pageMargin = 20

	footerReserve = 170
)

// Text metrics shared by the section renderers.
const (
	lineHeight    = 14
	baseRowHeight = 22
	cellPadding   = 4
	sectionGap    = 14
)

const fontFamily = "Helvetica"

// Generate renders inv as a paginated A4 PDF and writes it to w.
//
// Validation runs before any drawing; on a validation or drawing error
// nothing is written to w. Malformed logo or QR payloads degrade to a
// warning on the configured logger and the image is omitted. Each call is
// independent: identical inputs produce identical output bytes.
func Generate(w io.Writer, inv *Invoice, opts ...Option) error {
	pdf, err := render(inv, newRenderConfig(opts...))
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("invoicegen: writing invoice %s: %w", inv.Number, err)
	}
	return nil
}

// GenerateFile renders inv and saves it under dir with the name produced by
// Filename. The document is rendered fully in memory first, so a failure
// never leaves a partial file behind. Returns the path of the written file.
func GenerateFile(dir string, inv *Invoice, opts ...Option) (string, error) {
	pdf, err := render(inv, newRenderConfig(opts...))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", fmt.Errorf("invoicegen: writing invoice %s: %w", inv.Number, err)
	}
	path := filepath.Join(dir, Filename(inv))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("invoicegen: saving %s: %w", path, err)
	}
	return path, nil
}

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

// Filename returns the delivery name for inv:
// Invoice-<sanitized-number>-<DD-MM-YYYY>.pdf, with every non-alphanumeric
// character of the invoice number replaced by "-". The date part is dropped
// when the issue date cannot be parsed; Validate rejects that case before
// any document is produced.
func Filename(inv *Invoice) string {
	num := nonAlnum.ReplaceAllString(inv.Number, "-")
	d, err := ParseDate(inv.Date)
	if err != nil {
		return fmt.Sprintf("Invoice-%s.pdf", num)
	}
	return fmt.Sprintf("Invoice-%s-%s.pdf", num, d.Format("02-01-2006"))
}

// renderer drives the section renderers for a single generation. Every call
// builds its own renderer and cursor; nothing is shared between calls.
type renderer struct {
	pdf *gofpdf.Fpdf
	cfg *renderConfig
	inv *Invoice
	cur *layout.Cursor

	issued time.Time
	due    *time.Time

	logo *assets.Image
	qr   *assets.Image

	// Letterhead template, imported once and underlaid on every page.
	imp           *gofpdi.Importer
	letterheadTpl int
}

func render(inv *Invoice, cfg *renderConfig) (*gofpdf.Fpdf, error) {
	if err := Validate(inv); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	// Sorted resource catalogs plus the pinned creation date below keep
	// identical inputs byte-identical.
	pdf.SetCatalogSort(true)
	if !cfg.compress {
		pdf.SetCompression(false)
	}
	pdf.SetTitle("Invoice "+inv.Number, true)

	// Dates validated above.
	issued, _ := ParseDate(inv.Date)
	// Pin the embedded creation date so identical inputs yield identical
	// bytes.
	pdf.SetCreationDate(issued.UTC())

	r := &renderer{
		pdf:    pdf,
		cfg:    cfg,
		inv:    inv,
		issued: issued,
		cur: layout.NewCursor(layout.Geometry{
			PageWidth:     pageWidth,
			PageHeight:    pageHeight,
			Margin:        pageMargin,
			FooterReserve: footerReserve,
		}),
	}
	if inv.DueDate != "" {
		due, _ := ParseDate(inv.DueDate)
		r.due = &due
	}

	r.loadAssets()
	if cfg.letterhead != "" {
		if err := r.importLetterhead(cfg.letterhead); err != nil {
			return nil, err
		}
	}

	pdf.AddPage()
	r.underlay()

	r.drawHeader()
	r.drawBilling()
	r.drawNotes()
	r.drawItems()
	r.drawTotals()
	r.drawQR()

	// Footer variants are decided retroactively, once the page count is
	// known.
	r.drawFooters()

	if pdf.Err() {
		return nil, fmt.Errorf("invoicegen: rendering invoice %s: %w", inv.Number, pdf.Error())
	}
	return pdf, nil
}

// ensure guarantees at least h of vertical space on the current page,
// breaking to a new one first when the remaining space cannot take it.
func (r *renderer) ensure(h float64) {
	if !r.cur.Fits(h) {
		r.breakPage()
	}
}

// breakPage closes the current page and opens the next one, re-emitting the
// condensed continuation header before the interrupted section resumes.
func (r *renderer) breakPage() {
	r.pdf.AddPage()
	r.cur.NewPage()
	r.underlay()
	r.continuationHeader()
}

// underlay draws the imported letterhead beneath the current page, if one
// was configured.
func (r *renderer) underlay() {
	if r.letterheadTpl == 0 {
		return
	}
	r.imp.UseImportedTemplate(r.pdf, r.letterheadTpl, 0, 0, pageWidth, pageHeight)
}

// importLetterhead imports page 1 of the stationery PDF as a template.
func (r *renderer) importLetterhead(path string) (err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		return fmt.Errorf("invoicegen: letterhead: %w", statErr)
	}
	// gofpdi reports unreadable source files by panicking.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("invoicegen: importing letterhead %s: %v", path, p)
		}
	}()
	r.imp = gofpdi.NewImporter()
	r.letterheadTpl = r.imp.ImportPage(r.pdf, path, 1, "/MediaBox")
	return nil
}

// loadAssets decodes the configured logo and QR assets. Failures are
// reported as warnings and the asset is dropped; they never abort the
// generation.
func (r *renderer) loadAssets() {
	if r.cfg.logoPayload != "" {
		img, err := assets.DecodePayload("invoice-logo", r.cfg.logoPayload)
		if err != nil {
			r.warn(&AssetError{Asset: "logo", Err: err})
		} else {
			r.logo = img
		}
	}

	switch {
	case r.cfg.qrPayload != "":
		img, err := assets.DecodePayload("invoice-qr", r.cfg.qrPayload)
		if err != nil {
			r.warn(&AssetError{Asset: "qr", Err: err})
		} else {
			r.qr = img
		}
	case r.cfg.qrContent != "":
		img, err := assets.PaymentQR(r.cfg.qrContent, 256)
		if err != nil {
			r.warn(&AssetError{Asset: "qr", Err: err})
		} else {
			r.qr = img
		}
	}
}

// drawImage registers and draws img with its top-left corner at (x, y). If
// h is zero it is derived from the image's aspect ratio. Returns the drawn
// height and whether the image was drawn: a registration failure is cleared
// from the document and reported as a warning, keeping the asset contract
// non-fatal.
func (r *renderer) drawImage(img *assets.Image, x, y, w, h float64) (float64, bool) {
	opts := gofpdf.ImageOptions{ImageType: img.Format}
	info := r.pdf.RegisterImageOptionsReader(img.Name, opts, bytes.NewReader(img.Data))
	if r.pdf.Err() {
		err := r.pdf.Error()
		// A bad image must not poison the whole document.
		r.pdf.ClearError()
		r.warn(&AssetError{Asset: img.Name, Err: err})
		return 0, false
	}
	if h == 0 {
		iw, ih := info.Extent()
		if iw > 0 {
			h = w * ih / iw
		}
	}
	r.pdf.ImageOptions(img.Name, x, y, w, h, false, opts, 0, "")
	return h, true
}

func (r *renderer) warn(err error) {
	if r.cfg.logger != nil {
		r.cfg.logger.Printf("invoicegen: warning: %v", err)
	}
}

// setFont is a small convenience over gofpdf.SetFont with the document's
// fixed family.
func (r *renderer) setFont(style string, size float64) {
	r.pdf.SetFont(fontFamily, style, size)
}

// text draws a single aligned line of height lineHeight at the cursor,
// without advancing it.
func (r *renderer) text(x, y, w float64, s, align string) {
	r.pdf.SetXY(x, y)
	r.pdf.CellFormat(w, lineHeight, s, "", 0, align, false, 0, "")
}
