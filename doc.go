// Package invoicegen renders invoices as paginated A4 PDF documents.
//
// The renderer lays out a fixed sequence of sections: header, billing block,
// notes, item table, totals, payment QR code and footer. A layout cursor
// tracks the vertical write position; before each block a page-break check
// decides whether it fits in the remaining space, and on overflow a new page
// is started with a condensed continuation header. Item rows are never split
// across pages, and the table header row is repeated on every page that
// receives rows. Footer content is decided only after the whole document has
// been laid out: the final page carries the full payment/terms/signature
// footer, earlier pages a signature-only variant.
//
// A generation is a one-shot transformation: the invoice and options go in,
// a finished document comes out, and no state survives the call. Calls are
// independent and safe to run concurrently.
//
// Basic usage:
//
//	var buf bytes.Buffer
//	err := invoicegen.Generate(&buf, inv,
//	    invoicegen.WithCompanyInfo(company),
//	    invoicegen.WithTermsAndConditions(),
//	)
package invoicegen
