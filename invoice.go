package invoicegen

import (
	"fmt"
	"time"
)

// Invoice is the document being rendered. Monetary fields are supplied by
// the caller; the renderer computes the CGST and SGST amounts from the
// subtotal but renders Total exactly as given.
type Invoice struct {
	ID      string `json:"id,omitempty"`
	Number  string `json:"number"`            // unique display string, e.g. "INV-2024-017"
	Date    string `json:"date"`              // issue date; see ParseDate for accepted layouts
	DueDate string `json:"dueDate,omitempty"` // optional, same layouts as Date
	Project string `json:"project,omitempty"`

	Items []LineItem `json:"items"`

	Subtotal float64 `json:"subtotal"`
	CGSTRate float64 `json:"cgstRate"` // percentage applied to the subtotal
	SGSTRate float64 `json:"sgstRate"` // percentage applied to the subtotal
	Total    float64 `json:"total"`    // caller-computed; rendered as supplied

	Notes  string `json:"notes,omitempty"`
	BillTo *Party `json:"billTo,omitempty"`
}

// LineItem is one billable row of the invoice.
type LineItem struct {
	Quantity    float64 `json:"quantity"`
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"` // quantity times rate, precomputed by the caller
}

// Party identifies the billed party shown in the "Bill To" column.
type Party struct {
	Name    string   `json:"name,omitempty"`
	Address []string `json:"address,omitempty"`
	Contact string   `json:"contact,omitempty"`
}

// CompanyInfo is the issuing company's display block. Empty fields are
// filled from the package defaults; see WithCompanyInfo.
type CompanyInfo struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
	PAN     string `json:"pan,omitempty"`
}

// BankDetails is the payment block rendered in the full footer. Empty fields
// are filled from the package defaults; see WithBankDetails.
type BankDetails struct {
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
	Branch        string `json:"branch,omitempty"`
	AccountHolder string `json:"accountHolder,omitempty"`
}

// dateLayouts are the accepted invoice date formats, tried in order.
var dateLayouts = []string{"2006-01-02", "02/01/2006", time.RFC3339}

// ParseDate parses an invoice date string. Accepted layouts are ISO
// (2006-01-02), DD/MM/YYYY and RFC 3339.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}

// dateDisplay is the on-document date format.
const dateDisplay = "02/01/2006"
