package invoicegen

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks inv before any drawing occurs. Checks run in a fixed
// order: invoice presence, invoice number, items non-empty, issue date, each
// item in list order (description, quantity, rate, amount), then the subtotal
// and total. Numeric fields must be finite. The first violation
// is returned as a *ValidationError naming the field; a valid invoice
// returns nil.
func Validate(inv *Invoice) error {
	if inv == nil {
		return &ValidationError{Field: "invoice", Err: ErrNilInvoice}
	}
	if strings.TrimSpace(inv.Number) == "" {
		return &ValidationError{Field: "number", Err: ErrBlank}
	}
	if len(inv.Items) == 0 {
		return &ValidationError{Field: "items", Err: ErrNoItems}
	}
	if strings.TrimSpace(inv.Date) == "" {
		return &ValidationError{Field: "date", Err: ErrBlank}
	}
	if _, err := ParseDate(inv.Date); err != nil {
		return &ValidationError{Field: "date", Err: err}
	}
	if inv.DueDate != "" {
		if _, err := ParseDate(inv.DueDate); err != nil {
			return &ValidationError{Field: "dueDate", Err: err}
		}
	}
	for i, it := range inv.Items {
		if strings.TrimSpace(it.Description) == "" {
			return &ValidationError{Field: fmt.Sprintf("items[%d].description", i), Err: ErrBlank}
		}
		if !isFinite(it.Quantity) || it.Quantity <= 0 {
			return &ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Err: fmt.Errorf("must be a finite number greater than zero, got %v", it.Quantity)}
		}
		if !isFinite(it.Rate) || it.Rate < 0 {
			return &ValidationError{Field: fmt.Sprintf("items[%d].rate", i), Err: fmt.Errorf("must be a finite non-negative number, got %v", it.Rate)}
		}
		if !isFinite(it.Amount) {
			return &ValidationError{Field: fmt.Sprintf("items[%d].amount", i), Err: fmt.Errorf("must be a finite number, got %v", it.Amount)}
		}
	}
	if !isFinite(inv.Subtotal) {
		return &ValidationError{Field: "subtotal", Err: fmt.Errorf("must be a finite number, got %v", inv.Subtotal)}
	}
	if !isFinite(inv.Total) {
		return &ValidationError{Field: "total", Err: fmt.Errorf("must be a finite number, got %v", inv.Total)}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
