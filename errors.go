package invoicegen

import (
	"errors"
	"fmt"
)

// Sentinel errors for common invoice validation failures.
var (
	ErrNilInvoice = errors.New("invoice is nil")
	ErrNoItems    = errors.New("at least one line item is required")
	ErrBlank      = errors.New("must not be blank")
)

// ValidationError reports invalid or missing invoice data, detected before
// any drawing occurs. Field names the offending field, using index notation
// for line items, e.g. "items[2].quantity".
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invoicegen: invalid invoice: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// AssetError reports a logo or QR asset that could not be decoded or
// embedded. Asset errors are never fatal: the renderer reports them through
// the configured logger and omits the image.
type AssetError struct {
	Asset string // "logo" or "qr"
	Err   error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("invoicegen: %s asset: %v", e.Asset, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}
