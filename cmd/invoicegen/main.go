// Command invoicegen renders an invoice described by a JSON file into a
// paginated A4 PDF.
//
// # Usage
//
//	invoicegen -in invoice.json [-out DIR] [-logo FILE] [-qr FILE]
//	           [-pay URI] [-letterhead FILE] [-terms] [-footer TEXT]
//
// The input file holds a single invoicegen.Invoice in JSON form. -logo and
// -qr name raster image files (PNG, JPEG, GIF or WEBP); -pay generates the
// payment QR code from a payment URI instead. The output file is named from
// the invoice number and issue date and written into -out (default ".").
//
// # Example invoice.json
//
//	{
//	  "number": "INV-2024-017",
//	  "date": "2024-03-05",
//	  "project": "Hillside Residency",
//	  "items": [
//	    {"quantity": 1, "description": "Flat A-302 (2BHK) painting work", "rate": 45000, "amount": 45000}
//	  ],
//	  "subtotal": 45000,
//	  "cgstRate": 9,
//	  "sgstRate": 9,
//	  "total": 53100
//	}
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lvillar/invoicegen"
)

func main() {
	var (
		in         = flag.String("in", "", "invoice JSON file (required)")
		out        = flag.String("out", ".", "output directory")
		logoFile   = flag.String("logo", "", "company logo image file")
		qrFile     = flag.String("qr", "", "payment QR image file")
		payURI     = flag.String("pay", "", "payment URI to encode as a QR code")
		letterhead = flag.String("letterhead", "", "stationery PDF underlaid on every page")
		terms      = flag.Bool("terms", false, "append the terms and conditions block")
		footer     = flag.String("footer", "", "custom footer text on the final page")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		fatal(err)
	}
	var inv invoicegen.Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		fatal(fmt.Errorf("parsing %s: %w", *in, err))
	}

	opts := []invoicegen.Option{
		invoicegen.WithLogger(log.New(os.Stderr, "", log.LstdFlags)),
	}
	if *logoFile != "" {
		payload, err := encodeFile(*logoFile)
		if err != nil {
			fatal(err)
		}
		opts = append(opts, invoicegen.WithLogo(payload))
	}
	if *qrFile != "" {
		payload, err := encodeFile(*qrFile)
		if err != nil {
			fatal(err)
		}
		opts = append(opts, invoicegen.WithQRImage(payload))
	}
	if *payURI != "" {
		opts = append(opts, invoicegen.WithPaymentQR(*payURI))
	}
	if *letterhead != "" {
		opts = append(opts, invoicegen.WithLetterhead(*letterhead))
	}
	if *terms {
		opts = append(opts, invoicegen.WithTermsAndConditions())
	}
	if *footer != "" {
		opts = append(opts, invoicegen.WithFooterText(*footer))
	}

	path, err := invoicegen.GenerateFile(*out, &inv, opts...)
	if err != nil {
		fatal(err)
	}
	fmt.Println(path)
}

func encodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "invoicegen: %v\n", err)
	os.Exit(1)
}
