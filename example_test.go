package invoicegen_test

import (
	"bytes"
	"fmt"

	invoicegen "github.com/lvillar/invoicegen"
)

func ExampleGenerate() {
	inv := &invoicegen.Invoice{
		Number:  "INV-2024-017",
		Date:    "2024-03-05",
		DueDate: "2024-03-20",
		Project: "Hillside Residency",
		BillTo: &invoicegen.Party{
			Name:    "R. Sharma",
			Address: []string{"Flat 7, Lake View Apartments", "Baner, Pune 411045"},
			Contact: "+91 90000 00000",
		},
		Items: []invoicegen.LineItem{
			{Quantity: 2, Description: "Flat A-101 (2BHK) painting work", Rate: 18500, Amount: 37000},
			{Quantity: 1, Description: "Scaffolding hire", Rate: 4200, Amount: 4200},
		},
		Subtotal: 41200,
		CGSTRate: 9,
		SGSTRate: 9,
		Total:    48616,
		Notes:    "Payment due within 15 days of the invoice date.",
	}

	var buf bytes.Buffer
	err := invoicegen.Generate(&buf, inv,
		invoicegen.WithTermsAndConditions(),
		invoicegen.WithPaymentQR("upi://pay?pa=saibuilders@sbi&am=48616.00"),
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Generated PDF: %t\n", bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	// Output: Generated PDF: true
}

func ExampleGenerate_customCompany() {
	inv := &invoicegen.Invoice{
		Number: "2024-001",
		Date:   "2024-04-01",
		Items: []invoicegen.LineItem{
			{Quantity: 1, Description: "Site survey and measurement", Rate: 7500, Amount: 7500},
		},
		Subtotal: 7500,
		Total:    7500,
	}

	var buf bytes.Buffer
	err := invoicegen.Generate(&buf, inv,
		invoicegen.WithCompanyInfo(invoicegen.CompanyInfo{
			Name:  "Deshmukh Constructions",
			City:  "Nashik, Maharashtra",
			Phone: "+91 98888 88888",
		}),
		invoicegen.WithFooterText("This is a computer generated invoice."),
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Generated PDF: %t\n", bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	// Output: Generated PDF: true
}
