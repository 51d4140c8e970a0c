package invoicegen

import "testing"

func TestNewRenderConfigDefaults(t *testing.T) {
	cfg := newRenderConfig()
	if cfg.company != defaultCompany {
		t.Errorf("company = %+v, want defaults", cfg.company)
	}
	if cfg.bank != defaultBank {
		t.Errorf("bank = %+v, want defaults", cfg.bank)
	}
	if cfg.showTerms || cfg.footerText != "" || cfg.logger != nil {
		t.Error("unexpected non-zero option defaults")
	}
	if !cfg.compress {
		t.Error("compression should default on")
	}
}

func TestWithCompanyInfoMergesDefaults(t *testing.T) {
	cfg := newRenderConfig(WithCompanyInfo(CompanyInfo{
		Name:  "Lotus Infra",
		GSTIN: "29BBBBB1111B2Z6",
	}))

	if cfg.company.Name != "Lotus Infra" {
		t.Errorf("Name = %q", cfg.company.Name)
	}
	if cfg.company.GSTIN != "29BBBBB1111B2Z6" {
		t.Errorf("GSTIN = %q", cfg.company.GSTIN)
	}
	// Unset fields keep their defaults.
	if cfg.company.Phone != defaultCompany.Phone {
		t.Errorf("Phone = %q, want default %q", cfg.company.Phone, defaultCompany.Phone)
	}
	if cfg.company.City != defaultCompany.City {
		t.Errorf("City = %q, want default %q", cfg.company.City, defaultCompany.City)
	}
}

func TestWithBankDetailsMergesDefaults(t *testing.T) {
	cfg := newRenderConfig(WithBankDetails(BankDetails{
		AccountNumber: "99887766554433",
	}))

	if cfg.bank.AccountNumber != "99887766554433" {
		t.Errorf("AccountNumber = %q", cfg.bank.AccountNumber)
	}
	if cfg.bank.BankName != defaultBank.BankName {
		t.Errorf("BankName = %q, want default", cfg.bank.BankName)
	}
	if cfg.bank.IFSC != defaultBank.IFSC {
		t.Errorf("IFSC = %q, want default", cfg.bank.IFSC)
	}
}

func TestQROptionsRecorded(t *testing.T) {
	cfg := newRenderConfig(
		WithQRImage("cGF5bG9hZA=="),
		WithPaymentQR("upi://pay?pa=acme@bank"),
	)
	if cfg.qrPayload == "" || cfg.qrContent == "" {
		t.Fatal("both QR options should be recorded; the raster payload wins at render time")
	}
}
