package invoicegen

import "log"

// Option configures a single document generation.
type Option func(*renderConfig)

type renderConfig struct {
	company CompanyInfo
	bank    BankDetails

	showTerms  bool
	footerText string

	logoPayload string
	qrPayload   string
	qrContent   string
	letterhead  string

	logger   *log.Logger
	compress bool
}

// Defaults used when the caller supplies no override, or a partial one.
var (
	defaultCompany = CompanyInfo{
		Name:    "Sai Builders & Developers",
		Address: "12 MG Road",
		City:    "Pune 411001",
		Phone:   "+91 98220 00000",
		Email:   "accounts@saibuilders.in",
		GSTIN:   "27AAAAA0000A1Z5",
	}

	defaultBank = BankDetails{
		BankName:      "State Bank of India",
		AccountNumber: "00000123456789",
		IFSC:          "SBIN0001234",
		Branch:        "MG Road, Pune",
		AccountHolder: "Sai Builders & Developers",
	}
)

func newRenderConfig(opts ...Option) *renderConfig {
	cfg := &renderConfig{
		company:  defaultCompany,
		bank:     defaultBank,
		compress: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithCompanyInfo overrides the default issuing-company block. Only
// non-empty fields replace the defaults.
func WithCompanyInfo(ci CompanyInfo) Option {
	return func(c *renderConfig) {
		c.company = mergeCompany(c.company, ci)
	}
}

// WithBankDetails overrides the default payment block in the full footer.
// Only non-empty fields replace the defaults.
func WithBankDetails(bd BankDetails) Option {
	return func(c *renderConfig) {
		c.bank = mergeBank(c.bank, bd)
	}
}

// WithTermsAndConditions appends the fixed terms block to the final page
// footer.
func WithTermsAndConditions() Option {
	return func(c *renderConfig) {
		c.showTerms = true
	}
}

// WithFooterText centers text at the bottom of the final page.
func WithFooterText(text string) Option {
	return func(c *renderConfig) {
		c.footerText = text
	}
}

// WithLogo supplies the company logo as a raster payload, either raw base64
// or a base64 data URI. A payload that cannot be decoded is reported as a
// warning and the logo is omitted; it never fails the generation.
func WithLogo(payload string) Option {
	return func(c *renderConfig) {
		c.logoPayload = payload
	}
}

// WithQRImage supplies the payment QR code as a raster payload, either raw
// base64 or a base64 data URI. Takes precedence over WithPaymentQR. Like the
// logo, a malformed payload degrades to a warning.
func WithQRImage(payload string) Option {
	return func(c *renderConfig) {
		c.qrPayload = payload
	}
}

// WithPaymentQR generates the payment QR code from a payment string, such as
// a UPI URI. Ignored when WithQRImage is also set.
func WithPaymentQR(content string) Option {
	return func(c *renderConfig) {
		c.qrContent = content
	}
}

// WithLetterhead underlays page 1 of the given PDF file beneath the content
// of every generated page, for pre-printed stationery. Unlike raster assets
// an unreadable letterhead is a fatal error: it is caller configuration, not
// invoice data.
func WithLetterhead(path string) Option {
	return func(c *renderConfig) {
		c.letterhead = path
	}
}

// WithLogger directs asset-degradation warnings to l. Without a logger the
// warnings are discarded.
func WithLogger(l *log.Logger) Option {
	return func(c *renderConfig) {
		c.logger = l
	}
}

// mergeCompany copies non-empty fields of o over base.
func mergeCompany(base, o CompanyInfo) CompanyInfo {
	if o.Name != "" {
		base.Name = o.Name
	}
	if o.Address != "" {
		base.Address = o.Address
	}
	if o.City != "" {
		base.City = o.City
	}
	if o.Phone != "" {
		base.Phone = o.Phone
	}
	if o.Email != "" {
		base.Email = o.Email
	}
	if o.Website != "" {
		base.Website = o.Website
	}
	if o.GSTIN != "" {
		base.GSTIN = o.GSTIN
	}
	if o.PAN != "" {
		base.PAN = o.PAN
	}
	return base
}

// mergeBank copies non-empty fields of o over base.
func mergeBank(base, o BankDetails) BankDetails {
	if o.BankName != "" {
		base.BankName = o.BankName
	}
	if o.AccountNumber != "" {
		base.AccountNumber = o.AccountNumber
	}
	if o.IFSC != "" {
		base.IFSC = o.IFSC
	}
	if o.Branch != "" {
		base.Branch = o.Branch
	}
	if o.AccountHolder != "" {
		base.AccountHolder = o.AccountHolder
	}
	return base
}
