package constants

// Currency codes recognized in transfer receipts (ISO 4217).
const (
	CurrencyARS = "ARS"
	CurrencyUSD = "USD"
)

// DefaultCurrency applies when no currency token is found in the document.
const DefaultCurrency = CurrencyARS
