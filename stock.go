package stocktracker

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Stock is one share of a company's stock.
type Stock struct {
	// Ticker is the unique identifier, typically a few capital letters
	// (FOO, BAR). It is also the stock map key.
	Ticker string `json:"ticker"`
	// CompanyName is the display name of the company.
	CompanyName string `json:"company_name"`
	// Value is the USD value of one share.
	Value decimal.Decimal `json:"value"`
}

// NewStock returns a default-valued stock for the given ticker.
func NewStock(ticker string) Stock {
	return Stock{Ticker: ticker, CompanyName: "company_name"}
}

func (s Stock) String() string {
	return fmt.Sprintf("%s (%s): %s", s.Ticker, s.CompanyName, s.Value)
}

// SetProperty resolves a property name, case-insensitively, to one of the
// stock's editable fields and assigns the given value to it. The value field
// parses as a decimal. Unknown property names fail with InvalidInput.
func (s *Stock) SetProperty(property, value string) error {
	switch strings.ToLower(property) {
	case "tk", "ticker":
		s.Ticker = value
	case "cn", "company-name":
		s.CompanyName = value
	case "v", "value":
		d, err := decimal.NewFromString(value)
		if err != nil {
			return errParse(value, "decimal", err)
		}
		s.Value = d
	default:
		return errInvalidInput()
	}
	return nil
}

// StockUnit is an owned quantity of a stock, holding a copy of the stock
// record as it was at purchase time.
type StockUnit struct {
	Stock    Stock  `json:"stock"`
	Quantity uint64 `json:"quantity"`
}

// Add accumulates quantity shares onto the unit. A zero quantity is rejected
// with InvalidInput, so the quantity stays strictly positive.
func (u *StockUnit) Add(quantity uint64) error {
	if quantity == 0 {
		return errInvalidInput()
	}
	u.Quantity += quantity
	return nil
}
