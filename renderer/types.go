package renderer

// UserRow is one line of the user listing.
type UserRow struct {
	Username string
	Name     string
	Holdings int
}

// StockRow is one line of the stock listing.
type StockRow struct {
	Ticker      string
	CompanyName string
	Value       Money
}

// HoldingRow is one line of the portfolio listing.
type HoldingRow struct {
	Ticker    string
	Quantity  uint64
	UnitValue Money
}
