// Package renderer produces the markdown reports displayed by the CLI.
// It owns its presentation types so the domain package stays free of any
// rendering concern.
package renderer

import (
	"fmt"
	"strings"
)

// Users renders the user listing as a markdown table. Rows are printed in
// the order given; callers sort them by username.
func Users(rows []UserRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Users\n\n")
	fmt.Fprintln(&b, "| Username | Name | Holdings |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | %d |\n", r.Username, r.Name, r.Holdings)
	}
	return b.String()
}

// Stocks renders the stock listing as a markdown table. Rows are printed in
// the order given; callers sort them by ticker.
func Stocks(rows []StockRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Stocks\n\n")
	fmt.Fprintln(&b, "| Ticker | Company | Value |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", r.Ticker, r.CompanyName, r.Value)
	}
	return b.String()
}

// Portfolio renders one user's holdings as a markdown table, with a total
// line. Rows are printed in the order given; callers sort them by ticker.
func Portfolio(username string, rows []HoldingRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio of %s\n\n", username)
	fmt.Fprintln(&b, "| Ticker | Shares | Unit Value | Total |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	var total Money
	for _, r := range rows {
		line := r.UnitValue.MulShares(r.Quantity)
		total = total.Add(line)
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n", r.Ticker, r.Quantity, r.UnitValue, line)
	}
	fmt.Fprintf(&b, "\nTotal value: %s\n", total)
	return b.String()
}
