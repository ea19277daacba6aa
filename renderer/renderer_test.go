package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headings parses md and returns the text of every level-1 heading, making
// sure the output stays structurally valid markdown.
func headings(t *testing.T, md string) []string {
	t.Helper()
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader([]byte(md)))

	var found []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
			var b strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if tn, ok := c.(*ast.Text); ok {
					b.Write(tn.Segment.Value([]byte(md)))
				}
			}
			found = append(found, b.String())
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return found
}

func TestUsers(t *testing.T) {
	md := Users([]UserRow{
		{Username: "alice", Name: "Alice Liddell", Holdings: 2},
		{Username: "bob", Name: "Bob Dobbs", Holdings: 0},
	})

	hs := headings(t, md)
	if len(hs) != 1 || hs[0] != "Users" {
		t.Errorf("headings = %v, want [Users]", hs)
	}
	for _, want := range []string{"| alice | Alice Liddell | 2 |", "| bob | Bob Dobbs | 0 |"} {
		if !strings.Contains(md, want) {
			t.Errorf("missing row %q in:\n%s", want, md)
		}
	}
}

func TestStocks(t *testing.T) {
	md := Stocks([]StockRow{
		{Ticker: "FOO", CompanyName: "Foo Inc", Value: USD(decimal.RequireFromString("12.5"))},
	})

	hs := headings(t, md)
	if len(hs) != 1 || hs[0] != "Stocks" {
		t.Errorf("headings = %v, want [Stocks]", hs)
	}
	if !strings.Contains(md, "| FOO | Foo Inc | $12.50 |") {
		t.Errorf("missing row in:\n%s", md)
	}
}

func TestPortfolio(t *testing.T) {
	md := Portfolio("alice", []HoldingRow{
		{Ticker: "BAR", Quantity: 2, UnitValue: USD(decimal.RequireFromString("3.25"))},
		{Ticker: "FOO", Quantity: 8, UnitValue: USD(decimal.RequireFromString("12.50"))},
	})

	hs := headings(t, md)
	if len(hs) != 1 || hs[0] != "Portfolio of alice" {
		t.Errorf("headings = %v, want [Portfolio of alice]", hs)
	}
	if !strings.Contains(md, "| BAR | 2 | $3.25 | $6.50 |") {
		t.Errorf("missing BAR row in:\n%s", md)
	}
	if !strings.Contains(md, "| FOO | 8 | $12.50 | $100.00 |") {
		t.Errorf("missing FOO row in:\n%s", md)
	}
	// 6.50 + 100.00
	if !strings.Contains(md, "Total value: $106.50") {
		t.Errorf("missing total in:\n%s", md)
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		value string
		want  string
	}{
		{"0", "$0.00"},
		{"12.5", "$12.50"},
		{"1234.5", "$1,234.50"},
	}
	for _, tc := range testCases {
		if got := USD(decimal.RequireFromString(tc.value)).String(); got != tc.want {
			t.Errorf("USD(%s).String() = %q, want %q", tc.value, got, tc.want)
		}
	}
}
