package stocktracker

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Quote-export files are JSON arrays of objects carrying at least a ticker,
// a company name and a price. The columns are pulled out with jsonpath
// expressions so the exact object shape does not matter much.
const (
	tickerPath = "$[*].ticker"
	namePath   = "$[*].name"
	pricePath  = "$[*].price"
)

// importStocks reads a quote-export file and upserts every quote into the
// stock map: unknown tickers are created, known tickers get their company
// name and value refreshed.
func (a *App) importStocks(cfg *Config) error {
	filename := cfg.Remainder[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		return errOpenFailed(filename, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return errDeserializeFailed(filename, err)
	}

	tickers, err := column(doc, tickerPath)
	if err != nil {
		return errDeserializeFailed(filename, err)
	}
	names, err := column(doc, namePath)
	if err != nil {
		return errDeserializeFailed(filename, err)
	}
	prices, err := column(doc, pricePath)
	if err != nil {
		return errDeserializeFailed(filename, err)
	}
	if len(names) != len(tickers) || len(prices) != len(tickers) {
		return errDeserializeFailed(filename, fmt.Errorf("columns have different lengths: %d tickers, %d names, %d prices", len(tickers), len(names), len(prices)))
	}

	count := 0
	err = modifyMap(cfg.StockMapPath(), func(stocks map[string]Stock) error {
		for i, jticker := range tickers {
			ticker, ok := jticker.(string)
			if !ok || ticker == "" {
				return errDeserializeFailed(filename, fmt.Errorf("ticker %v is not a string", jticker))
			}
			name, _ := names[i].(string)
			value, err := decimalValue(prices[i])
			if err != nil {
				return err
			}

			stock, ok := stocks[ticker]
			if !ok {
				stock = NewStock(ticker)
			}
			stock.CompanyName = name
			stock.Value = value
			stocks[ticker] = stock
			count++
		}
		return nil
	})
	if err != nil {
		return err
	}
	a.notify("Imported %d stocks from %s.", count, filename)
	return nil
}

// column extracts one column of values from the document.
func column(doc any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list or a single
	// answer: normalize to a list.
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}

// decimalValue converts a quote price to a decimal. Some exports carry the
// price as a number, some as a string with a comma decimal separator.
func decimalValue(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		s := strings.ReplaceAll(strings.ReplaceAll(v, ",", "."), " ", "")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, errParse(v, "decimal", err)
		}
		return d, nil
	default:
		return decimal.Decimal{}, errParse(fmt.Sprint(jval), "decimal", nil)
	}
}
