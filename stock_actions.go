package stocktracker

import (
	"slices"
	"strings"

	"github.com/etnz/stocktracker/renderer"
)

// createStock inserts a new default-valued stock under the given ticker.
func (a *App) createStock(cfg *Config) error {
	ticker := cfg.Remainder[0]
	err := modifyMap(cfg.StockMapPath(), func(stocks map[string]Stock) error {
		if _, ok := stocks[ticker]; ok {
			return errInsertConflict(ticker)
		}
		stocks[ticker] = NewStock(ticker)
		return nil
	})
	if err != nil {
		return err
	}
	a.notify("Stock %s has been added.", ticker)
	return nil
}

// deleteStock removes a stock after an interactive confirmation. Holdings
// already purchased keep their snapshot of the stock.
func (a *App) deleteStock(cfg *Config) error {
	ticker := cfg.Remainder[0]

	stocks, err := loadMap[Stock](cfg.StockMapPath())
	if err != nil {
		return err
	}
	if _, ok := stocks[ticker]; !ok {
		return errKeyNotFound(ticker)
	}

	ok, err := a.confirm("Are you sure you want to delete stock " + ticker + "?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	err = modifyMap(cfg.StockMapPath(), func(stocks map[string]Stock) error {
		if _, ok := stocks[ticker]; !ok {
			return errRemoveFailed(ticker)
		}
		delete(stocks, ticker)
		return nil
	})
	if err != nil {
		return err
	}
	a.notify("Stock %s has been deleted.", ticker)
	return nil
}

// editStock assigns a new value to one property of a stock. Editing the
// ticker moves the record to its new map key. Units already held by users
// are snapshots and are left untouched.
func (a *App) editStock(cfg *Config) error {
	ticker, property, value := cfg.Remainder[0], cfg.Remainder[1], cfg.Remainder[2]

	stocks, err := loadMap[Stock](cfg.StockMapPath())
	if err != nil {
		return err
	}
	stock, ok := stocks[ticker]
	if !ok {
		return errKeyNotFound(ticker)
	}

	if err := stock.SetProperty(property, value); err != nil {
		return err
	}

	if stock.Ticker != ticker {
		delete(stocks, ticker)
	}
	stocks[stock.Ticker] = stock

	if err := saveMap(cfg.StockMapPath(), stocks); err != nil {
		return err
	}
	a.notify("Stock %s updated.", ticker)
	return nil
}

// listStocks prints all stocks sorted by ticker.
func (a *App) listStocks(cfg *Config) error {
	stocks, err := loadMap[Stock](cfg.StockMapPath())
	if err != nil {
		return err
	}
	if len(stocks) == 0 {
		a.notify("No stocks created.")
		return nil
	}
	rows := make([]renderer.StockRow, 0, len(stocks))
	for ticker, stock := range stocks {
		rows = append(rows, renderer.StockRow{
			Ticker:      ticker,
			CompanyName: stock.CompanyName,
			Value:       renderer.USD(stock.Value),
		})
	}
	slices.SortFunc(rows, func(x, y renderer.StockRow) int {
		return strings.Compare(x.Ticker, y.Ticker)
	})
	a.printMarkdown(renderer.Stocks(rows))
	return nil
}
