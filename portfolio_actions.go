package stocktracker

import (
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/stocktracker/renderer"
)

// buyStock adds purchased shares to the logged-in user's portfolio. The
// first purchase of a ticker snapshots the stock; later purchases accumulate
// onto the existing unit.
func (a *App) buyStock(cfg *Config) error {
	state, err := initState(cfg)
	if err != nil {
		return err
	}
	username, ok := state.currentUser()
	if !ok {
		return errNoActiveUser()
	}

	ticker := cfg.Remainder[0]
	quantity, err := strconv.ParseUint(cfg.Remainder[1], 10, 64)
	if err != nil {
		return errParse(cfg.Remainder[1], "unsigned integer", err)
	}

	stocks, err := loadMap[Stock](cfg.StockMapPath())
	if err != nil {
		return err
	}
	stock, ok := stocks[ticker]
	if !ok {
		return errKeyNotFound(ticker)
	}

	err = modifyMap(cfg.UserMapPath(), func(users map[string]User) error {
		user, ok := users[username]
		if !ok {
			return errKeyNotFound(username)
		}
		if err := user.Buy(stock, quantity); err != nil {
			return err
		}
		users[username] = user
		return nil
	})
	if err != nil {
		return err
	}
	a.notify("%d shares of stock %s purchased by %s.", quantity, ticker, username)
	return nil
}

// listPortfolio shows the logged-in user's holdings.
func (a *App) listPortfolio(cfg *Config) error {
	state, err := initState(cfg)
	if err != nil {
		return err
	}
	username, ok := state.currentUser()
	if !ok {
		return errNoActiveUser()
	}

	users, err := loadMap[User](cfg.UserMapPath())
	if err != nil {
		return err
	}
	user, ok := users[username]
	if !ok {
		return errKeyNotFound(username)
	}

	if len(user.Portfolio) == 0 {
		a.notify("No holdings.")
		return nil
	}

	rows := make([]renderer.HoldingRow, 0, len(user.Portfolio))
	for ticker, unit := range user.Portfolio {
		rows = append(rows, renderer.HoldingRow{
			Ticker:    ticker,
			Quantity:  unit.Quantity,
			UnitValue: renderer.USD(unit.Stock.Value),
		})
	}
	slices.SortFunc(rows, func(x, y renderer.HoldingRow) int {
		return strings.Compare(x.Ticker, y.Ticker)
	})
	a.printMarkdown(renderer.Portfolio(username, rows))
	return nil
}
