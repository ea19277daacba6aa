package stocktracker

import (
	"fmt"
	"strings"
)

// User is one user profile and all of its data, including the portfolio of
// stock holdings keyed by ticker.
type User struct {
	// Username is the unique identifier, and also the user map key.
	Username      string `json:"username"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	MiddleInitial string `json:"middle_initial"`
	// Portfolio maps each held ticker to its stock unit. Nil until the
	// first purchase.
	Portfolio map[string]*StockUnit `json:"portfolio,omitempty"`
}

// NewUser returns a default-valued user for the given username.
func NewUser(username string) User {
	return User{
		Username:      username,
		FirstName:     "first_name",
		LastName:      "last_name",
		MiddleInitial: "middle_initial",
	}
}

func (u User) String() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// SetProperty resolves a property name, case-insensitively, to one of the
// user's editable fields and assigns the given value to it. Unknown property
// names fail with InvalidInput.
func (u *User) SetProperty(property, value string) error {
	switch strings.ToLower(property) {
	case "un", "username":
		u.Username = value
	case "fn", "first-name":
		u.FirstName = value
	case "ln", "last-name":
		u.LastName = value
	case "mi", "middle-initial":
		u.MiddleInitial = value
	default:
		return errInvalidInput()
	}
	return nil
}

// Buy adds quantity shares of stock to the portfolio. The first purchase of
// a ticker inserts a new unit with a snapshot of the stock; later purchases
// accumulate onto the existing unit. A zero quantity is rejected with
// InvalidInput.
func (u *User) Buy(stock Stock, quantity uint64) error {
	if quantity == 0 {
		return errInvalidInput()
	}
	if u.Portfolio == nil {
		u.Portfolio = make(map[string]*StockUnit)
	}
	if unit, ok := u.Portfolio[stock.Ticker]; ok {
		return unit.Add(quantity)
	}
	u.Portfolio[stock.Ticker] = &StockUnit{Stock: stock, Quantity: quantity}
	return nil
}
