package stocktracker

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// App holds the console streams for one run of the tool. Handlers read
// interactive confirmations from In and write notifications to Out, so tests
// can drive them with buffers.
type App struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	reader *bufio.Reader
}

// NewApp returns an App wired to the standard streams.
func NewApp() *App {
	return &App{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
}

// Run dispatches the bound command to its handler. Exit is only meaningful
// inside console mode and is rejected here.
func (a *App) Run(cfg *Config) error {
	switch cfg.Command {
	case Init:
		return a.initStores(cfg)
	case Console:
		return a.console(cfg)
	case Exit:
		return errInvalidInput()
	case Login:
		return a.login(cfg)
	case Logout:
		return a.logout(cfg)
	case CreateUser:
		return a.createUser(cfg)
	case DeleteUser:
		return a.deleteUser(cfg)
	case EditUser:
		return a.editUser(cfg)
	case ListUsers:
		return a.listUsers(cfg)
	case CreateStock:
		return a.createStock(cfg)
	case DeleteStock:
		return a.deleteStock(cfg)
	case EditStock:
		return a.editStock(cfg)
	case ListStocks:
		return a.listStocks(cfg)
	case BuyStock:
		return a.buyStock(cfg)
	case ListPortfolio:
		return a.listPortfolio(cfg)
	case ImportStocks:
		return a.importStocks(cfg)
	}
	return errCommandInvalid(cfg.Command.String())
}

// initStores resets both stores to empty maps and logs any user out, so no
// impossible user stays logged in.
func (a *App) initStores(cfg *Config) error {
	if err := saveMap(cfg.UserMapPath(), map[string]User{}); err != nil {
		return err
	}
	if err := saveMap(cfg.StockMapPath(), map[string]Stock{}); err != nil {
		return err
	}
	state, err := initState(cfg)
	if err != nil {
		return err
	}
	if err := state.logout(cfg); err != nil {
		return err
	}
	a.notify("All user/stock data reset/initialized.")
	return nil
}

// notify prints a small notification message. Centralized so the procedure
// can change in one place.
func (a *App) notify(format string, args ...any) {
	fmt.Fprintf(a.Out, format+"\n", args...)
}

// renderMarkdown is a test seam: tests replace it to assert on the raw
// markdown instead of the terminal-styled output.
var renderMarkdown = func(md string) string {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		return md
	}
	return out
}

// printMarkdown displays a markdown report on the terminal.
func (a *App) printMarkdown(md string) {
	fmt.Fprint(a.Out, renderMarkdown(md))
}

// confirm prints a yes/no prompt and reads one line from In. It returns true
// on y/yes, false on n/no/q/quit, and InvalidInput on anything else,
// case-insensitively.
func (a *App) confirm(prompt string) (bool, error) {
	fmt.Fprintf(a.Out, "%s [y/n] ", prompt)
	line, err := a.readLine()
	if err != nil {
		return false, errInvalidInput()
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "n", "no", "q", "quit":
		return false, nil
	default:
		return false, errInvalidInput()
	}
}

func newReader(r io.Reader) *bufio.Reader { return bufio.NewReader(r) }
