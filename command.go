package stocktracker

import "strings"

// Command identifies one of the verbs this tool understands. The zero value
// is not a valid command.
type Command int

const (
	// Top-level commands.
	Init Command = iota + 1
	Console
	Exit
	// Session commands.
	Login
	Logout
	// User commands.
	CreateUser
	DeleteUser
	EditUser
	ListUsers
	// Stock commands.
	CreateStock
	DeleteStock
	EditStock
	ListStocks
	// Portfolio commands.
	BuyStock
	ListPortfolio
	// Import command.
	ImportStocks
)

// commandSpec describes one verb: its canonical name, its short aliases, and
// the number of positional arguments it requires after the verb.
type commandSpec struct {
	name    string
	aliases []string
	numArgs int
}

var commandSpecs = map[Command]commandSpec{
	Init:          {"init", []string{"i"}, 0},
	Console:       {"console", []string{"c"}, 0},
	Exit:          {"exit", []string{"e", "q", "quit"}, 0},
	Login:         {"login", []string{"li"}, 1},
	Logout:        {"logout", []string{"lo"}, 0},
	CreateUser:    {"create-user", []string{"cu"}, 1},
	DeleteUser:    {"delete-user", []string{"du"}, 1},
	EditUser:      {"edit-user", []string{"eu"}, 3},
	ListUsers:     {"list-users", []string{"lu"}, 0},
	CreateStock:   {"create-stock", []string{"cs"}, 1},
	DeleteStock:   {"delete-stock", []string{"ds"}, 1},
	EditStock:     {"edit-stock", []string{"es"}, 3},
	ListStocks:    {"list-stocks", []string{"ls"}, 0},
	BuyStock:      {"buy-stock", []string{"bs"}, 2},
	ListPortfolio: {"list-portfolio", []string{"lp"}, 0},
	ImportStocks:  {"import-stocks", []string{"is"}, 1},
}

// commandIndex maps every lowercase name and alias to its command.
var commandIndex = func() map[string]Command {
	index := make(map[string]Command, 3*len(commandSpecs))
	for c, spec := range commandSpecs {
		index[spec.name] = c
		for _, a := range spec.aliases {
			index[a] = c
		}
	}
	return index
}()

// ParseCommand matches a raw token, case-insensitively, against the verb
// table. Unknown tokens fail with a CommandInvalid error.
func ParseCommand(token string) (Command, error) {
	c, ok := commandIndex[strings.ToLower(token)]
	if !ok {
		return 0, errCommandInvalid(token)
	}
	return c, nil
}

// NumArgs returns the number of positional arguments the command requires.
func (c Command) NumArgs() int { return commandSpecs[c].numArgs }

// String returns the canonical lowercase name of the command.
func (c Command) String() string { return commandSpecs[c].name }

// VerbNames returns every canonical name and alias, used for shell
// completion.
func VerbNames() []string {
	names := make([]string, 0, len(commandIndex))
	for name := range commandIndex {
		names = append(names, name)
	}
	return names
}
