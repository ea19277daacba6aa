package stocktracker

import (
	"slices"
	"strings"

	"github.com/etnz/stocktracker/renderer"
)

// createUser inserts a new default-valued user under the given username.
func (a *App) createUser(cfg *Config) error {
	username := cfg.Remainder[0]
	err := modifyMap(cfg.UserMapPath(), func(users map[string]User) error {
		if _, ok := users[username]; ok {
			return errInsertConflict(username)
		}
		users[username] = NewUser(username)
		return nil
	})
	if err != nil {
		return err
	}
	a.notify("User %s has been added.", username)
	return nil
}

// deleteUser removes a user profile after an interactive confirmation.
func (a *App) deleteUser(cfg *Config) error {
	username := cfg.Remainder[0]

	users, err := loadMap[User](cfg.UserMapPath())
	if err != nil {
		return err
	}
	if _, ok := users[username]; !ok {
		return errKeyNotFound(username)
	}

	ok, err := a.confirm("Are you sure you want to delete user profile " + username + "?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	err = modifyMap(cfg.UserMapPath(), func(users map[string]User) error {
		if _, ok := users[username]; !ok {
			return errRemoveFailed(username)
		}
		delete(users, username)
		return nil
	})
	if err != nil {
		return err
	}
	a.notify("User %s deleted.", username)
	return nil
}

// editUser assigns a new value to one property of a user. Editing the
// username moves the record to its new map key, and follows the session
// state along when the edited user is the one logged in.
func (a *App) editUser(cfg *Config) error {
	username, property, value := cfg.Remainder[0], cfg.Remainder[1], cfg.Remainder[2]

	users, err := loadMap[User](cfg.UserMapPath())
	if err != nil {
		return err
	}
	user, ok := users[username]
	if !ok {
		return errKeyNotFound(username)
	}

	if err := user.SetProperty(property, value); err != nil {
		return err
	}

	renamed := user.Username != username
	if renamed {
		delete(users, username)
	}
	users[user.Username] = user

	if err := saveMap(cfg.UserMapPath(), users); err != nil {
		return err
	}

	if renamed {
		state, err := initState(cfg)
		if err != nil {
			return err
		}
		if current, ok := state.currentUser(); ok && current == username {
			if err := state.setUser(cfg, user.Username); err != nil {
				return err
			}
		}
		a.notify("User %s changed to %s.", username, user.Username)
		return nil
	}
	a.notify("User %s updated.", username)
	return nil
}

// listUsers prints all user profiles sorted by username.
func (a *App) listUsers(cfg *Config) error {
	users, err := loadMap[User](cfg.UserMapPath())
	if err != nil {
		return err
	}
	if len(users) == 0 {
		a.notify("No users created.")
		return nil
	}
	rows := make([]renderer.UserRow, 0, len(users))
	for username, user := range users {
		rows = append(rows, renderer.UserRow{
			Username: username,
			Name:     user.String(),
			Holdings: len(user.Portfolio),
		})
	}
	slices.SortFunc(rows, func(x, y renderer.UserRow) int {
		return strings.Compare(x.Username, y.Username)
	})
	a.printMarkdown(renderer.Users(rows))
	return nil
}
