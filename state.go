package stocktracker

import (
	"encoding/json"
	"os"
)

// State is the persisted session: whether a user is logged in and who.
// CurrentUser is set iff LoggedIn is true, and when set it names a key of
// the user map. The check happens at login time only.
type State struct {
	LoggedIn    bool    `json:"logged_in"`
	CurrentUser *string `json:"current_user"`
}

// initState loads the session state from the configuration directory. On
// first use, when no state file exists yet, a logged-out state is created
// and persisted immediately.
func initState(cfg *Config) (*State, error) {
	path := cfg.StatePath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s := &State{}
		if err := s.write(cfg); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, errStateOpen(path, err)
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errDeserializeFailed(path, err)
	}
	return &s, nil
}

// login activates the session for username, which must be a key of users,
// and persists the new state. An unknown username fails with InvalidUser.
func (s *State) login(cfg *Config, username string, users map[string]User) error {
	if _, ok := users[username]; !ok {
		return errInvalidUser(username)
	}
	return s.setUser(cfg, username)
}

// setUser records username as the logged-in user and persists, without
// validating it against the user map. Used when the caller already knows the
// name is valid, such as after a username rename.
func (s *State) setUser(cfg *Config, username string) error {
	s.LoggedIn = true
	s.CurrentUser = &username
	return s.write(cfg)
}

// logout unconditionally clears the session and persists.
func (s *State) logout(cfg *Config) error {
	s.LoggedIn = false
	s.CurrentUser = nil
	return s.write(cfg)
}

// currentUser returns the logged-in username, if any. No I/O.
func (s *State) currentUser() (string, bool) {
	if s.CurrentUser == nil {
		return "", false
	}
	return *s.CurrentUser, true
}

func (s *State) write(cfg *Config) error {
	path := cfg.StatePath()
	data, err := json.Marshal(s)
	if err != nil {
		return errSerializeFailed(path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errStateWrite(path, err)
	}
	return nil
}
