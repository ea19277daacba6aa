package stocktracker

// login activates the session for the given username, after checking it
// against the user store.
func (a *App) login(cfg *Config) error {
	username := cfg.Remainder[0]
	state, err := initState(cfg)
	if err != nil {
		return err
	}
	users, err := loadMap[User](cfg.UserMapPath())
	if err != nil {
		return err
	}
	if err := state.login(cfg, username, users); err != nil {
		return err
	}
	a.notify("Logged in as %s successfully.", username)
	return nil
}

// logout clears the session unconditionally.
func (a *App) logout(cfg *Config) error {
	state, err := initState(cfg)
	if err != nil {
		return err
	}
	if err := state.logout(cfg); err != nil {
		return err
	}
	a.notify("Logged out successfully.")
	return nil
}
