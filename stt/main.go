package main

import (
	"fmt"
	"os"

	"github.com/etnz/stocktracker"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// A .env file is optional; the environment wins when both are set.
	_ = godotenv.Load()

	completion()

	cfg, err := stocktracker.NewConfig(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Problem parsing arguments:", err)
		os.Exit(1)
	}

	if err := stocktracker.NewApp().Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Application error:", err)
		os.Exit(1)
	}
}

// completion installs shell completion over the verb vocabulary. It returns
// immediately unless the shell is asking for completions.
func completion() {
	sub := make(map[string]*complete.Command)
	for _, name := range stocktracker.VerbNames() {
		sub[name] = &complete.Command{}
	}
	cmd := &complete.Command{Sub: sub}
	cmd.Complete("stt")
}
