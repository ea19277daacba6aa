package stocktracker

import (
	"fmt"
	"io"
	"strings"
)

// console runs an interactive loop reading one command per line and
// dispatching it through the same handler table as a single-shot invocation.
// User mistakes (recoverable errors) are printed and the loop continues;
// environment failures end the loop and propagate.
func (a *App) console(_ *Config) error {
	a.notify("Entering console mode...")

	for {
		fmt.Fprint(a.Out, "> ")
		line, err := a.readLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errInvalidInput()
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		// The binder expects the first argument to be the program name.
		lineCfg, err := NewConfig(append([]string{"console"}, fields...))
		if err != nil {
			a.notify("Command not recognized.")
			continue
		}

		switch lineCfg.Command {
		case Console:
			a.notify("Already in console mode.")
			continue
		case Exit:
			a.notify("Exiting...")
			return nil
		}

		if err := a.Run(lineCfg); err != nil {
			if IsRecoverable(err) {
				fmt.Fprintln(a.Out, err)
				continue
			}
			return err
		}
	}
}

// readLine reads one line from the shared console reader. The confirmation
// prompts and the console loop must use the same buffered reader, otherwise
// one would swallow input meant for the other.
func (a *App) readLine() (string, error) {
	if a.reader == nil {
		a.reader = newReader(a.In)
	}
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
