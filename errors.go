package stocktracker

import (
	"errors"
	"fmt"
)

// Kind classifies every failure this tool can report. Each kind declares
// whether the console loop may recover from it, so a new kind cannot be
// added without deciding its severity.
type Kind int

const (
	// Configuration binding.
	NoCommand Kind = iota + 1
	ArgumentsTooFew
	HomeDirectoryNotFound
	DirectoryCreate
	// Command parsing.
	CommandInvalid
	// Store I/O.
	OpenFailed
	WriteFailed
	SerializeFailed
	DeserializeFailed
	// Session state I/O.
	StateOpen
	StateWrite
	// Map transactions.
	InsertConflict
	RemoveFailed
	KeyNotFound
	// Session.
	InvalidUser
	NoActiveUser
	// Input.
	InvalidInput
	ParseError
)

// Recoverable reports whether the console loop should print the error and
// keep going. Only user mistakes qualify; environment failures end the loop.
func (k Kind) Recoverable() bool {
	switch k {
	case ParseError, KeyNotFound, NoActiveUser, InvalidUser:
		return true
	}
	return false
}

// Error is the single error type used across the tool. Detail holds the
// offending path, key, or value as the kind requires.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case NoCommand:
		return "no command string provided"
	case ArgumentsTooFew:
		return fmt.Sprintf("too few arguments provided for %s", e.Detail)
	case HomeDirectoryNotFound:
		return "home directory not found, consider setting " + envConfigDir
	case DirectoryCreate:
		return fmt.Sprintf("cannot create configuration directory %q", e.Detail)
	case CommandInvalid:
		return fmt.Sprintf("command %q not recognized", e.Detail)
	case OpenFailed:
		return fmt.Sprintf("cannot open store file %q", e.Detail)
	case WriteFailed:
		return fmt.Sprintf("cannot write store file %q", e.Detail)
	case SerializeFailed:
		return fmt.Sprintf("cannot serialize store file %q", e.Detail)
	case DeserializeFailed:
		return fmt.Sprintf("cannot deserialize JSON file %q", e.Detail)
	case StateOpen:
		return fmt.Sprintf("cannot open state file %q", e.Detail)
	case StateWrite:
		return fmt.Sprintf("cannot write state file %q", e.Detail)
	case InsertConflict:
		return fmt.Sprintf("key %q is already occupied", e.Detail)
	case RemoveFailed:
		return fmt.Sprintf("cannot remove key %q", e.Detail)
	case KeyNotFound:
		return fmt.Sprintf("key %q not found", e.Detail)
	case InvalidUser:
		return fmt.Sprintf("attempted to login as user %q, but user %q was not found", e.Detail, e.Detail)
	case NoActiveUser:
		return "command attempted without logging in"
	case InvalidInput:
		return "input not recognized"
	case ParseError:
		return fmt.Sprintf("cannot parse %s", e.Detail)
	}
	return "unknown error"
}

func (e *Error) Unwrap() error { return e.Err }

// IsRecoverable reports whether err carries a recoverable kind.
func IsRecoverable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind.Recoverable()
}

// HasKind reports whether err carries the given kind.
func HasKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func errNoCommand() error    { return &Error{Kind: NoCommand} }
func errNoActiveUser() error { return &Error{Kind: NoActiveUser} }
func errInvalidInput() error { return &Error{Kind: InvalidInput} }
func errArgumentsTooFew(c Command) error {
	return &Error{Kind: ArgumentsTooFew, Detail: c.String()}
}
func errHomeDirectoryNotFound(err error) error {
	return &Error{Kind: HomeDirectoryNotFound, Err: err}
}
func errDirectoryCreate(dir string, err error) error {
	return &Error{Kind: DirectoryCreate, Detail: dir, Err: err}
}
func errCommandInvalid(token string) error {
	return &Error{Kind: CommandInvalid, Detail: token}
}
func errOpenFailed(path string, err error) error {
	return &Error{Kind: OpenFailed, Detail: path, Err: err}
}
func errWriteFailed(path string, err error) error {
	return &Error{Kind: WriteFailed, Detail: path, Err: err}
}
func errSerializeFailed(path string, err error) error {
	return &Error{Kind: SerializeFailed, Detail: path, Err: err}
}
func errDeserializeFailed(path string, err error) error {
	return &Error{Kind: DeserializeFailed, Detail: path, Err: err}
}
func errStateOpen(path string, err error) error {
	return &Error{Kind: StateOpen, Detail: path, Err: err}
}
func errStateWrite(path string, err error) error {
	return &Error{Kind: StateWrite, Detail: path, Err: err}
}
func errInsertConflict(key string) error { return &Error{Kind: InsertConflict, Detail: key} }
func errRemoveFailed(key string) error   { return &Error{Kind: RemoveFailed, Detail: key} }
func errKeyNotFound(key string) error    { return &Error{Kind: KeyNotFound, Detail: key} }
func errInvalidUser(username string) error {
	return &Error{Kind: InvalidUser, Detail: username}
}
func errParse(value, want string, err error) error {
	return &Error{Kind: ParseError, Detail: fmt.Sprintf("%q as %s", value, want), Err: err}
}
