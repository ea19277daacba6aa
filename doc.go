// Package stocktracker implements a single-user, local-first tracker of
// users, stocks and share holdings.
//
// The core functionalities include:
//   - Command Model: a fixed vocabulary of verbs with short aliases,
//     case-insensitive parsing and a required-argument count per verb.
//   - Store I/O: whole-file JSON snapshots of the user and stock maps, with
//     a transactional read-modify-write primitive.
//   - Session State: a small persisted record tracking whether a user is
//     logged in and who, validated against the user store at login.
//   - Operation Handlers: one handler per verb, composing the stores, the
//     entities and the session to create, edit, delete, list, and buy.
//   - Console Mode: an interactive loop re-using the single-shot dispatch
//     path for each input line.
//
// All data lives as JSON documents in a configuration directory; the files
// are the single source of truth between invocations. This package is the
// foundational logic for the `stt` command-line tool.
package stocktracker
