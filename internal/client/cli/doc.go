// Package cli provides the interactive gophtasks command-line client.
//
// It wires configuration and the HTTP API client into a small REPL. Typical
// flow: check the server, register or log in, then manage tasks.
//
// Commands:
//   - register / login / logout
//   - list, add [text], update <id> [text], delete <id>
//   - status, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or stdin closes. See runREPL for dispatch details.
package cli
