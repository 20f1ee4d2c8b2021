// Package cli is the interactive front end of the MicroBank client: a small
// REPL that dispatches commands to the services and re-derives what the user
// may see from the latest session state on every command.
package cli
