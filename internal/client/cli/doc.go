// Package cli is the interactive console: a REPL that drives the views in
// package views and prints their notices.
//
// Commands:
//
//	login | signup | logout
//	dashboard
//	users | l | list
//	search <text>              (no text clears the search)
//	edit <id> | set <field> <value> | save | cancel [edit]
//	delete <id> | confirm | cancel [delete]
//	add
//	help | exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
