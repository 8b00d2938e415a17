// Package api is the console's transport to the user authority.
//
// # Overview
//
// The package provides:
//  1. The Client contract covering every remote operation the console uses:
//     session probe, list, create, update, delete, login, signup and logout.
//  2. HTTPClient, the net/http implementation of the JSON-over-HTTP routes
//     (/test, /getAllUsers, /add-user, /user/{id}, /users/{id}, /login,
//     /signin, /logout).
//  3. Credentials, the explicit holder of the session cookie. Every
//     credentialed call reads cookies from it and every response stores
//     returned cookies back into it; nothing is kept in process globals.
//
// # Error Handling
//
// Non-2xx responses and transport failures are decoded exactly once, in this
// package, into *Error. Each Error carries a Kind, the HTTP status (0 when no
// response arrived) and the server's "message" text. Callers branch with
// errors.Is against ErrNetwork, ErrConflict, ErrInvalidInput, ErrUnauthorized
// and ErrServer, or with errors.As to read the message.
package api
