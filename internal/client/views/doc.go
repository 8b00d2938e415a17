// Package views is the console's page logic: what each screen loads on
// mount and what its buttons do. Views return notices and navigation
// requests; drawing them is left to the caller (see package cli).
//
// Protected views (dashboard, user list, add user) probe the session on
// every mount and send the caller to the login view when it is absent.
package views
