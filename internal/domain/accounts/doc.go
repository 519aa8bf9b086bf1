// Package accounts defines login accounts, their roles, and the contracts
// for registering, authenticating and holding a session.
package accounts
