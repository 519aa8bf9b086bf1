// Package session issues and verifies signed session tokens and keeps
// track of tokens revoked on logout, in memory or in Redis.
package session
