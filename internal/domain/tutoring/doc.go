// Package tutoring defines tutoring requests (pedir tutoría), the sessions
// created when an instructor accepts one (aceptar tutoría), and the
// request lifecycle pending -> accepted | rejected | expired.
package tutoring
