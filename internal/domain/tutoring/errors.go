package tutoring

import "errors"

var (
	ErrNotFound = errors.New("tutoring request not found")
	// ErrForbidden is returned when the caller is not the instructor a request is addressed to.
	ErrForbidden = errors.New("tutoring request belongs to another instructor")
	// ErrInvalidState is returned when a request is no longer pending.
	ErrInvalidState = errors.New("tutoring request is not pending")
	// ErrExpired is returned when a pending request passed its expiry.
	ErrExpired = errors.New("tutoring request has expired")
	// ErrSubjectNotTaught is returned when the instructor does not tutor the requested subject.
	ErrSubjectNotTaught = errors.New("instructor does not tutor this subject")
)
