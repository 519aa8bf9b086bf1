package catalog

import "context"

// ProgramService registers and lists academic programs.
type ProgramService interface {
	// Register assigns an ID and creation time to program and persists it.
	// It returns ErrConflict when the code is already taken.
	Register(ctx context.Context, program *Program) (*Program, error)
	List(ctx context.Context, query *ProgramQuery) ([]*Program, error)
	GetByID(ctx context.Context, programID string) (*Program, error)
}

// SubjectService registers and lists subjects.
type SubjectService interface {
	// Register persists subject after checking that its program exists and its code is free.
	Register(ctx context.Context, subject *Subject) (*Subject, error)
	List(ctx context.Context, query *SubjectQuery) ([]*Subject, error)
	GetByID(ctx context.Context, subjectID string) (*Subject, error)
}

// InstructorService registers and lists instructors.
type InstructorService interface {
	// Register persists instructor after checking that the email is free and
	// every listed subject exists.
	Register(ctx context.Context, instructor *Instructor) (*Instructor, error)
	List(ctx context.Context, query *InstructorQuery) ([]*Instructor, error)
	GetByID(ctx context.Context, instructorID string) (*Instructor, error)
	// GetByUserID returns the profile linked to a login account.
	GetByUserID(ctx context.Context, userID string) (*Instructor, error)
}

// ProgramRepository defines persistence for programs
type ProgramRepository interface {
	Create(ctx context.Context, program *Program) error
	List(ctx context.Context, query *ProgramQuery) ([]*Program, error)
	GetByID(ctx context.Context, programID string) (*Program, error)
	GetByCode(ctx context.Context, code string) (*Program, error)
}

// SubjectRepository defines persistence for subjects
type SubjectRepository interface {
	Create(ctx context.Context, subject *Subject) error
	List(ctx context.Context, query *SubjectQuery) ([]*Subject, error)
	GetByID(ctx context.Context, subjectID string) (*Subject, error)
	GetByCode(ctx context.Context, code string) (*Subject, error)
}

// InstructorRepository defines persistence for instructors
type InstructorRepository interface {
	Create(ctx context.Context, instructor *Instructor) error
	List(ctx context.Context, query *InstructorQuery) ([]*Instructor, error)
	GetByID(ctx context.Context, instructorID string) (*Instructor, error)
	GetByEmail(ctx context.Context, email string) (*Instructor, error)
	GetByUserID(ctx context.Context, userID string) (*Instructor, error)
	UpdateByID(ctx context.Context, instructor *Instructor) error
}
