package catalog

import (
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"
)

// Sort orders accepted by every catalog query
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ProgramQuery filters program listings. Name matches as a substring.
type ProgramQuery struct {
	Name      string
	Code      string
	Faculty   string
	Limit     int    `validate:"min=0,max=100"`
	Offset    int    `validate:"min=0"`
	SortBy    string `validate:"omitempty,oneof=name code date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewProgramQuery creates a ProgramQuery with default values
func NewProgramQuery() *ProgramQuery {
	return &ProgramQuery{SortBy: "name", SortOrder: SortAsc}
}

// Validate for validating ProgramQuery struct
func (q *ProgramQuery) Validate() error {
	return validators.Struct(q)
}

// SubjectQuery filters subject listings.
type SubjectQuery struct {
	Name      string
	Code      string
	ProgramID string `validate:"omitempty,uuid4"`
	Semester  int    `validate:"min=0,max=12"`
	Limit     int    `validate:"min=0,max=100"`
	Offset    int    `validate:"min=0"`
	SortBy    string `validate:"omitempty,oneof=name code semester date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewSubjectQuery creates a SubjectQuery with default values
func NewSubjectQuery() *SubjectQuery {
	return &SubjectQuery{SortBy: "name", SortOrder: SortAsc}
}

// Validate for validating SubjectQuery struct
func (q *SubjectQuery) Validate() error {
	return validators.Struct(q)
}

// InstructorQuery filters instructor listings. Name matches first or last name.
type InstructorQuery struct {
	Name       string
	Department string
	SubjectID  string `validate:"omitempty,uuid4"`
	Limit      int    `validate:"min=0,max=100"`
	Offset     int    `validate:"min=0"`
	SortBy     string `validate:"omitempty,oneof=last_name hourly_rate experience_years date_time_created"`
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
}

// NewInstructorQuery creates an InstructorQuery with default values
func NewInstructorQuery() *InstructorQuery {
	return &InstructorQuery{SortBy: "last_name", SortOrder: SortAsc}
}

// Validate for validating InstructorQuery struct
func (q *InstructorQuery) Validate() error {
	return validators.Struct(q)
}
