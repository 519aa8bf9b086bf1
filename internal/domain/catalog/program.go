package catalog

import (
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"
)

// Program is an academic program (carrera).
type Program struct {
	ID              string    `validate:"required,uuid4"`
	Code            string    `validate:"required,academic_code"`
	Name            string    `validate:"required,min=3,max=150"`
	Faculty         string    `validate:"omitempty,max=150"`
	Description     string    `validate:"omitempty,max=1000"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Program struct
func (p *Program) Validate() error {
	return validators.Struct(p)
}
