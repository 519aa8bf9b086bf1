//go:build unit
// +build unit

package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgram_Validate(t *testing.T) {
	valid := func() Program {
		return Program{
			ID:              uuid.NewString(),
			Code:            "ING-SW",
			Name:            "Ingeniería de Software",
			Faculty:         "Ciencias de la Vida y Tecnologías",
			DateTimeCreated: time.Now(),
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Program)
		shouldErr bool
	}{
		{"valid", func(*Program) {}, false},
		{"missing id", func(p *Program) { p.ID = "" }, true},
		{"lower-case code", func(p *Program) { p.Code = "ing-sw" }, true},
		{"name too short", func(p *Program) { p.Name = "IS" }, true},
		{"zero creation time", func(p *Program) { p.DateTimeCreated = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)
			if tt.shouldErr {
				require.Error(t, p.Validate())
			} else {
				require.NoError(t, p.Validate())
			}
		})
	}
}

func TestSubject_Validate(t *testing.T) {
	s := Subject{
		ID:              uuid.NewString(),
		Code:            "MAT101",
		Name:            "Cálculo Diferencial",
		Credits:         4,
		ProgramID:       uuid.NewString(),
		Semester:        1,
		DateTimeCreated: time.Now(),
	}
	require.NoError(t, s.Validate())

	s.Credits = 0
	require.Error(t, s.Validate())

	s.Credits = 4
	s.Semester = 13
	require.Error(t, s.Validate())

	s.Semester = 2
	s.ProgramID = "not-a-uuid"
	require.Error(t, s.Validate())
}

func TestInstructor_ValidateAndHelpers(t *testing.T) {
	userID := uuid.NewString()
	subjectID := uuid.NewString()
	i := Instructor{
		ID:              uuid.NewString(),
		FirstName:       "María",
		LastName:        "Zambrano",
		Email:           "maria.zambrano@uleam.edu.ec",
		Department:      "Matemáticas",
		ExperienceYears: 8,
		HourlyRate:      25,
		SubjectIDs:      []string{subjectID},
		UserID:          &userID,
		DateTimeCreated: time.Now(),
	}
	require.NoError(t, i.Validate())

	assert.Equal(t, "María Zambrano", i.FullName())
	assert.True(t, i.Teaches(subjectID))
	assert.False(t, i.Teaches(uuid.NewString()))
	assert.True(t, i.IsOwnedBy(userID))
	assert.False(t, i.IsOwnedBy(uuid.NewString()))

	i.SubjectIDs = nil
	assert.True(t, i.Teaches(uuid.NewString()), "instructor without subjects tutors anything")

	i.SubjectIDs = []string{"bogus"}
	require.Error(t, i.Validate())

	i.SubjectIDs = nil
	i.Email = "not-an-email"
	require.Error(t, i.Validate())

	i.Email = "maria.zambrano@uleam.edu.ec"
	i.HourlyRate = -1
	require.Error(t, i.Validate())

	i.HourlyRate = 10
	i.UserID = nil
	assert.False(t, i.IsOwnedBy(userID))
}

func TestQueries_Validate(t *testing.T) {
	require.NoError(t, NewProgramQuery().Validate())
	require.NoError(t, NewSubjectQuery().Validate())
	require.NoError(t, NewInstructorQuery().Validate())

	q := NewProgramQuery()
	q.SortBy = "name; DROP TABLE programs"
	require.Error(t, q.Validate())

	sq := NewSubjectQuery()
	sq.SortOrder = "sideways"
	require.Error(t, sq.Validate())

	iq := NewInstructorQuery()
	iq.Limit = 1000
	require.Error(t, iq.Validate())
}
