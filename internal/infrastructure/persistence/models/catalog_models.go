package models

import (
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
)

// ProgramModel is the GORM database model for programs
type ProgramModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Code            string    `gorm:"not null;uniqueIndex;type:varchar(20)"`
	Name            string    `gorm:"not null;type:varchar(150)"`
	Faculty         string    `gorm:"type:varchar(150)"`
	Description     string    `gorm:"type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ProgramModel) TableName() string {
	return "programs"
}

// ToDomain converts GORM model to domain entity
func (m *ProgramModel) ToDomain() *catalog.Program {
	return &catalog.Program{
		ID:              m.ID,
		Code:            m.Code,
		Name:            m.Name,
		Faculty:         m.Faculty,
		Description:     m.Description,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProgramModel) FromDomain(p *catalog.Program) {
	m.ID = p.ID
	m.Code = p.Code
	m.Name = p.Name
	m.Faculty = p.Faculty
	m.Description = p.Description
	m.DateTimeCreated = p.DateTimeCreated
}

// SubjectModel is the GORM database model for subjects
type SubjectModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Code            string    `gorm:"not null;uniqueIndex;type:varchar(20)"`
	Name            string    `gorm:"not null;type:varchar(150)"`
	Description     string    `gorm:"type:text"`
	Department      string    `gorm:"type:varchar(150)"`
	Credits         int       `gorm:"not null"`
	ProgramID       string    `gorm:"not null;index;type:uuid"`
	Semester        int       `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}

func (m *SubjectModel) ToDomain() *catalog.Subject {
	return &catalog.Subject{
		ID:              m.ID,
		Code:            m.Code,
		Name:            m.Name,
		Description:     m.Description,
		Department:      m.Department,
		Credits:         m.Credits,
		ProgramID:       m.ProgramID,
		Semester:        m.Semester,
		DateTimeCreated: m.DateTimeCreated,
	}
}

func (m *SubjectModel) FromDomain(s *catalog.Subject) {
	m.ID = s.ID
	m.Code = s.Code
	m.Name = s.Name
	m.Description = s.Description
	m.Department = s.Department
	m.Credits = s.Credits
	m.ProgramID = s.ProgramID
	m.Semester = s.Semester
	m.DateTimeCreated = s.DateTimeCreated
}

// InstructorModel is the GORM database model for instructors. The subjects
// an instructor tutors live in instructor_subjects.
type InstructorModel struct {
	ID              string                   `gorm:"primaryKey;type:uuid"`
	FirstName       string                   `gorm:"not null;type:varchar(100)"`
	LastName        string                   `gorm:"not null;type:varchar(100)"`
	Email           string                   `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Department      string                   `gorm:"not null;type:varchar(150)"`
	Specialization  string                   `gorm:"type:varchar(150)"`
	Bio             string                   `gorm:"type:text"`
	ExperienceYears int                      `gorm:"not null;default:0"`
	HourlyRate      float64                  `gorm:"not null;default:0"`
	UserID          *string                  `gorm:"uniqueIndex;type:uuid"`
	IsVerified      bool                     `gorm:"not null;default:false"`
	DateTimeCreated time.Time                `gorm:"not null"`
	Subjects        []InstructorSubjectModel `gorm:"foreignKey:InstructorID;constraint:OnDelete:CASCADE"`
}

func (InstructorModel) TableName() string {
	return "instructors"
}

func (m *InstructorModel) ToDomain() *catalog.Instructor {
	var subjectIDs []string
	for _, s := range m.Subjects {
		subjectIDs = append(subjectIDs, s.SubjectID)
	}
	return &catalog.Instructor{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Email:           m.Email,
		Department:      m.Department,
		Specialization:  m.Specialization,
		Bio:             m.Bio,
		ExperienceYears: m.ExperienceYears,
		HourlyRate:      m.HourlyRate,
		SubjectIDs:      subjectIDs,
		UserID:          m.UserID,
		IsVerified:      m.IsVerified,
		DateTimeCreated: m.DateTimeCreated,
	}
}

func (m *InstructorModel) FromDomain(i *catalog.Instructor) {
	m.ID = i.ID
	m.FirstName = i.FirstName
	m.LastName = i.LastName
	m.Email = i.Email
	m.Department = i.Department
	m.Specialization = i.Specialization
	m.Bio = i.Bio
	m.ExperienceYears = i.ExperienceYears
	m.HourlyRate = i.HourlyRate
	m.UserID = i.UserID
	m.IsVerified = i.IsVerified
	m.DateTimeCreated = i.DateTimeCreated
	m.Subjects = make([]InstructorSubjectModel, 0, len(i.SubjectIDs))
	for _, subjectID := range i.SubjectIDs {
		m.Subjects = append(m.Subjects, InstructorSubjectModel{InstructorID: i.ID, SubjectID: subjectID})
	}
}

// InstructorSubjectModel links an instructor to a subject they tutor
type InstructorSubjectModel struct {
	InstructorID string `gorm:"primaryKey;type:uuid"`
	SubjectID    string `gorm:"primaryKey;type:uuid;index"`
}

func (InstructorSubjectModel) TableName() string {
	return "instructor_subjects"
}
