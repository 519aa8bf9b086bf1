package v1

import (
	"strings"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"
)

// ErrorResponse is the body of every error answer
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse carries a plain confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// IndexResponse lists the named routes of the service
type IndexResponse struct {
	Service string            `json:"service"`
	Links   map[string]string `json:"links"`
}

// AboutResponse describes the service
type AboutResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// RegisterProgramRequest is the payload of POST /registro_carreras/
type RegisterProgramRequest struct {
	Code        string `json:"code" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,min=3,max=150"`
	Faculty     string `json:"faculty" validate:"omitempty,max=150"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// Validate for validating RegisterProgramRequest struct
func (r *RegisterProgramRequest) Validate() error {
	return validators.Struct(r)
}

func (r *RegisterProgramRequest) toDomain() *catalog.Program {
	return &catalog.Program{
		Code:        r.Code,
		Name:        r.Name,
		Faculty:     r.Faculty,
		Description: r.Description,
	}
}

// ProgramListQuery holds the query string of GET /registro_carreras/
type ProgramListQuery struct {
	Name      string `form:"name"`
	Code      string `form:"code"`
	Faculty   string `form:"faculty"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

func (q *ProgramListQuery) toDomain() *catalog.ProgramQuery {
	query := catalog.NewProgramQuery()
	query.Name = q.Name
	query.Code = strings.ToUpper(strings.TrimSpace(q.Code))
	query.Faculty = q.Faculty
	query.Limit = q.Limit
	query.Offset = q.Offset
	if q.SortBy != "" {
		query.SortBy = q.SortBy
	}
	if q.SortOrder != "" {
		query.SortOrder = q.SortOrder
	}
	return query
}

// ProgramResponse represents a program
type ProgramResponse struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Faculty         string    `json:"faculty,omitempty"`
	Description     string    `json:"description,omitempty"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

func newProgramResponse(p *catalog.Program) ProgramResponse {
	return ProgramResponse{
		ID:              p.ID,
		Code:            p.Code,
		Name:            p.Name,
		Faculty:         p.Faculty,
		Description:     p.Description,
		DateTimeCreated: p.DateTimeCreated,
	}
}

// RegisterSubjectRequest is the payload of POST /registro_asignaturas/
type RegisterSubjectRequest struct {
	Code        string `json:"code" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,min=3,max=150"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Department  string `json:"department" validate:"omitempty,max=150"`
	Credits     int    `json:"credits" validate:"min=1,max=12"`
	ProgramID   string `json:"programId" validate:"required,uuid4"`
	Semester    int    `json:"semester" validate:"min=1,max=12"`
}

// Validate for validating RegisterSubjectRequest struct
func (r *RegisterSubjectRequest) Validate() error {
	return validators.Struct(r)
}

func (r *RegisterSubjectRequest) toDomain() *catalog.Subject {
	return &catalog.Subject{
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		Department:  r.Department,
		Credits:     r.Credits,
		ProgramID:   r.ProgramID,
		Semester:    r.Semester,
	}
}

// SubjectListQuery holds the query string of GET /registro_asignaturas/
type SubjectListQuery struct {
	Name      string `form:"name"`
	Code      string `form:"code"`
	ProgramID string `form:"programId"`
	Semester  int    `form:"semester"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

func (q *SubjectListQuery) toDomain() *catalog.SubjectQuery {
	query := catalog.NewSubjectQuery()
	query.Name = q.Name
	query.Code = strings.ToUpper(strings.TrimSpace(q.Code))
	query.ProgramID = q.ProgramID
	query.Semester = q.Semester
	query.Limit = q.Limit
	query.Offset = q.Offset
	if q.SortBy != "" {
		query.SortBy = q.SortBy
	}
	if q.SortOrder != "" {
		query.SortOrder = q.SortOrder
	}
	return query
}

// SubjectResponse represents a subject
type SubjectResponse struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Department      string    `json:"department,omitempty"`
	Credits         int       `json:"credits"`
	ProgramID       string    `json:"programId"`
	Semester        int       `json:"semester"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

func newSubjectResponse(s *catalog.Subject) SubjectResponse {
	return SubjectResponse{
		ID:              s.ID,
		Code:            s.Code,
		Name:            s.Name,
		Description:     s.Description,
		Department:      s.Department,
		Credits:         s.Credits,
		ProgramID:       s.ProgramID,
		Semester:        s.Semester,
		DateTimeCreated: s.DateTimeCreated,
	}
}

// RegisterInstructorRequest is the payload of POST /registro_docentes/.
// A zero hourly rate is replaced by the configured default.
type RegisterInstructorRequest struct {
	FirstName       string   `json:"firstName" validate:"required,max=100"`
	LastName        string   `json:"lastName" validate:"required,max=100"`
	Email           string   `json:"email" validate:"required,email,max=255"`
	Department      string   `json:"department" validate:"required,max=150"`
	Specialization  string   `json:"specialization" validate:"omitempty,max=150"`
	Bio             string   `json:"bio" validate:"omitempty,max=2000"`
	ExperienceYears int      `json:"experienceYears" validate:"min=0,max=60"`
	HourlyRate      float64  `json:"hourlyRate" validate:"gte=0"`
	SubjectIDs      []string `json:"subjectIds" validate:"dive,uuid4"`
	IsVerified      bool     `json:"isVerified"`
}

// Validate for validating RegisterInstructorRequest struct
func (r *RegisterInstructorRequest) Validate() error {
	return validators.Struct(r)
}

func (r *RegisterInstructorRequest) toDomain() *catalog.Instructor {
	return &catalog.Instructor{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Department:      r.Department,
		Specialization:  r.Specialization,
		Bio:             r.Bio,
		ExperienceYears: r.ExperienceYears,
		HourlyRate:      r.HourlyRate,
		SubjectIDs:      r.SubjectIDs,
		IsVerified:      r.IsVerified,
	}
}

// InstructorListQuery holds the query string of GET /registro_docentes/
type InstructorListQuery struct {
	Name       string `form:"name"`
	Department string `form:"department"`
	SubjectID  string `form:"subjectId"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
	SortBy     string `form:"sortBy"`
	SortOrder  string `form:"sortOrder"`
}

func (q *InstructorListQuery) toDomain() *catalog.InstructorQuery {
	query := catalog.NewInstructorQuery()
	query.Name = q.Name
	query.Department = q.Department
	query.SubjectID = q.SubjectID
	query.Limit = q.Limit
	query.Offset = q.Offset
	if q.SortBy != "" {
		query.SortBy = q.SortBy
	}
	if q.SortOrder != "" {
		query.SortOrder = q.SortOrder
	}
	return query
}

// InstructorResponse represents an instructor. The linked account is not exposed.
type InstructorResponse struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Department      string    `json:"department"`
	Specialization  string    `json:"specialization,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	ExperienceYears int       `json:"experienceYears"`
	HourlyRate      float64   `json:"hourlyRate"`
	SubjectIDs      []string  `json:"subjectIds"`
	IsVerified      bool      `json:"isVerified"`
	HasAccount      bool      `json:"hasAccount"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

func newInstructorResponse(i *catalog.Instructor) InstructorResponse {
	subjectIDs := i.SubjectIDs
	if subjectIDs == nil {
		subjectIDs = []string{}
	}
	return InstructorResponse{
		ID:              i.ID,
		FullName:        i.FullName(),
		Email:           i.Email,
		Department:      i.Department,
		Specialization:  i.Specialization,
		Bio:             i.Bio,
		ExperienceYears: i.ExperienceYears,
		HourlyRate:      i.HourlyRate,
		SubjectIDs:      subjectIDs,
		IsVerified:      i.IsVerified,
		HasAccount:      i.UserID != nil,
		DateTimeCreated: i.DateTimeCreated,
	}
}

// RegisterRequest is the payload of POST /register/
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`

	StudentCode string  `json:"studentCode"`
	ProgramID   *string `json:"programId"`
	Semester    int     `json:"semester"`

	Department      string `json:"department"`
	Specialization  string `json:"specialization"`
	Bio             string `json:"bio"`
	ExperienceYears int    `json:"experienceYears"`
}

func (r *RegisterRequest) toInput() *accounts.RegisterInput {
	return &accounts.RegisterInput{
		Email:           accounts.NormalizeEmail(r.Email),
		Password:        r.Password,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Role:            r.Role,
		StudentCode:     r.StudentCode,
		ProgramID:       r.ProgramID,
		Semester:        r.Semester,
		Department:      r.Department,
		Specialization:  r.Specialization,
		Bio:             r.Bio,
		ExperienceYears: r.ExperienceYears,
	}
}

// LoginRequest is the payload of POST /login/
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validators.Struct(r)
}

// UserResponse represents an account without its credentials
type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Role        string  `json:"role"`
	StudentCode string  `json:"studentCode,omitempty"`
	ProgramID   *string `json:"programId,omitempty"`
	Semester    int     `json:"semester,omitempty"`
}

func newUserResponse(u *accounts.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role,
		StudentCode: u.StudentCode,
		ProgramID:   u.ProgramID,
		Semester:    u.Semester,
	}
}

// SessionResponse is returned by signup and login
type SessionResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// TutoringRequestPayload is the payload of POST /pedir_tutoria/
type TutoringRequestPayload struct {
	InstructorID  string `json:"instructorId"`
	SubjectID     string `json:"subjectId"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
	UrgencyLevel  string `json:"urgencyLevel"`
}

func (p *TutoringRequestPayload) toInput() *tutoring.RequestInput {
	return &tutoring.RequestInput{
		InstructorID:  p.InstructorID,
		SubjectID:     p.SubjectID,
		PreferredDate: p.PreferredDate,
		PreferredTime: p.PreferredTime,
		Message:       p.Message,
		UrgencyLevel:  p.UrgencyLevel,
	}
}

// TutoringRequestResponse represents a tutoring request
type TutoringRequestResponse struct {
	ID              string    `json:"id"`
	StudentID       string    `json:"studentId"`
	InstructorID    string    `json:"instructorId"`
	SubjectID       string    `json:"subjectId"`
	PreferredDate   string    `json:"preferredDate"`
	PreferredTime   string    `json:"preferredTime"`
	Message         string    `json:"message,omitempty"`
	UrgencyLevel    string    `json:"urgencyLevel"`
	Status          string    `json:"status"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

func newTutoringRequestResponse(r *tutoring.Request) TutoringRequestResponse {
	return TutoringRequestResponse{
		ID:              r.ID,
		StudentID:       r.StudentID,
		InstructorID:    r.InstructorID,
		SubjectID:       r.SubjectID,
		PreferredDate:   r.PreferredDate,
		PreferredTime:   r.PreferredTime,
		Message:         r.Message,
		UrgencyLevel:    r.UrgencyLevel,
		Status:          r.Status,
		DateTimeCreated: r.DateTimeCreated,
		ExpiresAt:       r.ExpiresAt,
	}
}

// AcceptTutoringPayload is the payload of POST /aceptar_tutoria/
type AcceptTutoringPayload struct {
	RequestID       string  `json:"requestId"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ScheduledDate   string  `json:"scheduledDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	LocationType    string  `json:"locationType"`
	LocationDetails string  `json:"locationDetails"`
	Price           float64 `json:"price"`
}

func (p *AcceptTutoringPayload) toInput() *tutoring.AcceptInput {
	return &tutoring.AcceptInput{
		RequestID:       p.RequestID,
		Title:           p.Title,
		Description:     p.Description,
		ScheduledDate:   p.ScheduledDate,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		DurationMinutes: p.DurationMinutes,
		LocationType:    p.LocationType,
		LocationDetails: p.LocationDetails,
		Price:           p.Price,
	}
}

// RequestIDPayload is the payload of POST /rechazar_tutoria/
type RequestIDPayload struct {
	RequestID string `json:"requestId" validate:"required,uuid4"`
}

// Validate for validating RequestIDPayload struct
func (p *RequestIDPayload) Validate() error {
	return validators.Struct(p)
}

// TutoringSessionResponse represents a scheduled session
type TutoringSessionResponse struct {
	ID              string    `json:"id"`
	RequestID       string    `json:"requestId"`
	StudentID       string    `json:"studentId"`
	InstructorID    string    `json:"instructorId"`
	SubjectID       string    `json:"subjectId"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	ScheduledDate   string    `json:"scheduledDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	LocationType    string    `json:"locationType"`
	LocationDetails string    `json:"locationDetails,omitempty"`
	Price           float64   `json:"price"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

func newTutoringSessionResponse(s *tutoring.Session) TutoringSessionResponse {
	return TutoringSessionResponse{
		ID:              s.ID,
		RequestID:       s.RequestID,
		StudentID:       s.StudentID,
		InstructorID:    s.InstructorID,
		SubjectID:       s.SubjectID,
		Title:           s.Title,
		Description:     s.Description,
		ScheduledDate:   s.ScheduledDate,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		Status:          s.Status,
		LocationType:    s.LocationType,
		LocationDetails: s.LocationDetails,
		Price:           s.Price,
		DateTimeCreated: s.DateTimeCreated,
	}
}

// MarkReadPayload is the payload of POST /notificaciones/
type MarkReadPayload struct {
	NotificationID string `json:"notificationId" validate:"required,uuid4"`
}

// Validate for validating MarkReadPayload struct
func (p *MarkReadPayload) Validate() error {
	return validators.Struct(p)
}

// NotificationResponse represents a notification
type NotificationResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Message         string     `json:"message"`
	Type            string     `json:"type"`
	IsRead          bool       `json:"isRead"`
	ReadAt          *time.Time `json:"readAt,omitempty"`
	DateTimeCreated time.Time  `json:"dateTimeCreated"`
}

func newNotificationResponse(n *notifications.Notification) NotificationResponse {
	return NotificationResponse{
		ID:              n.ID,
		Title:           n.Title,
		Message:         n.Message,
		Type:            n.Type,
		IsRead:          n.IsRead,
		ReadAt:          n.ReadAt,
		DateTimeCreated: n.DateTimeCreated,
	}
}
