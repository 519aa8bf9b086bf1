package v1

import (
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// NewViews builds the view of every named route.
func NewViews(s *Services, opts Options) Views {
	authenticated := RequireSession(s.Sessions, s.Accounts, opts.CookieName)
	admin := RequireSession(s.Sessions, s.Accounts, opts.CookieName, accounts.RoleAdmin)
	student := RequireSession(s.Sessions, s.Accounts, opts.CookieName, accounts.RoleStudent)
	teacher := RequireSession(s.Sessions, s.Accounts, opts.CookieName, accounts.RoleTeacher)

	pages := NewPageHandler()
	programs := NewProgramHandler(s.Programs, opts.Logger)
	subjects := NewSubjectHandler(s.Subjects, opts.Logger)
	instructors := NewInstructorHandler(s.Instructors, opts.Logger)
	auth := NewAuthHandler(s.Accounts, s.Sessions, CookieOptions{Name: opts.CookieName, Secure: opts.SecureCookie}, opts.Logger)
	tutor := NewTutoringHandler(s.Tutoring, opts.Logger)
	notices := NewNotificationHandler(s.Notifications, opts.Logger)

	return Views{
		Index: {Get: handlers(pages.Index)},
		About: {Get: handlers(pages.About)},
		RegistroCarreras: {
			Get:  handlers(programs.List),
			Post: handlers(admin, programs.Register),
		},
		RegistroAsignaturas: {
			Get:  handlers(subjects.List),
			Post: handlers(admin, subjects.Register),
		},
		RegistroDocentes: {
			Get:  handlers(instructors.List),
			Post: handlers(admin, instructors.Register),
		},
		Register: {Post: handlers(auth.Register)},
		Login:    {Post: handlers(auth.Login)},
		Logout: {
			Get:  handlers(authenticated, auth.Logout),
			Post: handlers(authenticated, auth.Logout),
		},
		PedirTutoria: {
			Get:  handlers(student, tutor.ListOwn),
			Post: handlers(student, tutor.Request),
		},
		AceptarTutoria: {
			Get:  handlers(teacher, tutor.ListPending),
			Post: handlers(teacher, tutor.Accept),
		},
		RechazarTutoria: {Post: handlers(teacher, tutor.Reject)},
		Notificaciones: {
			Get:  handlers(authenticated, notices.List),
			Post: handlers(authenticated, notices.MarkRead),
		},
	}
}

func handlers(h ...gin.HandlerFunc) []gin.HandlerFunc {
	return h
}
