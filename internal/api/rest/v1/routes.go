package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/tedsuo/rata"
)

// Route names
const (
	Index               = "index"
	About               = "about"
	RegistroCarreras    = "registro_carreras"
	RegistroAsignaturas = "registro_asignaturas"
	RegistroDocentes    = "registro_docentes"
	Register            = "register"
	Login               = "login"
	Logout              = "logout"
	PedirTutoria        = "pedir_tutoria"
	AceptarTutoria      = "aceptar_tutoria"
	RechazarTutoria     = "rechazar_tutoria"
	Notificaciones      = "notificaciones"
)

// Routes is the named route table. Method is the canonical method of a
// route when its name is reversed into a link.
var Routes = rata.Routes{
	{Path: "/", Method: "GET", Name: Index},
	{Path: "/about/", Method: "GET", Name: About},
	{Path: "/registro_carreras/", Method: "GET", Name: RegistroCarreras},
	{Path: "/registro_asignaturas/", Method: "GET", Name: RegistroAsignaturas},
	{Path: "/registro_docentes/", Method: "GET", Name: RegistroDocentes},
	{Path: "/register/", Method: "POST", Name: Register},
	{Path: "/login/", Method: "POST", Name: Login},
	{Path: "/logout/", Method: "POST", Name: Logout},
	{Path: "/pedir_tutoria/", Method: "POST", Name: PedirTutoria},
	{Path: "/aceptar_tutoria/", Method: "POST", Name: AceptarTutoria},
	{Path: "/rechazar_tutoria/", Method: "POST", Name: RechazarTutoria},
	{Path: "/notificaciones/", Method: "GET", Name: Notificaciones},
}

// MetricsPath serves prometheus metrics outside the named table.
const MetricsPath = "/metrics"

var (
	// ErrUnknownRoute is returned when a route name is not in the table.
	ErrUnknownRoute = errors.New("unknown route")
	// ErrRouteTable is returned when routes and views do not match one to one.
	ErrRouteTable = errors.New("invalid route table")
)

// View groups the handler chains bound to one named route. A chain may
// start with guards and ends with the handler answering the request.
type View struct {
	Get  []gin.HandlerFunc
	Post []gin.HandlerFunc
}

func (v View) empty() bool {
	return len(v.Get) == 0 && len(v.Post) == 0
}

// Views maps route names to their view
type Views map[string]View

// Services holds everything the views call into
type Services struct {
	Programs      catalog.ProgramService
	Subjects      catalog.SubjectService
	Instructors   catalog.InstructorService
	Accounts      accounts.AccountService
	Sessions      accounts.SessionManager
	Tutoring      tutoring.TutoringService
	Notifications notifications.NotificationService
}

// Options configures how the table is bound
type Options struct {
	Logger       logger.Logger
	CookieName   string
	SecureCookie bool
	// Metrics is optional; when set every request is counted and MetricsPath is served.
	Metrics *Metrics
}

// SetupRoutes binds the route table to the views built from services.
func SetupRoutes(r *gin.Engine, services *Services, opts Options) error {
	if opts.Logger == nil {
		return fmt.Errorf("%w: logger is required", ErrRouteTable)
	}
	if opts.CookieName == "" {
		return fmt.Errorf("%w: cookie name is required", ErrRouteTable)
	}
	return BindRoutes(r, Routes, NewViews(services, opts), opts)
}

// BindRoutes registers every route of table with its view. It fails when
// a name or path repeats, a route has no view or a view has no route.
func BindRoutes(r *gin.Engine, table rata.Routes, views Views, opts Options) error {
	if err := checkTable(table, views); err != nil {
		return err
	}

	if opts.Logger != nil {
		r.Use(RequestLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET(MetricsPath, gin.WrapH(opts.Metrics.Handler()))
	}

	for _, route := range table {
		view := views[route.Name]
		if len(view.Get) > 0 {
			r.GET(route.Path, chain(route.Name, view.Get)...)
		}
		if len(view.Post) > 0 {
			r.POST(route.Path, chain(route.Name, view.Post)...)
		}
	}

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, ErrorResponse{Message: "method not allowed"})
	})
	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "page not found"})
	})

	return nil
}

// PathFor reverses a route name into its path.
func PathFor(name string) (string, error) {
	route, ok := Routes.FindRouteByName(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	return route.CreatePath(nil)
}

func chain(name string, handlers []gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(handlers)+1)
	out = append(out, nameRoute(name))
	return append(out, handlers...)
}

func checkTable(table rata.Routes, views Views) error {
	names := make(map[string]struct{}, len(table))
	paths := make(map[string]struct{}, len(table))

	for _, route := range table {
		if _, dup := names[route.Name]; dup {
			return fmt.Errorf("%w: duplicate route name %q", ErrRouteTable, route.Name)
		}
		if _, dup := paths[route.Path]; dup {
			return fmt.Errorf("%w: duplicate path %q", ErrRouteTable, route.Path)
		}
		names[route.Name] = struct{}{}
		paths[route.Path] = struct{}{}

		view, ok := views[route.Name]
		if !ok || view.empty() {
			return fmt.Errorf("%w: route %q has no view", ErrRouteTable, route.Name)
		}
	}

	for name := range views {
		if _, ok := names[name]; !ok {
			return fmt.Errorf("%w: view %q has no route", ErrRouteTable, name)
		}
	}

	return nil
}
