//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tedsuo/rata"
)

const testCookieName = "tutoria_session"

func newTestRouter(t *testing.T, s *testServices) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	err := SetupRoutes(r, s.services(), Options{
		Logger:     testutil.SetupTestLogger(t),
		CookieName: testCookieName,
	})
	require.NoError(t, err)
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func withBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRoutes_NamesAndPathsAreUnique(t *testing.T) {
	names := map[string]bool{}
	paths := map[string]bool{}

	for _, route := range Routes {
		assert.False(t, names[route.Name], "duplicate name %s", route.Name)
		assert.False(t, paths[route.Path], "duplicate path %s", route.Path)
		names[route.Name] = true
		paths[route.Path] = true
	}

	assert.Len(t, Routes, 12)
}

func TestRoutes_DeclaredPaths(t *testing.T) {
	expected := map[string]string{
		Index:               "/",
		About:               "/about/",
		RegistroCarreras:    "/registro_carreras/",
		RegistroAsignaturas: "/registro_asignaturas/",
		RegistroDocentes:    "/registro_docentes/",
		Register:            "/register/",
		Login:               "/login/",
		Logout:              "/logout/",
		PedirTutoria:        "/pedir_tutoria/",
		AceptarTutoria:      "/aceptar_tutoria/",
		RechazarTutoria:     "/rechazar_tutoria/",
		Notificaciones:      "/notificaciones/",
	}

	for name, path := range expected {
		t.Run(name, func(t *testing.T) {
			got, err := PathFor(name)
			require.NoError(t, err)
			assert.Equal(t, path, got)
		})
	}
}

func TestPathFor_UnknownName(t *testing.T) {
	_, err := PathFor("missing")
	assert.ErrorIs(t, err, ErrUnknownRoute)
}

func TestSetupRoutes_EveryPathResolvesToItsView(t *testing.T) {
	r := newTestRouter(t, newTestServices())

	registered := map[string][]string{}
	for _, info := range r.Routes() {
		registered[info.Path] = append(registered[info.Path], info.Method)
	}

	for _, route := range Routes {
		methods, ok := registered[route.Path]
		require.True(t, ok, "route %s is not bound", route.Name)
		assert.Contains(t, methods, route.Method, "canonical method of %s is not bound", route.Name)
	}

	assert.Len(t, registered, len(Routes))
}

func TestSetupRoutes_HandlersCarryRouteName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	views := Views{}
	for _, route := range Routes {
		views[route.Name] = View{Get: []gin.HandlerFunc{func(ctx *gin.Context) {
			ctx.String(http.StatusOK, RouteName(ctx))
		}}}
	}
	require.NoError(t, BindRoutes(r, Routes, views, Options{}))

	for _, route := range Routes {
		w := serve(r, httptest.NewRequest(http.MethodGet, route.Path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, route.Name, w.Body.String())
	}
}

func TestBindRoutes_RejectsMismatchedTables(t *testing.T) {
	ok := func(ctx *gin.Context) { ctx.Status(http.StatusOK) }

	tests := []struct {
		name  string
		table rata.Routes
		views Views
	}{
		{
			name:  "route without view",
			table: rata.Routes{{Path: "/a/", Method: "GET", Name: "a"}},
			views: Views{},
		},
		{
			name:  "route with empty view",
			table: rata.Routes{{Path: "/a/", Method: "GET", Name: "a"}},
			views: Views{"a": {}},
		},
		{
			name:  "view without route",
			table: rata.Routes{{Path: "/a/", Method: "GET", Name: "a"}},
			views: Views{"a": {Get: handlers(ok)}, "b": {Get: handlers(ok)}},
		},
		{
			name: "duplicate name",
			table: rata.Routes{
				{Path: "/a/", Method: "GET", Name: "a"},
				{Path: "/b/", Method: "GET", Name: "a"},
			},
			views: Views{"a": {Get: handlers(ok)}},
		},
		{
			name: "duplicate path",
			table: rata.Routes{
				{Path: "/a/", Method: "GET", Name: "a"},
				{Path: "/a/", Method: "POST", Name: "b"},
			},
			views: Views{"a": {Get: handlers(ok)}, "b": {Post: handlers(ok)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BindRoutes(gin.New(), tt.table, tt.views, Options{})
			assert.ErrorIs(t, err, ErrRouteTable)
		})
	}
}

func TestSetupRoutes_RequiresLoggerAndCookie(t *testing.T) {
	s := newTestServices()

	err := SetupRoutes(gin.New(), s.services(), Options{CookieName: testCookieName})
	assert.ErrorIs(t, err, ErrRouteTable)

	err = SetupRoutes(gin.New(), s.services(), Options{Logger: testutil.SetupTestLogger(t)})
	assert.ErrorIs(t, err, ErrRouteTable)
}

func TestSetupRoutes_UnmatchedPath(t *testing.T) {
	r := newTestRouter(t, newTestServices())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/no_existe/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body ErrorResponse
	testutil.DecodeJSON(t, w, &body)
	assert.Equal(t, "page not found", body.Message)
}

func TestSetupRoutes_MethodNotAllowed(t *testing.T) {
	r := newTestRouter(t, newTestServices())

	w := serve(r, httptest.NewRequest(http.MethodPost, "/about/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestIndex_LinksEveryNamedRoute(t *testing.T) {
	r := newTestRouter(t, newTestServices())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body IndexResponse
	testutil.DecodeJSON(t, w, &body)
	assert.Equal(t, ServiceName, body.Service)
	assert.Len(t, body.Links, len(Routes))
	assert.Equal(t, "/pedir_tutoria/", body.Links[PedirTutoria])
}

func TestAbout(t *testing.T) {
	r := newTestRouter(t, newTestServices())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/about/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body AboutResponse
	testutil.DecodeJSON(t, w, &body)
	assert.Equal(t, Version, body.Version)
}

func TestSetupRoutes_RoleGuards(t *testing.T) {
	s := newTestServices()
	s.withSession("student-token", "2a4a3a4c-8d4e-4b7a-9d53-3c2a0b6f1e01", accounts.RoleStudent)
	s.withSession("teacher-token", "6f1c2b9a-2d3e-4c5f-8a7b-9e0d1c2b3a04", accounts.RoleTeacher)
	r := newTestRouter(t, s)

	tests := []struct {
		method string
		path   string
		token  string
		want   int
	}{
		{http.MethodPost, "/registro_carreras/", "", http.StatusUnauthorized},
		{http.MethodPost, "/registro_carreras/", "student-token", http.StatusForbidden},
		{http.MethodPost, "/registro_asignaturas/", "teacher-token", http.StatusForbidden},
		{http.MethodPost, "/registro_docentes/", "student-token", http.StatusForbidden},
		{http.MethodGet, "/pedir_tutoria/", "", http.StatusUnauthorized},
		{http.MethodPost, "/pedir_tutoria/", "teacher-token", http.StatusForbidden},
		{http.MethodGet, "/aceptar_tutoria/", "student-token", http.StatusForbidden},
		{http.MethodPost, "/aceptar_tutoria/", "student-token", http.StatusForbidden},
		{http.MethodPost, "/rechazar_tutoria/", "student-token", http.StatusForbidden},
		{http.MethodGet, "/notificaciones/", "", http.StatusUnauthorized},
		{http.MethodPost, "/logout/", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s %q", tt.method, tt.path, tt.token), func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				withBearer(req, tt.token)
			}
			w := serve(r, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}

	s.tutoring.AssertNotCalled(t, "Request", mock.Anything, mock.Anything, mock.Anything)
	s.tutoring.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything, mock.Anything)
	s.programs.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestSetupRoutes_SessionFromCookie(t *testing.T) {
	s := newTestServices()
	claims := s.withSession("cookie-token", "2a4a3a4c-8d4e-4b7a-9d53-3c2a0b6f1e01", accounts.RoleStudent)
	s.notifications.On("ListForUser", mock.Anything, claims.UserID).Return([]*notifications.Notification{}, nil)
	r := newTestRouter(t, s)

	req := httptest.NewRequest(http.MethodGet, "/notificaciones/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "cookie-token"})
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	s.notifications.AssertExpectations(t)
}

func TestSetupRoutes_RejectsInvalidAndRevokedTokens(t *testing.T) {
	s := newTestServices()
	s.sessions.On("Parse", mock.Anything, "forged").Return(nil, fmt.Errorf("%w: signature is invalid", accounts.ErrInvalidToken))
	s.sessions.On("Parse", mock.Anything, "revoked").Return(nil, accounts.ErrRevokedToken)
	r := newTestRouter(t, s)

	for _, token := range []string{"forged", "revoked"} {
		t.Run(token, func(t *testing.T) {
			w := serve(r, withBearer(httptest.NewRequest(http.MethodGet, "/notificaciones/", nil), token))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestSetupRoutes_RejectsTokensOfDisabledAccounts(t *testing.T) {
	const (
		inactiveID = "9b2e4f6a-1c3d-4e5f-8a9b-0c1d2e3f4a05"
		deletedID  = "3d5f7a9c-2e4b-4c6d-9e8f-1a2b3c4d5e06"
	)
	s := newTestServices()
	s.sessions.On("Parse", mock.Anything, "inactive").
		Return(&accounts.Claims{UserID: inactiveID, Role: accounts.RoleStudent, TokenID: "jti-inactive"}, nil)
	s.sessions.On("Parse", mock.Anything, "deleted").
		Return(&accounts.Claims{UserID: deletedID, Role: accounts.RoleStudent, TokenID: "jti-deleted"}, nil)
	s.accounts.On("GetByID", mock.Anything, inactiveID).
		Return(&accounts.User{ID: inactiveID, Role: accounts.RoleStudent, IsActive: false}, nil)
	s.accounts.On("GetByID", mock.Anything, deletedID).Return(nil, accounts.ErrNotFound)
	r := newTestRouter(t, s)

	tests := []struct {
		token string
		want  int
	}{
		{"inactive", http.StatusForbidden},
		{"deleted", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			w := serve(r, withBearer(httptest.NewRequest(http.MethodGet, "/pedir_tutoria/", nil), tt.token))
			assert.Equal(t, tt.want, w.Code)
		})
	}

	s.tutoring.AssertNotCalled(t, "ListForStudent", mock.Anything, mock.Anything)
}
