package v1

import (
	"net/http"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CookieOptions names the session cookie
type CookieOptions struct {
	Name   string
	Secure bool
}

// AuthHandler handles signup, login and logout
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type authHandler struct {
	accountService accounts.AccountService
	sessions       accounts.SessionManager
	cookie         CookieOptions
	logger         logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accountService accounts.AccountService, sessions accounts.SessionManager, cookie CookieOptions, logger logger.Logger) AuthHandler {
	return &authHandler{
		accountService: accountService,
		sessions:       sessions,
		cookie:         cookie,
		logger:         logger,
	}
}

// Register handles the POST request to sign up a student or teacher
// @Summary Sign up
// @Description Creates a student or teacher account and starts a session. Teachers get an instructor profile.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body RegisterRequest true "Account"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /register/ [post]
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid signup data: %v", err)
		return
	}

	user, err := handler.accountService.Register(ctx.Request.Context(), request.toInput())
	if err != nil {
		respondError(ctx, handler.logger, "failed to register user", err)
		return
	}

	handler.startSession(ctx, http.StatusCreated, user)
}

// Login handles the POST request to log in
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /login/ [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid credentials data: %v", err)
		return
	}

	request.Email = accounts.NormalizeEmail(request.Email)
	if err := request.Validate(); err != nil {
		badRequest(ctx, "%v", err)
		return
	}

	user, err := handler.accountService.Authenticate(ctx.Request.Context(), request.Email, request.Password)
	if err != nil {
		respondError(ctx, handler.logger, "login failed", err)
		return
	}

	handler.startSession(ctx, http.StatusOK, user)
}

// Logout revokes the current session token and clears the cookie
func (handler *authHandler) Logout(ctx *gin.Context) {
	claims := sessionClaims(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return
	}

	if err := handler.sessions.Revoke(ctx.Request.Context(), claims); err != nil {
		respondError(ctx, handler.logger, "failed to log out", err)
		return
	}

	handler.setCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

func (handler *authHandler) startSession(ctx *gin.Context, status int, user *accounts.User) {
	session, err := handler.sessions.Issue(user)
	if err != nil {
		respondError(ctx, handler.logger, "failed to start session", err)
		return
	}

	handler.setCookie(ctx, session.Token, int(time.Until(session.ExpiresAt).Seconds()))
	ctx.JSON(status, SessionResponse{
		User:      newUserResponse(user),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

func (handler *authHandler) setCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(handler.cookie.Name, value, maxAge, "/", "", handler.cookie.Secure, true)
}
