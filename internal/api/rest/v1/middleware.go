package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	routeNameKey = "route_name"
	claimsKey    = "session_claims"
)

func nameRoute(name string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(routeNameKey, name)
		ctx.Next()
	}
}

// RouteName returns the name of the route that matched the request, or an
// empty string for unmatched paths.
func RouteName(ctx *gin.Context) string {
	return ctx.GetString(routeNameKey)
}

// RequestLogger logs one line per request on log
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		log.Info("request served",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"route", RouteName(ctx),
			"status", ctx.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// RequireSession rejects requests without a valid session token. The
// token is read from an "Authorization: Bearer" header or the session
// cookie. The account behind the token must still exist and be active.
// When roles are given the session must carry one of them.
func RequireSession(sessions accounts.SessionManager, users accounts.AccountService, cookieName string, roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := sessionToken(ctx, cookieName)
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}

		claims, err := sessions.Parse(ctx.Request.Context(), token)
		if err != nil {
			status := statusFor(err)
			if status == http.StatusInternalServerError {
				ctx.AbortWithStatusJSON(status, ErrorResponse{Message: "failed to verify session"})
				return
			}
			ctx.AbortWithStatusJSON(status, ErrorResponse{Message: err.Error()})
			return
		}

		user, err := users.GetByID(ctx.Request.Context(), claims.UserID)
		switch {
		case errors.Is(err, accounts.ErrNotFound):
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "session user no longer exists"})
			return
		case err != nil:
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to verify session"})
			return
		case !user.IsActive:
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: accounts.ErrInactiveUser.Error()})
			return
		}

		if len(roles) > 0 && !claims.HasRole(roles...) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "insufficient role"})
			return
		}

		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

func sessionToken(ctx *gin.Context, cookieName string) string {
	if header := ctx.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := ctx.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// sessionClaims returns the claims stored by RequireSession
func sessionClaims(ctx *gin.Context) *accounts.Claims {
	value, ok := ctx.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*accounts.Claims)
	return claims
}
