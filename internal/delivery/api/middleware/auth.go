package middleware

import (
	"net/http"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	claimsKey  = "sessionClaims"
	sessionKey = "session"
)

// Session is the authenticated caller, refreshed from the database on every protected request.
type Session struct {
	UserID  uuid.UUID
	Email   string
	Role    entity.Role
	CanSell bool
}

// IsStaff reports whether the caller may use the admin surface.
func (s *Session) IsStaff() bool {
	return s.Role.IsStaff()
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	AuthUC   usecase.AuthUsecase
	Config   *config.Config
}

// AuthMiddleware resolves the session cookie and enforces the authorization tiers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenSvc,
		authUC:   params.AuthUC,
		cfg:      params.Config,
	}
}

// Resolve parses the session token when one is present. Invalid tokens leave the request anonymous.
func (m *AuthMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := tokenFromRequest(c)
		if token == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.Parse(token)
		if err == nil {
			c.Set(claimsKey, claims)
		}

		return next(c)
	}
}

// RequireSession rejects anonymous callers and loads the current account.
// Role and selling permission come from the database so revocations apply immediately.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := GetClaims(c)
		if !ok {
			return response.Unauthorized(c)
		}

		user, err := m.authUC.CurrentUser(c.Request().Context(), claims.UserID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(sessionKey, &Session{
			UserID:  user.ID,
			Email:   user.Email,
			Role:    user.Role,
			CanSell: user.CanSell,
		})

		return next(c)
	}
}

// RequireRole admits only sessions holding one of roles. It must run after RequireSession.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := GetSession(c)
			if !ok {
				return response.Unauthorized(c)
			}
			if !allowed.Contains(session.Role) {
				return response.Forbidden(c)
			}

			return next(c)
		}
	}
}

// SetSessionCookie stores token in the HTTP-only session cookie.
func (m *AuthMiddleware) SetSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(m.cookie(token, expiresAt, int(time.Until(expiresAt).Seconds())))
}

// ClearSessionCookie expires the session cookie.
func (m *AuthMiddleware) ClearSessionCookie(c echo.Context) {
	c.SetCookie(m.cookie("", time.Unix(0, 0), -1))
}

func (m *AuthMiddleware) cookie(value string, expiresAt time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    value,
		Path:     "/",
		Domain:   m.cfg.Auth.CookieDomain,
		Expires:  expiresAt,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// GetClaims returns the parsed token claims, which may be stale. Use GetSession behind RequireSession.
func GetClaims(c echo.Context) (*service.SessionClaims, bool) {
	claims, ok := c.Get(claimsKey).(*service.SessionClaims)

	return claims, ok && claims != nil
}

// GetSession returns the session loaded by RequireSession.
func GetSession(c echo.Context) (*Session, bool) {
	session, ok := c.Get(sessionKey).(*Session)

	return session, ok && session != nil
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	session, ok := GetSession(c)
	if !ok {
		return uuid.Nil, false
	}

	return session.UserID, true
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(constants.AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}
