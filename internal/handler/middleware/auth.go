package middleware

import (
	"net/http"
	"strings"

	"book-courier/internal/domain/user"
	"book-courier/internal/handler/httperr"
	"book-courier/internal/pkg/errs"
	"book-courier/internal/pkg/jwt"
	"book-courier/internal/pkg/logctx"
	"book-courier/internal/usecase"
	"book-courier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errMissingToken  = errs.Mark(errs.New("access token required"), usecase.ErrUnauthorized)
	errNotAuthorized = errs.Classified("role not permitted", errs.ErrForbidden)
)

// AuthMiddleware is the access control gate. Authentication comes from the
// bearer token; authorization reads the caller's stored role.
type AuthMiddleware struct {
	verifier usecase.IdentityVerifier
	users    queries.UserQueries
}

const (
	ctxUserEmailKey = "user_email"
	ctxClaimsKey    = "jwt_claims"
	ctxUserRoleKey  = "user_role"
)

func NewAuthMiddleware(verifier usecase.IdentityVerifier, users queries.UserQueries) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		users:    users,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Unauthorized", nil)
			return
		}

		identity, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logctx.From(c.Request.Context()).Warn("Token validation failed in auth middleware", zap.Error(err))
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
			return
		}

		m.attach(c, identity)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		identity, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		m.attach(c, identity)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.requireRole(user.RoleAdmin)
}

// RequireSeller must run after RequireAuth.
func (m *AuthMiddleware) RequireSeller() gin.HandlerFunc {
	return m.requireRole(user.RoleSeller)
}

func (m *AuthMiddleware) requireRole(want user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetUserEmail(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Unauthorized", nil)
			return
		}

		role, err := m.users.GetRole(c.Request.Context(), email)
		if err != nil && !errs.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to resolve role", gin.H{"error": err.Error()})
			return
		}

		if role != want {
			httperr.AbortWithError(c, http.StatusForbidden, errNotAuthorized, "Forbidden", gin.H{"role": role.String()})
			return
		}

		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

func (m *AuthMiddleware) attach(c *gin.Context, identity *usecase.Identity) {
	c.Set(ctxUserEmailKey, identity.Email)
	c.Set(ctxClaimsKey, identity.Claims)

	logger := logctx.From(c.Request.Context()).With(zap.String("user_email", identity.Email))
	c.Request = c.Request.WithContext(logctx.With(c.Request.Context(), logger))
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

// GetClaims returns the decoded token claims attached by RequireAuth or OptionalAuth.
func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(ctxClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok && claims != nil
}

// GetUserRole is only set on routes guarded by RequireAdmin or RequireSeller.
func GetUserRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}
