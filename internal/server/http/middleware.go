package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mzaharov/tenantnotes/internal/common"
	"github.com/mzaharov/tenantnotes/internal/server/authz"
	"github.com/mzaharov/tenantnotes/internal/server/models"
)

// authContextKey is where the resolved authz.Context lives inside the gin
// context for the duration of one request.
const authContextKey = "authContext"

// bearerToken extracts the credential from "Authorization: Bearer <token>".
// Returns "" when the header is absent or not a Bearer value.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// authenticate resolves the bearer credential into an (identity, tenant)
// context and stores it for downstream guards and handlers. Any failure in
// the chain — missing header, tampered or expired token, vanished identity —
// ends the request with 401.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ac, err := s.identities.Authenticate(c.Request.Context(), bearerToken(c))
		if err != nil {
			s.fail(c, err)
			return
		}
		c.Set(authContextKey, ac)
		c.Next()
	}
}

// authContext returns the context stored by authenticate. Handlers behind the
// middleware can rely on it being present.
func authContext(c *gin.Context) *authz.Context {
	v, ok := c.Get(authContextKey)
	if !ok {
		return nil
	}
	ac, _ := v.(*authz.Context)
	return ac
}

// requireTenant enforces the cross-tenant barrier for every route carrying a
// :slug parameter, regardless of the caller's role.
func (s *Server) requireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		ac := authContext(c)
		if ac == nil {
			s.fail(c, common.ErrorUnauthorized)
			return
		}
		if err := authz.RequireTenant(ac, c.Param("slug")); err != nil {
			s.logger.Warn(c.Request.Context(), "cross-tenant access denied",
				"tenant", ac.Tenant.Slug, "target", c.Param("slug"))
			s.fail(c, err)
			return
		}
		c.Next()
	}
}

// requireAdmin gates a route to admin callers.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ac := authContext(c)
		if ac == nil {
			s.fail(c, common.ErrorUnauthorized)
			return
		}
		if err := authz.RequireRole(ac, models.RoleAdmin); err != nil {
			s.fail(c, err)
			return
		}
		c.Next()
	}
}
