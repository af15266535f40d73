package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mzaharov/tenantnotes/internal/common"
	"github.com/mzaharov/tenantnotes/internal/server/models"
)

type registerRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	TenantSlug string `json:"tenantSlug" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func identityView(identity *models.Identity, tenant *models.Tenant) gin.H {
	v := gin.H{
		"id":    identity.ID,
		"email": identity.Email,
		"role":  identity.Role,
	}
	if tenant != nil {
		v["tenant"] = gin.H{
			"id":   tenant.ID,
			"slug": tenant.Slug,
			"name": tenant.Name,
			"plan": tenant.Plan,
		}
	}
	return v
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, common.ErrorValidation)
		return
	}
	if !models.ValidSlug(req.TenantSlug) {
		s.fail(c, common.ErrorValidation)
		return
	}

	identity, token, err := s.identities.Register(c.Request.Context(), req.Email, req.Password, req.TenantSlug)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.logger.Info(c.Request.Context(), "registration rejected, email taken")
		}
		s.fail(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "identity registered", "email", identity.Email)
	respond(c, http.StatusCreated, "Register successful", gin.H{
		"token": token,
		"user":  identityView(identity, nil),
	})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, common.ErrorValidation)
		return
	}

	ac, token, err := s.identities.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	respond(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  identityView(ac.Identity, ac.Tenant),
	})
}

func (s *Server) profile(c *gin.Context) {
	ac := authContext(c)
	if ac == nil {
		s.fail(c, common.ErrorUnauthorized)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"user": identityView(ac.Identity, ac.Tenant)})
}
