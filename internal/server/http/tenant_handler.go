package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mzaharov/tenantnotes/internal/common"
	"github.com/mzaharov/tenantnotes/internal/server/models"
)

// maxNotesView renders the unlimited sentinel the way the API exposes it.
func maxNotesView(maxNotes int) any {
	if maxNotes == models.MaxNotesUnlimited {
		return "unlimited"
	}
	return maxNotes
}

func tenantView(t *models.Tenant) gin.H {
	return gin.H{
		"id":       t.ID,
		"slug":     t.Slug,
		"name":     t.Name,
		"plan":     t.Plan,
		"maxNotes": maxNotesView(t.MaxNotes),
	}
}

func (s *Server) getTenant(c *gin.Context) {
	ac := authContext(c)
	if ac == nil {
		s.fail(c, common.ErrorUnauthorized)
		return
	}

	info, err := s.tenants.Get(c.Request.Context(), ac.Tenant.ID)
	if err != nil {
		s.fail(c, err)
		return
	}

	view := tenantView(info.Tenant)
	view["currentNotes"] = info.NoteCount
	view["canCreateNotes"] = info.CanCreateNotes

	respond(c, http.StatusOK, "", gin.H{"tenant": view})
}

func (s *Server) upgradeTenant(c *gin.Context) {
	ac := authContext(c)
	if ac == nil {
		s.fail(c, common.ErrorUnauthorized)
		return
	}

	tenant, err := s.tenants.Upgrade(c.Request.Context(), ac.Tenant.ID)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "tenant upgraded", "tenant", tenant.Slug)
	respond(c, http.StatusOK, "Tenant successfully upgraded to Pro plan", gin.H{
		"tenant": tenantView(tenant),
	})
}
