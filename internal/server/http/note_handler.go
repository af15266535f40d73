package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mzaharov/tenantnotes/internal/common"
	"github.com/mzaharov/tenantnotes/internal/server/models"
)

type createNoteRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required,max=10000"`
}

type updateNoteRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content" binding:"omitempty,min=1,max=10000"`
}

func noteView(n *models.Note) gin.H {
	return gin.H{
		"id":        n.ID,
		"title":     n.Title,
		"content":   n.Content,
		"createdBy": n.CreatedBy,
		"createdAt": n.CreatedAt,
		"updatedAt": n.UpdatedAt,
	}
}

// noteID validates the :id path parameter. A malformed id can never match a
// row, so it is reported as a validation error before touching the store.
func noteID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", common.ErrorValidation
	}
	return id, nil
}

func (s *Server) createNote(c *gin.Context) {
	ac := authContext(c)
	if ac == nil {
		s.fail(c, common.ErrorUnauthorized)
		return
	}

	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, common.ErrorValidation)
		return
	}

	note, err := s.notes.Create(c.Request.Context(), ac, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, common.ErrQuotaExceeded) {
			s.logger.Info(c.Request.Context(), "note creation rejected by quota", "tenant", ac.Tenant.Slug)
		}
		s.fail(c, err)
		return
	}

	respond(c, http.StatusCreated, "Note created successfully", gin.H{"note": noteView(note)})
}

func (s *Server) listNotes(c *gin.Context) {
	ac := authContext(c)
	if ac == nil {
		s.fail(c, common.ErrorUnauthorized)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := s.notes.List(c.Request.Context(), ac.Tenant.ID, page, limit)
	if err != nil {
		s.fail(c, err)
		return
	}

	views := make([]gin.H, 0, len(result.Notes))
	for _, n := range result.Notes {
		views = append(views, noteView(n))
	}

	respond(c, http.StatusOK, "", gin.H{
		"notes": views,
		"pagination": gin.H{
			"currentPage": result.Page,
			"totalPages":  result.TotalPages(),
			"totalNotes":  result.TotalNotes,
			"hasNextPage": result.Page < result.TotalPages(),
			"hasPrevPage": result.Page > 1,
		},
	})
}

func (s *Server) getNote(c *gin.Context) {
	ac := authContext(c)
	if ac == nil {
		s.fail(c, common.ErrorUnauthorized)
		return
	}

	id, err := noteID(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	note, err := s.notes.Get(c.Request.Context(), ac.Tenant.ID, id)
	if err != nil {
		s.fail(c, err)
		return
	}

	respond(c, http.StatusOK, "", gin.H{"note": noteView(note)})
}

func (s *Server) updateNote(c *gin.Context) {
	ac := authContext(c)
	if ac == nil {
		s.fail(c, common.ErrorUnauthorized)
		return
	}

	id, err := noteID(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, common.ErrorValidation)
		return
	}

	note, err := s.notes.Update(c.Request.Context(), ac.Tenant.ID, id, req.Title, req.Content)
	if err != nil {
		s.fail(c, err)
		return
	}

	respond(c, http.StatusOK, "Note updated successfully", gin.H{"note": noteView(note)})
}

func (s *Server) deleteNote(c *gin.Context) {
	ac := authContext(c)
	if ac == nil {
		s.fail(c, common.ErrorUnauthorized)
		return
	}

	id, err := noteID(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	if err := s.notes.Delete(c.Request.Context(), ac.Tenant.ID, id); err != nil {
		s.fail(c, err)
		return
	}

	respond(c, http.StatusOK, "Note deleted successfully", nil)
}
