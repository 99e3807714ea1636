package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

// fail turns a usecase error into a response. Unknown errors are storage
// faults and end up as 500.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrNoteNotFound):
		h.render(c, http.StatusNotFound, "error.html", gin.H{"Message": "Note not found."})
	case errors.Is(err, entity.ErrUnauthenticated):
		h.redirectToLogin(c)
	default:
		_ = c.Error(err)
		slogx.Error(c.Request.Context(), "handle request", slogx.Err(err))
		h.render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Something went wrong."})
	}
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	slogx.Warn(c.Request.Context(), "bad form", slogx.Err(err))
	h.render(c, http.StatusBadRequest, "error.html", gin.H{"Message": "Bad request."})
}
