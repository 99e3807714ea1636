package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

type noteForm struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

func (f noteForm) draft() entity.NoteDraft {
	return entity.NoteDraft{Title: f.Title, Content: f.Content}
}

func (h *Handler) list(c *gin.Context) {
	notes, err := h.notes.ListNotes(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "notes_list.html", gin.H{"Notes": notes})
}

func (h *Handler) detail(c *gin.Context) {
	note, ok := h.loadNote(c)
	if !ok {
		return
	}

	h.render(c, http.StatusOK, "notes_detail.html", gin.H{"Note": note})
}

func (h *Handler) createForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, nil, noteForm{}, nil)
}

func (h *Handler) create(c *gin.Context) {
	var form noteForm
	if err := c.ShouldBind(&form); err != nil {
		h.badRequest(c, err)
		return
	}

	note, err := h.notes.CreateNote(c.Request.Context(), form.draft())
	if err != nil {
		if fields, ok := validationFields(err); ok {
			h.renderForm(c, http.StatusUnprocessableEntity, nil, form, fields)
			return
		}
		h.fail(c, err)
		return
	}

	slogx.Debug(c.Request.Context(), "note created from form", slogx.NoteId(note.ID))
	c.Redirect(http.StatusFound, h.notesPath)
}

func (h *Handler) editForm(c *gin.Context) {
	note, ok := h.loadNote(c)
	if !ok {
		return
	}

	h.renderForm(c, http.StatusOK, &note, noteForm{Title: note.Title, Content: note.Content}, nil)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := h.noteID(c)
	if !ok {
		return
	}

	var form noteForm
	if err := c.ShouldBind(&form); err != nil {
		h.badRequest(c, err)
		return
	}

	if _, err := h.notes.UpdateNote(c.Request.Context(), id, form.draft()); err != nil {
		if fields, ok := validationFields(err); ok {
			h.renderForm(c, http.StatusUnprocessableEntity, &entity.Note{ID: id}, form, fields)
			return
		}
		h.fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, h.notesPath)
}

func (h *Handler) confirmDelete(c *gin.Context) {
	note, ok := h.loadNote(c)
	if !ok {
		return
	}

	h.render(c, http.StatusOK, "notes_delete.html", gin.H{"Note": note})
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := h.noteID(c)
	if !ok {
		return
	}

	if err := h.notes.DeleteNote(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, h.notesPath)
}

// renderForm renders the create form when note is nil and the edit form
// otherwise.
func (h *Handler) renderForm(c *gin.Context, status int, note *entity.Note, form noteForm, fields map[string]string) {
	h.render(c, status, "notes_form.html", gin.H{
		"Note":   note,
		"Form":   form,
		"Errors": fields,
	})
}

func (h *Handler) loadNote(c *gin.Context) (entity.Note, bool) {
	id, ok := h.noteID(c)
	if !ok {
		return entity.Note{}, false
	}

	note, err := h.notes.GetNote(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return entity.Note{}, false
	}

	return note, true
}

func (h *Handler) noteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.fail(c, entity.ErrNoteNotFound)
		return 0, false
	}

	return id, true
}

func validationFields(err error) (map[string]string, bool) {
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		return nil, false
	}

	return verr.Fields, true
}
