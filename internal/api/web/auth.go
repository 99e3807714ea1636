package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

type credentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

func (h *Handler) loginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{
		"Next": h.safeNext(c.Query("next")),
	})
}

func (h *Handler) login(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		h.badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	next := h.safeNext(form.Next)

	u, err := h.identity.Authenticate(ctx, entity.Credentials{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		data := gin.H{"Username": form.Username, "Next": next}

		if fields, ok := validationFields(err); ok {
			data["Errors"] = fields
			h.render(c, http.StatusUnprocessableEntity, "login.html", data)
			return
		}
		if errors.Is(err, entity.ErrInvalidCredentials) {
			data["Message"] = "Please enter a correct username and password."
			h.render(c, http.StatusUnauthorized, "login.html", data)
			return
		}

		h.fail(c, err)
		return
	}

	token, err := h.identity.IssueToken(u.ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, int(h.identity.SessionTTL().Seconds()), "/", "", h.cookieSecure, true)

	slogx.Info(ctx, "user logged in", slogx.UserId(u.ID))
	c.Redirect(http.StatusFound, next)
}

func (h *Handler) logout(c *gin.Context) {
	h.clearSession(c)
	c.Redirect(http.StatusFound, h.loginURL)
}

func (h *Handler) clearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.cookieSecure, true)
}

// safeNext keeps redirects on this site.
func (h *Handler) safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") ||
		strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return h.notesPath
	}

	return next
}
