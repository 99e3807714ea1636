package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/evgeniy-krivenko/smart-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

const userKey = "user"

// identify resolves the session cookie. Requests without a valid session
// continue as anonymous.
func (h *Handler) identify(c *gin.Context) {
	token, err := c.Cookie(h.cookieName)
	if err != nil || token == "" {
		c.Next()
		return
	}

	ctx := c.Request.Context()

	u, err := h.identity.CurrentUser(ctx, token)
	if err != nil {
		if errors.Is(err, entity.ErrUnauthenticated) {
			h.clearSession(c)
			c.Next()
			return
		}

		h.fail(c, err)
		c.Abort()
		return
	}

	ctx = ctxtr.WithUserID(ctx, u.ID)
	ctx = slogx.ContextWith(ctx, slogx.UserId(u.ID))
	c.Request = c.Request.WithContext(ctx)
	c.Set(userKey, u)

	c.Next()
}

// requireLogin sends anonymous requests to the login page.
func (h *Handler) requireLogin(c *gin.Context) {
	if _, ok := currentUser(c); ok {
		c.Next()
		return
	}

	h.redirectToLogin(c)
	c.Abort()
}

func (h *Handler) redirectToLogin(c *gin.Context) {
	q := url.Values{"next": {c.Request.URL.RequestURI()}}
	c.Redirect(http.StatusFound, h.loginURL+"?"+q.Encode())
}

func currentUser(c *gin.Context) (entity.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return entity.User{}, false
	}

	u, ok := v.(entity.User)
	return u, ok
}
