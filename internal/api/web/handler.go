// Package web serves the HTML notes pages. Successful create, update and
// delete requests redirect to the notes list.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

//go:embed templates/*.html
var templatesFS embed.FS

type notesUsecase interface {
	ListNotes(ctx context.Context) ([]entity.Note, error)
	GetNote(ctx context.Context, id int64) (entity.Note, error)
	CreateNote(ctx context.Context, draft entity.NoteDraft) (entity.Note, error)
	UpdateNote(ctx context.Context, id int64, draft entity.NoteDraft) (entity.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

type identityProvider interface {
	Authenticate(ctx context.Context, creds entity.Credentials) (entity.User, error)
	IssueToken(userID int64) (string, error)
	CurrentUser(ctx context.Context, token string) (entity.User, error)
	SessionTTL() time.Duration
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=handler_options.gen.go -from-struct=Options
type Options struct {
	notes    notesUsecase     `option:"mandatory" validate:"required"`
	identity identityProvider `option:"mandatory" validate:"required"`

	notesPath    string `default:"/smart/notes" validate:"required,startswith=/"`
	loginURL     string `default:"/login" validate:"required,startswith=/"`
	cookieName   string `default:"notes_session" validate:"required"`
	cookieSecure bool

	logger *slogx.Logger
}

type Handler struct {
	Options
	engine *gin.Engine
}

func New(opts Options) (*Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate web handler options: %v", err)
	}

	if opts.logger == nil {
		opts.logger = slogx.Default()
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"datetime": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %v", err)
	}

	h := &Handler{Options: opts, engine: gin.New()}
	h.engine.SetHTMLTemplate(tmpl)
	h.routes()

	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.engine.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	r := h.engine
	r.Use(slogx.GinMiddleware(h.logger), gin.Recovery(), h.identify)

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, h.notesPath) })

	r.GET(h.loginURL, h.loginForm)
	r.POST(h.loginURL, h.login)
	r.POST("/logout", h.logout)

	notes := r.Group(h.notesPath)
	notes.GET("", h.requireLogin, h.list)
	notes.GET("/new", h.requireLogin, h.createForm)
	notes.POST("/new", h.requireLogin, h.create)
	notes.GET("/:id", h.detail)
	notes.GET("/:id/edit", h.editForm)
	notes.POST("/:id/edit", h.update)
	notes.GET("/:id/delete", h.confirmDelete)
	notes.POST("/:id/delete", h.delete)

	r.NoRoute(func(c *gin.Context) { h.render(c, http.StatusNotFound, "error.html", gin.H{"Message": "Page not found."}) })
}

// render adds the data shared by every page.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	data["NotesPath"] = h.notesPath
	data["LoginURL"] = h.loginURL
	if u, ok := currentUser(c); ok {
		data["User"] = u
	}

	c.HTML(status, name, data)
}
