// Package rest serves the notebook JSON API over plain HTTP.
package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/evgeniy-krivenko/notebook/internal/ctxtr"
	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/internal/query"
	"github.com/evgeniy-krivenko/notebook/pkg/logger/slogx"
)

type notesUsecase interface {
	ListNotes(ctx context.Context, ownerID string, params query.Params) (entity.NotePage, error)
	GetNote(ctx context.Context, ownerID, noteID string) (entity.Note, error)
	CreateNote(ctx context.Context, ownerID string, in entity.CreateNoteInput) (entity.Note, error)
	UpdateNoteContent(ctx context.Context, ownerID, noteID string, in entity.UpdateContentInput) (entity.RevisionResult, error)
	TogglePin(ctx context.Context, ownerID, noteID string, pin bool) error
	ToggleArchive(ctx context.Context, ownerID, noteID string, archive bool) error
	SoftDeleteNote(ctx context.Context, ownerID, noteID string) error
	AssignNoteCategory(ctx context.Context, ownerID, noteID string, categoryID *string) error
}

type categoriesUsecase interface {
	ListCategories(ctx context.Context, ownerID string) ([]entity.Category, error)
	CreateCategory(ctx context.Context, ownerID, name, color string) (entity.Category, error)
	RenameCategory(ctx context.Context, ownerID, categoryID, name string) (entity.Category, error)
	DeleteCategory(ctx context.Context, ownerID, categoryID string, res entity.DeleteResolution) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=handler_options.gen.go -from-struct=Options
type Options struct {
	notes      notesUsecase      `option:"mandatory" validate:"required"`
	categories categoriesUsecase `option:"mandatory" validate:"required"`

	healthCheck func(context.Context) error
}

type Handler struct {
	Options
	mux *http.ServeMux
}

func New(opts Options) (*Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate rest handler options: %v", err)
	}

	h := &Handler{Options: opts, mux: http.NewServeMux()}

	h.mux.HandleFunc("GET /healthz", h.health)

	h.handle("GET /api/v1/notes", h.listNotes)
	h.handle("POST /api/v1/notes", h.createNote)
	h.handle("GET /api/v1/notes/{id}", h.getNote)
	h.handle("DELETE /api/v1/notes/{id}", h.deleteNote)
	h.handle("PUT /api/v1/notes/{id}/content", h.updateNoteContent)
	h.handle("PUT /api/v1/notes/{id}/pin", h.togglePin)
	h.handle("PUT /api/v1/notes/{id}/archive", h.toggleArchive)
	h.handle("PUT /api/v1/notes/{id}/category", h.assignCategory)

	h.handle("GET /api/v1/categories", h.listCategories)
	h.handle("POST /api/v1/categories", h.createCategory)
	h.handle("PUT /api/v1/categories/{id}", h.renameCategory)
	h.handle("DELETE /api/v1/categories/{id}", h.deleteCategory)

	return h, nil
}

// handle registers an API route that requires a caller identity.
func (h *Handler) handle(pattern string, fn http.HandlerFunc) {
	h.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		if _, err := ctxtr.UserID(r.Context()); err != nil {
			writeError(w, r, entity.ErrUnauthorized)
			return
		}

		fn(w, r)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.healthCheck != nil {
		if err := h.healthCheck(r.Context()); err != nil {
			slogx.Warn(r.Context(), "health check failed", slogx.Err(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
