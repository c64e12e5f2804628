package rest

import (
	"net/http"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/internal/query"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.notes.ListNotes(r.Context(), ownerID(r), query.Params{
		Q:               q.Get("q"),
		CategoryID:      q.Get("categoryId"),
		Page:            q.Get("page"),
		PageSize:        q.Get("pageSize"),
		IncludeArchived: q.Get("includeArchived"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNotePageResponse(page))
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.notes.GetNote(r.Context(), ownerID(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decode(r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.notes.CreateNote(r.Context(), ownerID(r), entity.CreateNoteInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}

func (h *Handler) updateNoteContent(w http.ResponseWriter, r *http.Request) {
	var req updateContentRequest
	if err := decode(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	switch {
	case req.Content == nil:
		writeError(w, r, entity.NewValidationError("content", "is required"))
		return
	case req.ExpectedRevision == nil:
		writeError(w, r, entity.NewValidationError("expectedRevision", "is required"))
		return
	}

	res, err := h.notes.UpdateNoteContent(r.Context(), ownerID(r), r.PathValue("id"), entity.UpdateContentInput{
		Content:          *req.Content,
		Title:            req.Title,
		ExpectedRevision: *req.ExpectedRevision,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, revisionResponse{
		ID:        res.ID,
		Revision:  res.Revision,
		UpdatedAt: res.UpdatedAt,
	})
}

func (h *Handler) togglePin(w http.ResponseWriter, r *http.Request) {
	var req pinRequest
	if err := decode(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Pinned == nil {
		writeError(w, r, entity.NewValidationError("pinned", "is required"))
		return
	}

	if err := h.notes.TogglePin(r.Context(), ownerID(r), r.PathValue("id"), *req.Pinned); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleArchive(w http.ResponseWriter, r *http.Request) {
	var req archiveRequest
	if err := decode(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Archived == nil {
		writeError(w, r, entity.NewValidationError("archived", "is required"))
		return
	}

	if err := h.notes.ToggleArchive(r.Context(), ownerID(r), r.PathValue("id"), *req.Archived); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) assignCategory(w http.ResponseWriter, r *http.Request) {
	var req assignCategoryRequest
	if err := decode(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.notes.AssignNoteCategory(r.Context(), ownerID(r), r.PathValue("id"), req.CategoryID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.SoftDeleteNote(r.Context(), ownerID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
