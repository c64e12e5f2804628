package rest

import (
	"net/http"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListCategories(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := listCategoriesResponse{Items: make([]categoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Items = append(resp.Items, toCategoryResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decode(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.categories.CreateCategory(r.Context(), ownerID(r), req.Name, req.Color)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(c))
}

func (h *Handler) renameCategory(w http.ResponseWriter, r *http.Request) {
	var req renameCategoryRequest
	if err := decode(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.categories.RenameCategory(r.Context(), ownerID(r), r.PathValue("id"), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// deleteCategory takes an optional body naming the resolution for notes that
// still use the category.
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	var req deleteCategoryRequest
	if err := decode(r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.categories.DeleteCategory(r.Context(), ownerID(r), r.PathValue("id"), entity.DeleteResolution{
		ReassignTo: req.ReassignTo,
		Clear:      req.Clear,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
