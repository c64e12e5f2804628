package rest

import (
	"time"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
)

type noteResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CategoryID *string   `json:"categoryId"`
	IsPinned   bool      `json:"isPinned"`
	IsArchived bool      `json:"isArchived"`
	Revision   int64     `json:"revision"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type notePageResponse struct {
	Items     []noteResponse `json:"items"`
	Total     int            `json:"total"`
	Page      int            `json:"page"`
	PageSize  int            `json:"pageSize"`
	PageCount int            `json:"pageCount"`
}

type revisionResponse struct {
	ID        string    `json:"id"`
	Revision  int64     `json:"revision"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type categoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	NoteCount int       `json:"noteCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type listCategoriesResponse struct {
	Items []categoryResponse `json:"items"`
}

type createNoteRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	CategoryID *string `json:"categoryId"`
}

type updateContentRequest struct {
	Content          *string `json:"content"`
	Title            *string `json:"title"`
	ExpectedRevision *int64  `json:"expectedRevision"`
}

type pinRequest struct {
	Pinned *bool `json:"pinned"`
}

type archiveRequest struct {
	Archived *bool `json:"archived"`
}

type assignCategoryRequest struct {
	CategoryID *string `json:"categoryId"`
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type renameCategoryRequest struct {
	Name string `json:"name"`
}

type deleteCategoryRequest struct {
	ReassignTo *string `json:"reassignTo"`
	Clear      bool    `json:"clear"`
}

func toNoteResponse(n entity.Note) noteResponse {
	return noteResponse{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		CategoryID: n.CategoryID,
		IsPinned:   n.IsPinned,
		IsArchived: n.IsArchived,
		Revision:   n.Revision,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func toNotePageResponse(p entity.NotePage) notePageResponse {
	items := make([]noteResponse, 0, len(p.Items))
	for _, n := range p.Items {
		items = append(items, toNoteResponse(n))
	}

	return notePageResponse{
		Items:     items,
		Total:     p.Total,
		Page:      p.Page,
		PageSize:  p.PageSize,
		PageCount: p.PageCount,
	}
}

func toCategoryResponse(c entity.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Color:     string(c.Color),
		NoteCount: c.NoteCount,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
