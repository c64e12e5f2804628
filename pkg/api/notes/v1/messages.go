package notesv1

import "google.golang.org/genproto/googleapis/type/datetime"

type Note struct {
	Id         string             `json:"id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	CategoryId *string            `json:"categoryId"`
	IsPinned   bool               `json:"isPinned"`
	IsArchived bool               `json:"isArchived"`
	Revision   int64              `json:"revision"`
	CreatedAt  *datetime.DateTime `json:"createdAt,omitempty"`
	UpdatedAt  *datetime.DateTime `json:"updatedAt,omitempty"`
}

type Category struct {
	Id        string             `json:"id"`
	Name      string             `json:"name"`
	Color     string             `json:"color"`
	NoteCount int64              `json:"noteCount"`
	CreatedAt *datetime.DateTime `json:"createdAt,omitempty"`
	UpdatedAt *datetime.DateTime `json:"updatedAt,omitempty"`
}

type Empty struct{}

// ListNotesRequest carries the raw page-view parameters; the server
// normalizes them and never rejects a value.
type ListNotesRequest struct {
	Q               string `json:"q,omitempty"`
	CategoryId      string `json:"categoryId,omitempty"`
	Page            string `json:"page,omitempty"`
	PageSize        string `json:"pageSize,omitempty"`
	IncludeArchived string `json:"includeArchived,omitempty"`
}

type ListNotesResponse struct {
	Items     []*Note `json:"items"`
	Total     int64   `json:"total"`
	Page      int64   `json:"page"`
	PageSize  int64   `json:"pageSize"`
	PageCount int64   `json:"pageCount"`
}

type GetNoteRequest struct {
	NoteId string `json:"noteId"`
}

type GetNoteResponse struct {
	Note *Note `json:"note"`
}

type CreateNoteRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	CategoryId *string `json:"categoryId,omitempty"`
}

type CreateNoteResponse struct {
	Note *Note `json:"note"`
}

type UpdateNoteContentRequest struct {
	NoteId           string  `json:"noteId"`
	Content          string  `json:"content"`
	Title            *string `json:"title,omitempty"`
	ExpectedRevision int64   `json:"expectedRevision"`
}

type UpdateNoteContentResponse struct {
	Id        string             `json:"id"`
	Revision  int64              `json:"revision"`
	UpdatedAt *datetime.DateTime `json:"updatedAt,omitempty"`
}

type TogglePinRequest struct {
	NoteId string `json:"noteId"`
	Pinned bool   `json:"pinned"`
}

type ToggleArchiveRequest struct {
	NoteId   string `json:"noteId"`
	Archived bool   `json:"archived"`
}

type SoftDeleteNoteRequest struct {
	NoteId string `json:"noteId"`
}

// AssignNoteCategoryRequest clears the category when CategoryId is nil.
type AssignNoteCategoryRequest struct {
	NoteId     string  `json:"noteId"`
	CategoryId *string `json:"categoryId"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Items []*Category `json:"items"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type CreateCategoryResponse struct {
	Category *Category `json:"category"`
}

type RenameCategoryRequest struct {
	CategoryId string `json:"categoryId"`
	Name       string `json:"name"`
}

type RenameCategoryResponse struct {
	Category *Category `json:"category"`
}

// DeleteCategoryRequest may name at most one of ReassignTo and Clear.
type DeleteCategoryRequest struct {
	CategoryId string  `json:"categoryId"`
	ReassignTo *string `json:"reassignTo,omitempty"`
	Clear      bool    `json:"clear,omitempty"`
}

type SubscribeToEventsRequest struct{}

type ChangeEvent struct {
	Resource string `json:"resource"`
	Id       string `json:"id"`
	Action   string `json:"action"`
}
