package entity

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultNoteTitle = "Untitled"
	MaxTitleLength   = 256
)

type Note struct {
	ID         string
	OwnerID    string
	Title      string
	Content    string
	CategoryID *string
	IsPinned   bool
	IsArchived bool
	Revision   int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

type NotePage struct {
	Items     []Note
	Total     int
	Page      int
	PageSize  int
	PageCount int
}

// NoteFlags holds the optional flag changes of a pin/archive mutation. Nil
// fields are left untouched.
type NoteFlags struct {
	IsPinned   *bool
	IsArchived *bool
}

type CreateNoteInput struct {
	Title      *string
	Content    *string
	CategoryID *string
}

type UpdateContentInput struct {
	Content          string
	Title            *string
	ExpectedRevision int64
}

// RevisionResult is returned by a successful content update so the editor
// can continue from the new revision.
type RevisionResult struct {
	ID        string
	Revision  int64
	UpdatedAt time.Time
}

// NormalizeTitle trims the title and checks its length. A nil title resolves
// to DefaultNoteTitle.
func NormalizeTitle(title *string) (string, error) {
	if title == nil {
		return DefaultNoteTitle, nil
	}

	t := strings.TrimSpace(*title)
	switch n := utf8.RuneCountInString(t); {
	case n == 0:
		return "", NewValidationError("title", "must not be empty")
	case n > MaxTitleLength:
		return "", NewValidationError("title", "must be at most 256 characters")
	}

	return t, nil
}
