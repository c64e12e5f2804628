package converter

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/internal/repository/rows"
)

func ConvertNoteToEntity(row rows.Note) entity.Note {
	return entity.Note{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		Title:      row.Title,
		Content:    row.Content,
		CategoryID: ConvertTextToString(row.CategoryID),
		IsPinned:   row.IsPinned,
		IsArchived: row.IsArchived,
		Revision:   row.Revision,
		CreatedAt:  ConvertTimestampzToTime(row.CreatedAt),
		UpdatedAt:  ConvertTimestampzToTime(row.UpdatedAt),
		DeletedAt:  ConvertTimestampzToTimePtr(row.DeletedAt),
	}
}

func ConvertNotesToEntity(rs []rows.Note) []entity.Note {
	notes := make([]entity.Note, 0, len(rs))
	for _, r := range rs {
		notes = append(notes, ConvertNoteToEntity(r))
	}

	return notes
}

func ConvertCategoryToEntity(row rows.Category) entity.Category {
	return entity.Category{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      row.Name,
		Color:     entity.Color(row.Color),
		NoteCount: int(row.NoteCount),
		CreatedAt: ConvertTimestampzToTime(row.CreatedAt),
		UpdatedAt: ConvertTimestampzToTime(row.UpdatedAt),
	}
}

func ConvertCategoriesToEntity(rs []rows.Category) []entity.Category {
	categories := make([]entity.Category, 0, len(rs))
	for _, r := range rs {
		categories = append(categories, ConvertCategoryToEntity(r))
	}

	return categories
}

func ConvertRevisionToEntity(row rows.Revision) entity.RevisionResult {
	return entity.RevisionResult{
		ID:        row.ID,
		Revision:  row.Revision,
		UpdatedAt: ConvertTimestampzToTime(row.UpdatedAt),
	}
}

func ConvertTimestampzToTime(t pgtype.Timestamptz) time.Time {
	return t.Time
}

func ConvertTimestampzToTimePtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}

	return &t.Time
}

func ConvertTimeToTimestampz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func ConvertTextToString(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}

	return &t.String
}

func ConvertStringToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{String: *s, Valid: true}
}
