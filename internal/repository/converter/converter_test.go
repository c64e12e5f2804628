package converter

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/internal/repository/rows"
)

func TestConvertNoteToEntity(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	n := ConvertNoteToEntity(rows.Note{
		ID:         "n-1",
		OwnerID:    "u-1",
		Title:      "Plan",
		Content:    `{"type":"doc"}`,
		CategoryID: pgtype.Text{String: "c-1", Valid: true},
		IsPinned:   true,
		Revision:   4,
		CreatedAt:  ConvertTimeToTimestampz(now),
		UpdatedAt:  ConvertTimeToTimestampz(now.Add(time.Minute)),
	})

	require.NotNil(t, n.CategoryID)
	assert.Equal(t, "c-1", *n.CategoryID)
	assert.True(t, n.IsPinned)
	assert.Equal(t, int64(4), n.Revision)
	assert.Equal(t, now.Add(time.Minute), n.UpdatedAt)
	assert.Nil(t, n.DeletedAt)
}

func TestNullables(t *testing.T) {
	assert.Nil(t, ConvertTextToString(pgtype.Text{}))
	assert.False(t, ConvertStringToText(nil).Valid)
	assert.False(t, ConvertTimeToTimestampz(time.Time{}).Valid)

	s := "c-2"
	assert.Equal(t, pgtype.Text{String: "c-2", Valid: true}, ConvertStringToText(&s))
}

func TestConvertCategoriesToEntity(t *testing.T) {
	cs := ConvertCategoriesToEntity([]rows.Category{
		{ID: "c-1", Name: "Work", Color: "blue", NoteCount: 3},
	})

	require.Len(t, cs, 1)
	assert.Equal(t, entity.ColorBlue, cs[0].Color)
	assert.Equal(t, 3, cs[0].NoteCount)
}
