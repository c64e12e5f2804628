package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/internal/query"
)

func ptr[T any](v T) *T { return &v }

func seed(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	s := New()

	_, err := s.CreateCategory(ctx, entity.Category{ID: "c-1", OwnerID: "u-1", Name: "Work"})
	require.NoError(t, err)
	_, err = s.CreateCategory(ctx, entity.Category{ID: "c-2", OwnerID: "u-1", Name: "Home"})
	require.NoError(t, err)
	_, err = s.CreateCategory(ctx, entity.Category{ID: "c-3", OwnerID: "u-2", Name: "Work"})
	require.NoError(t, err)

	return s
}

func TestRunInTx_RollsBack(t *testing.T) {
	ctx := context.Background()
	s := seed(t)
	errStop := errors.New("stop")

	err := s.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.CreateNote(ctx, entity.Note{ID: "n-1", OwnerID: "u-1"}); err != nil {
			return err
		}
		if err := s.DeleteCategory(ctx, "u-1", "c-2"); err != nil {
			return err
		}
		return errStop
	})
	require.ErrorIs(t, err, errStop)

	_, err = s.GetNote(ctx, "u-1", "n-1")
	require.ErrorIs(t, err, entity.ErrNotFound)
	_, err = s.GetCategory(ctx, "u-1", "c-2")
	require.NoError(t, err)
}

func TestRunInTx_Nested(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	err := s.RunInTx(ctx, func(ctx context.Context) error {
		return s.RunInTx(ctx, func(ctx context.Context) error {
			_, err := s.CreateNote(ctx, entity.Note{ID: "n-1", OwnerID: "u-1"})
			return err
		})
	})
	require.NoError(t, err)

	_, err = s.GetNote(ctx, "u-1", "n-1")
	require.NoError(t, err)
}

func TestCreateNote_CategoryOwnership(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	_, err := s.CreateNote(ctx, entity.Note{ID: "n-1", OwnerID: "u-1", CategoryID: ptr("c-3")})
	require.ErrorIs(t, err, entity.ErrInvalidCategory)

	n, err := s.CreateNote(ctx, entity.Note{ID: "n-1", OwnerID: "u-1", CategoryID: ptr("c-1"), Revision: 7})
	require.NoError(t, err)
	assert.Zero(t, n.Revision)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)
}

func TestListNotes_Order(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	for _, id := range []string{"n-1", "n-2", "n-3"} {
		_, err := s.CreateNote(ctx, entity.Note{ID: id, OwnerID: "u-1"})
		require.NoError(t, err)
	}
	require.NoError(t, s.UpdateNoteFlags(ctx, "u-1", "n-1", entity.NoteFlags{IsPinned: ptr(true)}))
	_, err := s.UpdateNoteContent(ctx, "u-1", "n-2", "edited", nil, 0)
	require.NoError(t, err)

	spec := query.Normalize("u-1", query.Params{})
	list, err := s.ListNotes(ctx, spec)
	require.NoError(t, err)

	var ids []string
	for _, n := range list {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"n-1", "n-2", "n-3"}, ids)

	total, err := s.CountNotes(ctx, spec)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestListNotes_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	_, err := s.CreateNote(ctx, entity.Note{ID: "n-1", OwnerID: "u-1", CategoryID: ptr("c-1")})
	require.NoError(t, err)

	list, err := s.ListNotes(ctx, query.Normalize("u-1", query.Params{}))
	require.NoError(t, err)
	*list[0].CategoryID = "c-2"

	n, err := s.GetNote(ctx, "u-1", "n-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", *n.CategoryID)
}

func TestReassignCategoryNotes_IncludesDeleted(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	_, err := s.CreateNote(ctx, entity.Note{ID: "n-1", OwnerID: "u-1", CategoryID: ptr("c-1")})
	require.NoError(t, err)
	_, err = s.CreateNote(ctx, entity.Note{ID: "n-2", OwnerID: "u-1", CategoryID: ptr("c-1")})
	require.NoError(t, err)
	require.NoError(t, s.SoftDeleteNote(ctx, "u-1", "n-2"))

	live, err := s.CountCategoryNotes(ctx, "u-1", "c-1")
	require.NoError(t, err)
	assert.Equal(t, 1, live)

	require.ErrorIs(t, s.DeleteCategory(ctx, "u-1", "c-1"), entity.ErrCategoryInUse)

	_, err = s.ReassignCategoryNotes(ctx, "u-1", "c-1", ptr("c-3"))
	require.ErrorIs(t, err, entity.ErrInvalidCategory)

	moved, err := s.ReassignCategoryNotes(ctx, "u-1", "c-1", ptr("c-2"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), moved)

	require.NoError(t, s.DeleteCategory(ctx, "u-1", "c-1"))
}

func TestCategories_NameUniqueness(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	_, err := s.CreateCategory(ctx, entity.Category{ID: "c-4", OwnerID: "u-1", Name: "Work"})
	require.ErrorIs(t, err, entity.ErrDuplicateName)

	_, err = s.CreateCategory(ctx, entity.Category{ID: "c-4", OwnerID: "u-1", Name: "work"})
	require.NoError(t, err)

	_, err = s.RenameCategory(ctx, "u-1", "c-2", "Work")
	require.ErrorIs(t, err, entity.ErrDuplicateName)

	list, err := s.ListCategories(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Home", "Work", "work"}, []string{list[0].Name, list[1].Name, list[2].Name})
}
