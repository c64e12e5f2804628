package categories_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/internal/events"
	"github.com/evgeniy-krivenko/notebook/internal/repository/memory"
	"github.com/evgeniy-krivenko/notebook/internal/usecase/categories"
)

const (
	alice = "alice"
	bob   = "bob"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	uc    *categories.Usecase
	store *memory.Store
}

func setup(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{store: memory.New()}

	var seq int
	newID := func() string {
		seq++
		return fmt.Sprintf("c-%d", seq)
	}

	uc, err := categories.New(categories.NewOptions(
		f.store, f.store, f.store, events.NewBus(),
		categories.WithNewID(newID),
	))
	require.NoError(t, err)
	f.uc = uc

	return f
}

func (f *fixture) category(t *testing.T, owner, name string) entity.Category {
	t.Helper()

	c, err := f.uc.CreateCategory(context.Background(), owner, name, "")
	require.NoError(t, err)
	return c
}

func (f *fixture) note(t *testing.T, owner, id string, categoryID *string) {
	t.Helper()

	_, err := f.store.CreateNote(context.Background(), entity.Note{
		ID: id, OwnerID: owner, Title: id, CategoryID: categoryID,
	})
	require.NoError(t, err)
}

func (f *fixture) noteCategory(t *testing.T, owner, id string) *string {
	t.Helper()

	n, err := f.store.GetNote(context.Background(), owner, id)
	require.NoError(t, err)
	return n.CategoryID
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := categories.New(categories.NewOptions(nil, nil, nil, nil))
	require.Error(t, err)
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	c, err := f.uc.CreateCategory(ctx, alice, "  Work ", "")
	require.NoError(t, err)
	assert.Equal(t, "Work", c.Name)
	assert.Equal(t, entity.DefaultColor, c.Color)
	assert.Zero(t, c.NoteCount)

	c, err = f.uc.CreateCategory(ctx, alice, "Home", "teal")
	require.NoError(t, err)
	assert.Equal(t, entity.Color("teal"), c.Color)

	_, err = f.uc.CreateCategory(ctx, alice, "Work", "")
	require.ErrorIs(t, err, entity.ErrDuplicateName)

	_, err = f.uc.CreateCategory(ctx, bob, "Work", "")
	require.NoError(t, err)

	_, err = f.uc.CreateCategory(ctx, alice, "   ", "")
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = f.uc.CreateCategory(ctx, alice, "Misc", "magenta")
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = f.uc.CreateCategory(ctx, "", "Misc", "")
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	work := f.category(t, alice, "Work")
	home := f.category(t, alice, "Home")
	f.category(t, bob, "Bob's")

	f.note(t, alice, "n-1", &work.ID)
	f.note(t, alice, "n-2", &work.ID)
	f.note(t, alice, "n-3", &work.ID)
	require.NoError(t, f.store.SoftDeleteNote(ctx, alice, "n-3"))

	list, err := f.uc.ListCategories(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, home.ID, list[0].ID)
	assert.Zero(t, list[0].NoteCount)
	assert.Equal(t, work.ID, list[1].ID)
	assert.Equal(t, 2, list[1].NoteCount)

	list, err = f.uc.ListCategories(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.uc.ListCategories(ctx, "")
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestRenameCategory(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	work := f.category(t, alice, "Work")
	f.category(t, alice, "Home")

	c, err := f.uc.RenameCategory(ctx, alice, work.ID, " Job ")
	require.NoError(t, err)
	assert.Equal(t, "Job", c.Name)

	_, err = f.uc.RenameCategory(ctx, alice, work.ID, "Job")
	require.NoError(t, err)

	_, err = f.uc.RenameCategory(ctx, alice, work.ID, "Home")
	require.ErrorIs(t, err, entity.ErrDuplicateName)

	_, err = f.uc.RenameCategory(ctx, bob, work.ID, "Mine")
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = f.uc.RenameCategory(ctx, alice, "missing", "Other")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDeleteCategory_NoDependents(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	c := f.category(t, alice, "Empty")
	require.NoError(t, f.uc.DeleteCategory(ctx, alice, c.ID, entity.DeleteResolution{}))

	list, err := f.uc.ListCategories(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = f.uc.DeleteCategory(ctx, alice, c.ID, entity.DeleteResolution{})
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDeleteCategory_NoDependents_IgnoresTarget(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	c := f.category(t, alice, "Empty")
	err := f.uc.DeleteCategory(ctx, alice, c.ID, entity.DeleteResolution{ReassignTo: ptr("missing")})
	require.NoError(t, err)
}

func TestDeleteCategory_InUse(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	c := f.category(t, alice, "Work")
	f.note(t, alice, "n-1", &c.ID)

	err := f.uc.DeleteCategory(ctx, alice, c.ID, entity.DeleteResolution{})
	require.ErrorIs(t, err, entity.ErrCategoryInUse)

	_, err = f.store.GetCategory(ctx, alice, c.ID)
	require.NoError(t, err)
	assert.Equal(t, &c.ID, f.noteCategory(t, alice, "n-1"))
}

func TestDeleteCategory_Clear(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	c := f.category(t, alice, "Work")
	f.note(t, alice, "n-1", &c.ID)
	f.note(t, alice, "n-2", &c.ID)

	require.NoError(t, f.uc.DeleteCategory(ctx, alice, c.ID, entity.DeleteResolution{Clear: true}))

	assert.Nil(t, f.noteCategory(t, alice, "n-1"))
	assert.Nil(t, f.noteCategory(t, alice, "n-2"))

	_, err := f.store.GetCategory(ctx, alice, c.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDeleteCategory_Reassign(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	from := f.category(t, alice, "Old")
	to := f.category(t, alice, "New")
	f.note(t, alice, "n-1", &from.ID)
	f.note(t, alice, "n-2", &from.ID)
	f.note(t, alice, "n-3", nil)

	err := f.uc.DeleteCategory(ctx, alice, from.ID, entity.DeleteResolution{ReassignTo: &to.ID})
	require.NoError(t, err)

	assert.Equal(t, &to.ID, f.noteCategory(t, alice, "n-1"))
	assert.Equal(t, &to.ID, f.noteCategory(t, alice, "n-2"))
	assert.Nil(t, f.noteCategory(t, alice, "n-3"))

	list, err := f.uc.ListCategories(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].NoteCount)
}

func TestDeleteCategory_InvalidTarget(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	c := f.category(t, alice, "Work")
	foreign := f.category(t, bob, "Theirs")
	f.note(t, alice, "n-1", &c.ID)

	for name, target := range map[string]string{
		"self":    c.ID,
		"foreign": foreign.ID,
		"missing": "missing",
	} {
		t.Run(name, func(t *testing.T) {
			err := f.uc.DeleteCategory(ctx, alice, c.ID, entity.DeleteResolution{ReassignTo: ptr(target)})
			require.ErrorIs(t, err, entity.ErrInvalidCategory)

			_, err = f.store.GetCategory(ctx, alice, c.ID)
			require.NoError(t, err)
			assert.Equal(t, &c.ID, f.noteCategory(t, alice, "n-1"))
		})
	}
}

func TestDeleteCategory_BadResolution(t *testing.T) {
	f := setup(t)
	c := f.category(t, alice, "Work")

	err := f.uc.DeleteCategory(context.Background(), alice, c.ID, entity.DeleteResolution{
		ReassignTo: ptr("x"),
		Clear:      true,
	})
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestDeleteCategory_OtherOwner(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	c1 := f.category(t, alice, "One")
	c2 := f.category(t, alice, "Two")
	f.note(t, alice, "n-1", &c1.ID)

	err := f.uc.DeleteCategory(ctx, bob, c1.ID, entity.DeleteResolution{ReassignTo: &c2.ID})
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = f.store.GetCategory(ctx, alice, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, &c1.ID, f.noteCategory(t, alice, "n-1"))

	err = f.uc.DeleteCategory(ctx, alice, c1.ID, entity.DeleteResolution{ReassignTo: &c2.ID})
	require.NoError(t, err)
	assert.Equal(t, &c2.ID, f.noteCategory(t, alice, "n-1"))
}

func TestDeleteCategory_ClearsSoftDeletedReferences(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	c := f.category(t, alice, "Work")
	f.note(t, alice, "n-1", &c.ID)
	require.NoError(t, f.store.SoftDeleteNote(ctx, alice, "n-1"))

	require.NoError(t, f.uc.DeleteCategory(ctx, alice, c.ID, entity.DeleteResolution{}))

	_, err := f.store.GetCategory(ctx, alice, c.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

type failingNotes struct {
	*memory.Store
}

var errBoom = errors.New("boom")

func (f failingNotes) ReassignCategoryNotes(context.Context, string, string, *string) (int64, error) {
	return 0, errBoom
}

func TestDeleteCategory_RollsBackOnReconcileFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	uc, err := categories.New(categories.NewOptions(store, failingNotes{store}, store, events.NewBus()))
	require.NoError(t, err)

	c, err := uc.CreateCategory(ctx, alice, "Work", "")
	require.NoError(t, err)
	_, err = store.CreateNote(ctx, entity.Note{ID: "n-1", OwnerID: alice, CategoryID: &c.ID})
	require.NoError(t, err)

	err = uc.DeleteCategory(ctx, alice, c.ID, entity.DeleteResolution{Clear: true})
	require.ErrorIs(t, err, errBoom)

	_, err = store.GetCategory(ctx, alice, c.ID)
	require.NoError(t, err)
}
