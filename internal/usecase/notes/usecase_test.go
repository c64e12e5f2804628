package notes_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/internal/events"
	"github.com/evgeniy-krivenko/notebook/internal/query"
	"github.com/evgeniy-krivenko/notebook/internal/repository/memory"
	"github.com/evgeniy-krivenko/notebook/internal/usecase/notes"
)

const (
	alice = "alice"
	bob   = "bob"
)

func ptr[T any](v T) *T { return &v }

func setup(t interface{ Fatalf(string, ...any) }) (*notes.Usecase, *memory.Store, *events.Bus) {
	store := memory.New()
	bus := events.NewBus()

	uc, err := notes.New(notes.NewOptions(store, store, store, bus))
	if err != nil {
		t.Fatalf("new usecase: %v", err)
	}

	return uc, store, bus
}

func addCategory(t *testing.T, store *memory.Store, owner, id string) {
	t.Helper()

	_, err := store.CreateCategory(context.Background(), entity.Category{
		ID: id, OwnerID: owner, Name: "cat " + id, Color: entity.DefaultColor,
	})
	require.NoError(t, err)
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := notes.New(notes.NewOptions(nil, nil, nil, nil))
	require.Error(t, err)
}

func TestCreateNote(t *testing.T) {
	ctx := context.Background()
	uc, store, _ := setup(t)
	addCategory(t, store, alice, "c-1")
	addCategory(t, store, bob, "c-bob")

	note, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultNoteTitle, note.Title)
	assert.Equal(t, int64(0), note.Revision)
	assert.False(t, note.IsPinned)
	assert.False(t, note.IsArchived)
	assert.Nil(t, note.CategoryID)

	note, err = uc.CreateNote(ctx, alice, entity.CreateNoteInput{
		Title:      ptr(" Plan "),
		Content:    ptr(`{"type":"doc"}`),
		CategoryID: ptr("c-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Plan", note.Title)
	require.NotNil(t, note.CategoryID)
	assert.Equal(t, "c-1", *note.CategoryID)

	_, err = uc.CreateNote(ctx, alice, entity.CreateNoteInput{CategoryID: ptr("c-bob")})
	require.ErrorIs(t, err, entity.ErrInvalidCategory)

	_, err = uc.CreateNote(ctx, alice, entity.CreateNoteInput{CategoryID: ptr("missing")})
	require.ErrorIs(t, err, entity.ErrInvalidCategory)

	_, err = uc.CreateNote(ctx, alice, entity.CreateNoteInput{Title: ptr(strings.Repeat("t", 257))})
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = uc.CreateNote(ctx, "", entity.CreateNoteInput{})
	require.ErrorIs(t, err, entity.ErrUnauthorized)

	page, err := uc.ListNotes(ctx, alice, query.Params{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestListNotes_Pagination(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)

	for i := range 23 {
		_, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{Title: ptr(fmt.Sprintf("note %02d", i))})
		require.NoError(t, err)
	}
	_, err := uc.CreateNote(ctx, bob, entity.CreateNoteInput{})
	require.NoError(t, err)

	page, err := uc.ListNotes(ctx, alice, query.Params{Page: "5", PageSize: "5"})
	require.NoError(t, err)
	assert.Equal(t, 23, page.Total)
	assert.Equal(t, 5, page.PageCount)
	assert.Equal(t, 5, page.Page)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "note 02", page.Items[0].Title)
	assert.Equal(t, "note 00", page.Items[2].Title)

	page, err = uc.ListNotes(ctx, alice, query.Params{Page: "9", PageSize: "5"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 23, page.Total)

	page, err = uc.ListNotes(ctx, "carol", query.Params{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.PageCount)

	_, err = uc.ListNotes(ctx, "", query.Params{})
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestListNotes_FiltersAndSearch(t *testing.T) {
	ctx := context.Background()
	uc, store, _ := setup(t)
	addCategory(t, store, alice, "work")

	milk, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{Title: ptr("Buy MILK")})
	require.NoError(t, err)
	report, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{
		Title:      ptr("Report"),
		Content:    ptr("quarterly milkshake numbers"),
		CategoryID: ptr("work"),
	})
	require.NoError(t, err)
	old, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{Title: ptr("old milk")})
	require.NoError(t, err)
	require.NoError(t, uc.ToggleArchive(ctx, alice, old.ID, true))

	ids := func(p entity.NotePage) []string {
		var out []string
		for _, n := range p.Items {
			out = append(out, n.ID)
		}
		return out
	}

	page, err := uc.ListNotes(ctx, alice, query.Params{Q: " milk "})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{milk.ID, report.ID}, ids(page))

	page, err = uc.ListNotes(ctx, alice, query.Params{Q: "milk", IncludeArchived: "true"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)

	page, err = uc.ListNotes(ctx, alice, query.Params{CategoryID: "work"})
	require.NoError(t, err)
	assert.Equal(t, []string{report.ID}, ids(page))

	page, err = uc.ListNotes(ctx, alice, query.Params{CategoryID: "all"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	noQuery, err := uc.ListNotes(ctx, alice, query.Params{})
	require.NoError(t, err)
	short, err := uc.ListNotes(ctx, alice, query.Params{Q: "m"})
	require.NoError(t, err)
	assert.Equal(t, ids(noQuery), ids(short))
}

func testListNotes_PinnedFirst_Properties(t *rapid.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)

	pins := rapid.SliceOfN(rapid.Bool(), 1, 15).Draw(t, "pins")
	touch := rapid.SliceOfN(rapid.IntRange(0, len(pins)-1), 0, 10).Draw(t, "touch")

	created := make([]entity.Note, 0, len(pins))
	for range pins {
		n, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{})
		if err != nil {
			t.Fatalf("create note: %v", err)
		}
		created = append(created, n)
	}
	for i, pin := range pins {
		if err := uc.TogglePin(ctx, alice, created[i].ID, pin); err != nil {
			t.Fatalf("toggle pin: %v", err)
		}
	}
	for _, i := range touch {
		n, err := uc.GetNote(ctx, alice, created[i].ID)
		if err != nil {
			t.Fatalf("get note: %v", err)
		}
		if _, err := uc.UpdateNoteContent(ctx, alice, n.ID, entity.UpdateContentInput{
			Content:          "edit",
			ExpectedRevision: n.Revision,
		}); err != nil {
			t.Fatalf("update note: %v", err)
		}
	}

	page, err := uc.ListNotes(ctx, alice, query.Params{PageSize: "100"})
	if err != nil {
		t.Fatalf("list notes: %v", err)
	}
	if len(page.Items) != len(pins) {
		t.Fatalf("listed %d notes, created %d", len(page.Items), len(pins))
	}

	for i := 1; i < len(page.Items); i++ {
		prev, cur := page.Items[i-1], page.Items[i]
		if !prev.IsPinned && cur.IsPinned {
			t.Fatalf("unpinned note %s precedes pinned note %s", prev.ID, cur.ID)
		}
		if prev.IsPinned == cur.IsPinned && prev.UpdatedAt.Before(cur.UpdatedAt) {
			t.Fatalf("note %s (%v) precedes newer %s (%v)", prev.ID, prev.UpdatedAt, cur.ID, cur.UpdatedAt)
		}
	}
}

func TestListNotes_PinnedFirst_Properties(t *testing.T) {
	rapid.Check(t, testListNotes_PinnedFirst_Properties)
}

func TestUpdateNoteContent(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)

	note, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{Title: ptr("draft")})
	require.NoError(t, err)

	res, err := uc.UpdateNoteContent(ctx, alice, note.ID, entity.UpdateContentInput{
		Content:          "v1",
		Title:            ptr("final"),
		ExpectedRevision: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, note.ID, res.ID)
	assert.Equal(t, int64(1), res.Revision)
	assert.True(t, res.UpdatedAt.After(note.UpdatedAt))

	_, err = uc.UpdateNoteContent(ctx, alice, note.ID, entity.UpdateContentInput{Content: "stale", ExpectedRevision: 0})
	require.ErrorIs(t, err, entity.ErrConflict)

	_, err = uc.UpdateNoteContent(ctx, bob, note.ID, entity.UpdateContentInput{Content: "theft", ExpectedRevision: 1})
	require.ErrorIs(t, err, entity.ErrConflict)

	_, err = uc.UpdateNoteContent(ctx, alice, note.ID, entity.UpdateContentInput{Content: "x", ExpectedRevision: -1})
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = uc.UpdateNoteContent(ctx, alice, note.ID, entity.UpdateContentInput{
		Content: "x", Title: ptr(""), ExpectedRevision: 1,
	})
	require.ErrorIs(t, err, entity.ErrValidation)

	got, err := uc.GetNote(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", got.Content)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, int64(1), got.Revision)

	res, err = uc.UpdateNoteContent(ctx, alice, note.ID, entity.UpdateContentInput{Content: "v2", ExpectedRevision: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Revision)

	require.NoError(t, uc.SoftDeleteNote(ctx, alice, note.ID))
	_, err = uc.UpdateNoteContent(ctx, alice, note.ID, entity.UpdateContentInput{Content: "v3", ExpectedRevision: 2})
	require.ErrorIs(t, err, entity.ErrConflict)
}

func TestUpdateNoteContent_FlagsKeepRevision(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)

	note, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{})
	require.NoError(t, err)
	require.NoError(t, uc.TogglePin(ctx, alice, note.ID, true))

	res, err := uc.UpdateNoteContent(ctx, alice, note.ID, entity.UpdateContentInput{Content: "c", ExpectedRevision: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Revision)
}

func TestUpdateNoteContent_Concurrent(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)

	note, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{})
	require.NoError(t, err)

	const writers = 8

	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make(chan error, writers)
	)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := uc.UpdateNoteContent(ctx, alice, note.ID, entity.UpdateContentInput{
				Content:          fmt.Sprintf("writer %d", i),
				ExpectedRevision: 0,
			})
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, entity.ErrConflict)
		conflicts++
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, writers-1, conflicts)

	got, err := uc.GetNote(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Revision)
}

func TestFlags(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)

	note, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{})
	require.NoError(t, err)

	require.NoError(t, uc.TogglePin(ctx, alice, note.ID, true))
	require.NoError(t, uc.ToggleArchive(ctx, alice, note.ID, true))

	got, err := uc.GetNote(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPinned)
	assert.True(t, got.IsArchived)
	assert.True(t, got.UpdatedAt.After(note.UpdatedAt))

	require.ErrorIs(t, uc.TogglePin(ctx, bob, note.ID, false), entity.ErrNotFound)
	require.ErrorIs(t, uc.ToggleArchive(ctx, alice, "missing", false), entity.ErrNotFound)
	require.ErrorIs(t, uc.TogglePin(ctx, "", note.ID, false), entity.ErrUnauthorized)

	require.NoError(t, uc.SoftDeleteNote(ctx, alice, note.ID))
	require.ErrorIs(t, uc.TogglePin(ctx, alice, note.ID, false), entity.ErrNotFound)
}

func TestSoftDeleteNote_NotIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)

	note, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{})
	require.NoError(t, err)

	require.ErrorIs(t, uc.SoftDeleteNote(ctx, bob, note.ID), entity.ErrNotFound)
	require.NoError(t, uc.SoftDeleteNote(ctx, alice, note.ID))
	require.ErrorIs(t, uc.SoftDeleteNote(ctx, alice, note.ID), entity.ErrNotFound)

	page, err := uc.ListNotes(ctx, alice, query.Params{IncludeArchived: "true"})
	require.NoError(t, err)
	assert.Zero(t, page.Total)

	_, err = uc.GetNote(ctx, alice, note.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAssignNoteCategory(t *testing.T) {
	ctx := context.Background()
	uc, store, _ := setup(t)
	addCategory(t, store, alice, "c-1")
	addCategory(t, store, bob, "c-bob")

	note, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{})
	require.NoError(t, err)

	require.NoError(t, uc.AssignNoteCategory(ctx, alice, note.ID, ptr("c-1")))
	got, err := uc.GetNote(ctx, alice, note.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, "c-1", *got.CategoryID)

	require.ErrorIs(t, uc.AssignNoteCategory(ctx, alice, note.ID, ptr("c-bob")), entity.ErrInvalidCategory)
	require.ErrorIs(t, uc.AssignNoteCategory(ctx, bob, note.ID, ptr("c-bob")), entity.ErrNotFound)

	require.NoError(t, uc.AssignNoteCategory(ctx, alice, note.ID, nil))
	got, err = uc.GetNote(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
}

func TestSubscribeToEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	uc, _, _ := setup(t)

	ch, err := uc.SubscribeToEvents(ctx, alice)
	require.NoError(t, err)

	note, err := uc.CreateNote(ctx, alice, entity.CreateNoteInput{})
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, entity.ChangeEvent{
			OwnerID:  alice,
			Resource: entity.ResourceNote,
			ID:       note.ID,
			Action:   entity.ActionCreated,
		}, ev)
	case <-time.After(time.Second):
		t.Fatal("no change event")
	}

	_, err = uc.SubscribeToEvents(ctx, "")
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}
