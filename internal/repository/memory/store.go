// Package memory is an in-process implementation of the note and category
// stores. Every call is serialized; RunInTx holds the lock for the whole
// callback and restores the previous state if it fails.
package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/internal/query"
)

type Store struct {
	mu         sync.Mutex
	notes      map[string]entity.Note
	categories map[string]entity.Category
	last       time.Time
}

func New() *Store {
	return &Store{
		notes:      make(map[string]entity.Note),
		categories: make(map[string]entity.Category),
	}
}

type txKey struct{}

func (s *Store) inTx(ctx context.Context) bool {
	tx, _ := ctx.Value(txKey{}).(*Store)
	return tx == s
}

func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}

	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) RunInTx(ctx context.Context, f func(context.Context) error) error {
	if s.inTx(ctx) {
		return f(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes, categories, last := maps.Clone(s.notes), maps.Clone(s.categories), s.last

	if err := f(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.notes, s.categories, s.last = notes, categories, last
		return err
	}

	return nil
}

// now is strictly increasing so updated_at ordering is total.
func (s *Store) now() time.Time {
	t := time.Now().UTC()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t

	return t
}

func (s *Store) CreateNote(ctx context.Context, note entity.Note) (entity.Note, error) {
	defer s.lock(ctx)()

	if note.CategoryID != nil && !s.ownsCategory(note.OwnerID, *note.CategoryID) {
		return entity.Note{}, entity.ErrInvalidCategory
	}

	now := s.now()
	note.Revision = 0
	note.CreatedAt, note.UpdatedAt, note.DeletedAt = now, now, nil
	note.CategoryID = clone(note.CategoryID)
	s.notes[note.ID] = note

	return cloneNote(note), nil
}

func (s *Store) GetNote(ctx context.Context, ownerID, noteID string) (entity.Note, error) {
	defer s.lock(ctx)()

	n, ok := s.liveNote(ownerID, noteID)
	if !ok {
		return entity.Note{}, entity.ErrNotFound
	}

	return cloneNote(n), nil
}

func (s *Store) ListNotes(ctx context.Context, spec query.Spec) ([]entity.Note, error) {
	defer s.lock(ctx)()

	matched := s.match(spec)
	slices.SortFunc(matched, compareListing)

	if spec.Offset >= uint64(len(matched)) {
		return []entity.Note{}, nil
	}

	end := min(spec.Offset+spec.Limit, uint64(len(matched)))
	page := make([]entity.Note, 0, end-spec.Offset)
	for _, n := range matched[spec.Offset:end] {
		page = append(page, cloneNote(n))
	}

	return page, nil
}

func (s *Store) CountNotes(ctx context.Context, spec query.Spec) (int, error) {
	defer s.lock(ctx)()

	return len(s.match(spec)), nil
}

func (s *Store) UpdateNoteContent(
	ctx context.Context,
	ownerID, noteID string,
	content string,
	title *string,
	expectedRevision int64,
) (entity.RevisionResult, error) {
	defer s.lock(ctx)()

	n, ok := s.liveNote(ownerID, noteID)
	if !ok || n.Revision != expectedRevision {
		return entity.RevisionResult{}, entity.ErrConflict
	}

	n.Content = content
	if title != nil {
		n.Title = *title
	}
	n.Revision++
	n.UpdatedAt = s.now()
	s.notes[n.ID] = n

	return entity.RevisionResult{ID: n.ID, Revision: n.Revision, UpdatedAt: n.UpdatedAt}, nil
}

func (s *Store) UpdateNoteFlags(ctx context.Context, ownerID, noteID string, flags entity.NoteFlags) error {
	defer s.lock(ctx)()

	n, ok := s.liveNote(ownerID, noteID)
	if !ok {
		return entity.ErrNotFound
	}

	if flags.IsPinned != nil {
		n.IsPinned = *flags.IsPinned
	}
	if flags.IsArchived != nil {
		n.IsArchived = *flags.IsArchived
	}
	n.UpdatedAt = s.now()
	s.notes[n.ID] = n

	return nil
}

func (s *Store) SetNoteCategory(ctx context.Context, ownerID, noteID string, categoryID *string) error {
	defer s.lock(ctx)()

	n, ok := s.liveNote(ownerID, noteID)
	if !ok {
		return entity.ErrNotFound
	}
	if categoryID != nil && !s.ownsCategory(ownerID, *categoryID) {
		return entity.ErrInvalidCategory
	}

	n.CategoryID = clone(categoryID)
	n.UpdatedAt = s.now()
	s.notes[n.ID] = n

	return nil
}

func (s *Store) SoftDeleteNote(ctx context.Context, ownerID, noteID string) error {
	defer s.lock(ctx)()

	n, ok := s.liveNote(ownerID, noteID)
	if !ok {
		return entity.ErrNotFound
	}

	now := s.now()
	n.DeletedAt = &now
	n.UpdatedAt = now
	s.notes[n.ID] = n

	return nil
}

func (s *Store) CountCategoryNotes(ctx context.Context, ownerID, categoryID string) (int, error) {
	defer s.lock(ctx)()

	return s.countCategoryNotes(ownerID, categoryID, true), nil
}

func (s *Store) ReassignCategoryNotes(ctx context.Context, ownerID, from string, to *string) (int64, error) {
	defer s.lock(ctx)()

	if to != nil && !s.ownsCategory(ownerID, *to) {
		return 0, entity.ErrInvalidCategory
	}

	var changed int64
	now := s.now()
	for id, n := range s.notes {
		if n.OwnerID != ownerID || n.CategoryID == nil || *n.CategoryID != from {
			continue
		}

		n.CategoryID = clone(to)
		n.UpdatedAt = now
		s.notes[id] = n
		changed++
	}

	return changed, nil
}

func (s *Store) CreateCategory(ctx context.Context, c entity.Category) (entity.Category, error) {
	defer s.lock(ctx)()

	if s.nameTaken(c.OwnerID, c.Name, "") {
		return entity.Category{}, entity.ErrDuplicateName
	}

	now := s.now()
	c.CreatedAt, c.UpdatedAt, c.NoteCount = now, now, 0
	s.categories[c.ID] = c

	return c, nil
}

func (s *Store) GetCategory(ctx context.Context, ownerID, categoryID string) (entity.Category, error) {
	defer s.lock(ctx)()

	c, ok := s.categories[categoryID]
	if !ok || c.OwnerID != ownerID {
		return entity.Category{}, entity.ErrNotFound
	}

	return c, nil
}

// LockCategory is GetCategory: the store is already serialized.
func (s *Store) LockCategory(ctx context.Context, ownerID, categoryID string) (entity.Category, error) {
	return s.GetCategory(ctx, ownerID, categoryID)
}

func (s *Store) ListCategories(ctx context.Context, ownerID string) ([]entity.Category, error) {
	defer s.lock(ctx)()

	result := make([]entity.Category, 0)
	for _, c := range s.categories {
		if c.OwnerID != ownerID {
			continue
		}

		c.NoteCount = s.countCategoryNotes(ownerID, c.ID, true)
		result = append(result, c)
	}

	slices.SortFunc(result, func(a, b entity.Category) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return result, nil
}

func (s *Store) RenameCategory(ctx context.Context, ownerID, categoryID, name string) (entity.Category, error) {
	defer s.lock(ctx)()

	c, ok := s.categories[categoryID]
	if !ok || c.OwnerID != ownerID {
		return entity.Category{}, entity.ErrNotFound
	}
	if s.nameTaken(ownerID, name, categoryID) {
		return entity.Category{}, entity.ErrDuplicateName
	}

	c.Name = name
	c.UpdatedAt = s.now()
	s.categories[c.ID] = c

	return c, nil
}

func (s *Store) DeleteCategory(ctx context.Context, ownerID, categoryID string) error {
	defer s.lock(ctx)()

	c, ok := s.categories[categoryID]
	if !ok || c.OwnerID != ownerID {
		return entity.ErrNotFound
	}
	if s.countCategoryNotes(ownerID, categoryID, false) > 0 {
		return entity.ErrCategoryInUse
	}

	delete(s.categories, categoryID)

	return nil
}

func (s *Store) liveNote(ownerID, noteID string) (entity.Note, bool) {
	n, ok := s.notes[noteID]
	if !ok || n.OwnerID != ownerID || n.DeletedAt != nil {
		return entity.Note{}, false
	}

	return n, true
}

func (s *Store) ownsCategory(ownerID, categoryID string) bool {
	c, ok := s.categories[categoryID]
	return ok && c.OwnerID == ownerID
}

func (s *Store) nameTaken(ownerID, name, exceptID string) bool {
	for _, c := range s.categories {
		if c.OwnerID == ownerID && c.Name == name && c.ID != exceptID {
			return true
		}
	}

	return false
}

func (s *Store) countCategoryNotes(ownerID, categoryID string, liveOnly bool) int {
	var n int
	for _, note := range s.notes {
		if note.OwnerID != ownerID || note.CategoryID == nil || *note.CategoryID != categoryID {
			continue
		}
		if liveOnly && note.DeletedAt != nil {
			continue
		}
		n++
	}

	return n
}

func (s *Store) match(spec query.Spec) []entity.Note {
	search := strings.ToLower(spec.Search)

	var matched []entity.Note
	for _, n := range s.notes {
		switch {
		case n.OwnerID != spec.OwnerID:
			continue
		case spec.ExcludeDeleted && n.DeletedAt != nil:
			continue
		case !spec.IncludeArchived && n.IsArchived:
			continue
		case spec.HasCategory() && (n.CategoryID == nil || *n.CategoryID != spec.CategoryID):
			continue
		case spec.HasSearch() &&
			!strings.Contains(strings.ToLower(n.Title), search) &&
			!strings.Contains(strings.ToLower(n.Content), search):
			continue
		}

		matched = append(matched, n)
	}

	return matched
}

func compareListing(a, b entity.Note) int {
	if a.IsPinned != b.IsPinned {
		if a.IsPinned {
			return -1
		}
		return 1
	}

	if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
		return c
	}

	return strings.Compare(b.ID, a.ID)
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}

	c := *v
	return &c
}

func cloneNote(n entity.Note) entity.Note {
	n.CategoryID = clone(n.CategoryID)
	n.DeletedAt = clone(n.DeletedAt)

	return n
}
