package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/internal/query"
	"github.com/evgeniy-krivenko/notebook/pkg/logger/slogx"
)

type notesRepository interface {
	CreateNote(ctx context.Context, note entity.Note) (entity.Note, error)
	GetNote(ctx context.Context, ownerID, noteID string) (entity.Note, error)
	ListNotes(ctx context.Context, spec query.Spec) ([]entity.Note, error)
	CountNotes(ctx context.Context, spec query.Spec) (int, error)
	UpdateNoteContent(
		ctx context.Context,
		ownerID, noteID string,
		content string,
		title *string,
		expectedRevision int64,
	) (entity.RevisionResult, error)
	UpdateNoteFlags(ctx context.Context, ownerID, noteID string, flags entity.NoteFlags) error
	SetNoteCategory(ctx context.Context, ownerID, noteID string, categoryID *string) error
	SoftDeleteNote(ctx context.Context, ownerID, noteID string) error
}

type categoriesRepository interface {
	GetCategory(ctx context.Context, ownerID, categoryID string) (entity.Category, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

type eventBus interface {
	Publish(ev entity.ChangeEvent)
	Subscribe(ctx context.Context, ownerID string) <-chan entity.ChangeEvent
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo       notesRepository      `option:"mandatory" validate:"required"`
	categories categoriesRepository `option:"mandatory" validate:"required"`
	tx         txRunner             `option:"mandatory" validate:"required"`
	events     eventBus             `option:"mandatory" validate:"required"`

	newID func() string
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	if opts.newID == nil {
		opts.newID = uuid.NewString
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) ListNotes(ctx context.Context, ownerID string, params query.Params) (entity.NotePage, error) {
	if ownerID == "" {
		return entity.NotePage{}, entity.ErrUnauthorized
	}

	spec := query.Normalize(ownerID, params)

	total, err := u.repo.CountNotes(ctx, spec)
	if err != nil {
		return entity.NotePage{}, fmt.Errorf("usecase count notes: %w", err)
	}

	items, err := u.repo.ListNotes(ctx, spec)
	if err != nil {
		return entity.NotePage{}, fmt.Errorf("usecase list notes: %w", err)
	}

	return entity.NotePage{
		Items:     items,
		Total:     total,
		Page:      spec.Page,
		PageSize:  spec.PageSize,
		PageCount: query.PageCount(total, spec.PageSize),
	}, nil
}

func (u *Usecase) GetNote(ctx context.Context, ownerID, noteID string) (entity.Note, error) {
	if ownerID == "" {
		return entity.Note{}, entity.ErrUnauthorized
	}

	note, err := u.repo.GetNote(ctx, ownerID, noteID)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase get note: %w", err)
	}

	return note, nil
}

func (u *Usecase) CreateNote(ctx context.Context, ownerID string, in entity.CreateNoteInput) (entity.Note, error) {
	if ownerID == "" {
		return entity.Note{}, entity.ErrUnauthorized
	}

	title, err := entity.NormalizeTitle(in.Title)
	if err != nil {
		return entity.Note{}, err
	}

	note := entity.Note{
		ID:         u.newID(),
		OwnerID:    ownerID,
		Title:      title,
		CategoryID: normalizeID(in.CategoryID),
	}
	if in.Content != nil {
		note.Content = *in.Content
	}

	err = u.tx.RunInTx(ctx, func(ctx context.Context) error {
		if note.CategoryID != nil {
			if err := u.checkCategory(ctx, ownerID, *note.CategoryID); err != nil {
				return err
			}
		}

		note, err = u.repo.CreateNote(ctx, note)
		return err
	})
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	u.publish(ownerID, note.ID, entity.ActionCreated)

	slogx.Info(ctx, "success to create note", slogx.UserId(ownerID), slogx.NoteId(note.ID))
	return note, nil
}

// UpdateNoteContent applies an editor save. It succeeds only when the note
// is live, owned by ownerID and still at in.ExpectedRevision; otherwise the
// caller gets entity.ErrConflict and must refetch.
func (u *Usecase) UpdateNoteContent(
	ctx context.Context,
	ownerID, noteID string,
	in entity.UpdateContentInput,
) (entity.RevisionResult, error) {
	if ownerID == "" {
		return entity.RevisionResult{}, entity.ErrUnauthorized
	}

	if in.ExpectedRevision < 0 {
		return entity.RevisionResult{}, entity.NewValidationError("expectedRevision", "must not be negative")
	}

	var title *string
	if in.Title != nil {
		t, err := entity.NormalizeTitle(in.Title)
		if err != nil {
			return entity.RevisionResult{}, err
		}
		title = &t
	}

	res, err := u.repo.UpdateNoteContent(ctx, ownerID, noteID, in.Content, title, in.ExpectedRevision)
	if err != nil {
		if errors.Is(err, entity.ErrConflict) {
			slogx.Debug(ctx, "note revision conflict",
				slogx.UserId(ownerID),
				slogx.NoteId(noteID),
			)
		}
		return entity.RevisionResult{}, fmt.Errorf("usecase update note content: %w", err)
	}

	u.publish(ownerID, noteID, entity.ActionUpdated)

	return res, nil
}

func (u *Usecase) TogglePin(ctx context.Context, ownerID, noteID string, pin bool) error {
	return u.updateFlags(ctx, ownerID, noteID, entity.NoteFlags{IsPinned: &pin})
}

func (u *Usecase) ToggleArchive(ctx context.Context, ownerID, noteID string, archive bool) error {
	return u.updateFlags(ctx, ownerID, noteID, entity.NoteFlags{IsArchived: &archive})
}

func (u *Usecase) updateFlags(ctx context.Context, ownerID, noteID string, flags entity.NoteFlags) error {
	if ownerID == "" {
		return entity.ErrUnauthorized
	}

	if err := u.repo.UpdateNoteFlags(ctx, ownerID, noteID, flags); err != nil {
		return fmt.Errorf("usecase update note flags: %w", err)
	}

	u.publish(ownerID, noteID, entity.ActionUpdated)

	return nil
}

// SoftDeleteNote hides the note from every listing. Deleting an already
// deleted note is entity.ErrNotFound.
func (u *Usecase) SoftDeleteNote(ctx context.Context, ownerID, noteID string) error {
	if ownerID == "" {
		return entity.ErrUnauthorized
	}

	if err := u.repo.SoftDeleteNote(ctx, ownerID, noteID); err != nil {
		return fmt.Errorf("usecase delete note: %w", err)
	}

	u.publish(ownerID, noteID, entity.ActionDeleted)

	slogx.Info(ctx, "success to delete note", slogx.UserId(ownerID), slogx.NoteId(noteID))
	return nil
}

// AssignNoteCategory sets or, with a nil categoryID, clears the note's category.
func (u *Usecase) AssignNoteCategory(ctx context.Context, ownerID, noteID string, categoryID *string) error {
	if ownerID == "" {
		return entity.ErrUnauthorized
	}

	categoryID = normalizeID(categoryID)

	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		if categoryID != nil {
			if err := u.checkCategory(ctx, ownerID, *categoryID); err != nil {
				return err
			}
		}

		return u.repo.SetNoteCategory(ctx, ownerID, noteID, categoryID)
	})
	if err != nil {
		return fmt.Errorf("usecase assign note category: %w", err)
	}

	u.publish(ownerID, noteID, entity.ActionUpdated)

	return nil
}

func (u *Usecase) SubscribeToEvents(ctx context.Context, ownerID string) (<-chan entity.ChangeEvent, error) {
	if ownerID == "" {
		return nil, entity.ErrUnauthorized
	}

	return u.events.Subscribe(ctx, ownerID), nil
}

func (u *Usecase) checkCategory(ctx context.Context, ownerID, categoryID string) error {
	if _, err := u.categories.GetCategory(ctx, ownerID, categoryID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrInvalidCategory
		}
		return err
	}

	return nil
}

func (u *Usecase) publish(ownerID, noteID string, action entity.Action) {
	u.events.Publish(entity.ChangeEvent{
		OwnerID:  ownerID,
		Resource: entity.ResourceNote,
		ID:       noteID,
		Action:   action,
	})
}

func normalizeID(id *string) *string {
	if id == nil {
		return nil
	}

	s := strings.TrimSpace(*id)
	if s == "" {
		return nil
	}

	return &s
}
