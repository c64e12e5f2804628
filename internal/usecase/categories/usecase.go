package categories

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/pkg/logger/slogx"
)

type categoriesRepository interface {
	CreateCategory(ctx context.Context, c entity.Category) (entity.Category, error)
	GetCategory(ctx context.Context, ownerID, categoryID string) (entity.Category, error)
	LockCategory(ctx context.Context, ownerID, categoryID string) (entity.Category, error)
	ListCategories(ctx context.Context, ownerID string) ([]entity.Category, error)
	RenameCategory(ctx context.Context, ownerID, categoryID, name string) (entity.Category, error)
	DeleteCategory(ctx context.Context, ownerID, categoryID string) error
}

type notesRepository interface {
	CountCategoryNotes(ctx context.Context, ownerID, categoryID string) (int, error)
	ReassignCategoryNotes(ctx context.Context, ownerID, from string, to *string) (int64, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

type publisher interface {
	Publish(ev entity.ChangeEvent)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo      categoriesRepository `option:"mandatory" validate:"required"`
	notes     notesRepository      `option:"mandatory" validate:"required"`
	tx        txRunner             `option:"mandatory" validate:"required"`
	publisher publisher            `option:"mandatory" validate:"required"`

	newID func() string
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate categories usecase options: %v", err)
	}

	if opts.newID == nil {
		opts.newID = uuid.NewString
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) ListCategories(ctx context.Context, ownerID string) ([]entity.Category, error) {
	if ownerID == "" {
		return nil, entity.ErrUnauthorized
	}

	categories, err := u.repo.ListCategories(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("usecase list categories: %w", err)
	}

	return categories, nil
}

func (u *Usecase) CreateCategory(ctx context.Context, ownerID, name, color string) (entity.Category, error) {
	if ownerID == "" {
		return entity.Category{}, entity.ErrUnauthorized
	}

	name, err := entity.NormalizeCategoryName(name)
	if err != nil {
		return entity.Category{}, err
	}

	c, err := entity.ParseColor(color)
	if err != nil {
		return entity.Category{}, err
	}

	category, err := u.repo.CreateCategory(ctx, entity.Category{
		ID:      u.newID(),
		OwnerID: ownerID,
		Name:    name,
		Color:   c,
	})
	if err != nil {
		return entity.Category{}, fmt.Errorf("usecase create category: %w", err)
	}

	u.publish(ownerID, category.ID, entity.ActionCreated)

	slogx.Info(ctx, "success to create category", slogx.UserId(ownerID), slogx.CategoryId(category.ID))
	return category, nil
}

func (u *Usecase) RenameCategory(ctx context.Context, ownerID, categoryID, name string) (entity.Category, error) {
	if ownerID == "" {
		return entity.Category{}, entity.ErrUnauthorized
	}

	name, err := entity.NormalizeCategoryName(name)
	if err != nil {
		return entity.Category{}, err
	}

	category, err := u.repo.RenameCategory(ctx, ownerID, categoryID, name)
	if err != nil {
		return entity.Category{}, fmt.Errorf("usecase rename category: %w", err)
	}

	u.publish(ownerID, categoryID, entity.ActionUpdated)

	return category, nil
}

// DeleteCategory removes the category. Notes still pointing at it are
// reconciled according to res in the same transaction; with live notes and
// an empty res nothing changes and entity.ErrCategoryInUse is returned.
func (u *Usecase) DeleteCategory(ctx context.Context, ownerID, categoryID string, res entity.DeleteResolution) error {
	if ownerID == "" {
		return entity.ErrUnauthorized
	}

	if err := res.Validate(); err != nil {
		return err
	}

	var moved int64
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := u.repo.LockCategory(ctx, ownerID, categoryID); err != nil {
			return err
		}

		live, err := u.notes.CountCategoryNotes(ctx, ownerID, categoryID)
		if err != nil {
			return err
		}

		if live > 0 && res.IsEmpty() {
			return entity.ErrCategoryInUse
		}

		moved, err = u.reconcile(ctx, ownerID, categoryID, live, res)
		if err != nil {
			return err
		}

		return u.repo.DeleteCategory(ctx, ownerID, categoryID)
	})
	if err != nil {
		return fmt.Errorf("usecase delete category: %w", err)
	}

	u.publish(ownerID, categoryID, entity.ActionDeleted)

	slogx.Info(ctx, "success to delete category",
		slogx.UserId(ownerID),
		slogx.CategoryId(categoryID),
		slog.Int64("reconciled_notes", moved),
	)
	return nil
}

func (u *Usecase) publish(ownerID, categoryID string, action entity.Action) {
	u.publisher.Publish(entity.ChangeEvent{
		OwnerID:  ownerID,
		Resource: entity.ResourceCategory,
		ID:       categoryID,
		Action:   action,
	})
}
