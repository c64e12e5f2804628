package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
)

// reconcile repoints every note of ownerID that references categoryID, so
// the category row can be deleted. It must run in the deleting transaction.
//
// With no live dependents the resolution is irrelevant: leftover references
// from soft-deleted notes are cleared.
func (u *Usecase) reconcile(
	ctx context.Context,
	ownerID, categoryID string,
	live int,
	res entity.DeleteResolution,
) (int64, error) {
	if live == 0 || res.Clear {
		n, err := u.notes.ReassignCategoryNotes(ctx, ownerID, categoryID, nil)
		if err != nil {
			return 0, fmt.Errorf("clear category notes: %w", err)
		}
		return n, nil
	}

	target := strings.TrimSpace(*res.ReassignTo)
	if target == categoryID {
		return 0, entity.ErrInvalidCategory
	}

	if _, err := u.repo.GetCategory(ctx, ownerID, target); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return 0, entity.ErrInvalidCategory
		}
		return 0, fmt.Errorf("get reassign target: %w", err)
	}

	n, err := u.notes.ReassignCategoryNotes(ctx, ownerID, categoryID, &target)
	if err != nil {
		return 0, fmt.Errorf("reassign category notes: %w", err)
	}

	return n, nil
}
