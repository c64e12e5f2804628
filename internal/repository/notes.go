package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/internal/query"
	"github.com/evgeniy-krivenko/notebook/internal/repository/converter"
	"github.com/evgeniy-krivenko/notebook/internal/repository/rows"
	"github.com/evgeniy-krivenko/notebook/pkg/logger/slogx"
)

func liveNote(ownerID, noteID string) sq.Eq {
	return sq.Eq{"id": noteID, "owner_id": ownerID, "deleted_at": nil}
}

func (r *Repo) CreateNote(ctx context.Context, note entity.Note) (entity.Note, error) {
	q := psql.Insert("notes").
		Columns("id", "owner_id", "title", "content", "category_id").
		Values(note.ID, note.OwnerID, note.Title, note.Content, converter.ConvertStringToText(note.CategoryID)).
		Suffix(noteReturning)

	row, err := r.collectNote(ctx, q)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.Note{}, entity.ErrInvalidCategory
		}
		return entity.Note{}, fmt.Errorf("create note: %v", err)
	}

	slogx.Debug(ctx, "success to create note", slogx.UserId(note.OwnerID), slogx.NoteId(note.ID))

	return converter.ConvertNoteToEntity(row), nil
}

func (r *Repo) GetNote(ctx context.Context, ownerID, noteID string) (entity.Note, error) {
	q := psql.Select(noteColumns...).
		From("notes n").
		Where(sq.Eq{"n.id": noteID, "n.owner_id": ownerID, "n.deleted_at": nil})

	row, err := r.collectNote(ctx, q)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNotFound
		}
		return entity.Note{}, fmt.Errorf("get note: %v", err)
	}

	return converter.ConvertNoteToEntity(row), nil
}

func (r *Repo) ListNotes(ctx context.Context, spec query.Spec) ([]entity.Note, error) {
	rs, err := r.query(ctx, listNotesQuery(spec))
	if err != nil {
		return nil, fmt.Errorf("list notes: %v", err)
	}

	notes, err := pgx.CollectRows(rs, pgx.RowToStructByName[rows.Note])
	if err != nil {
		return nil, fmt.Errorf("collect notes: %v", err)
	}

	return converter.ConvertNotesToEntity(notes), nil
}

func (r *Repo) CountNotes(ctx context.Context, spec query.Spec) (int, error) {
	rs, err := r.query(ctx, countNotesQuery(spec))
	if err != nil {
		return 0, fmt.Errorf("count notes: %v", err)
	}

	total, err := pgx.CollectOneRow(rs, pgx.RowTo[int64])
	if err != nil {
		return 0, fmt.Errorf("collect notes count: %v", err)
	}

	return int(total), nil
}

// UpdateNoteContent writes content only if the note is live, owned by
// ownerID and still at expectedRevision. Any mismatch is ErrConflict.
func (r *Repo) UpdateNoteContent(
	ctx context.Context,
	ownerID, noteID string,
	content string,
	title *string,
	expectedRevision int64,
) (entity.RevisionResult, error) {
	q := psql.Update("notes").
		Set("content", content).
		Set("revision", sq.Expr("revision + 1")).
		Set("updated_at", sq.Expr("now()"))

	if title != nil {
		q = q.Set("title", *title)
	}

	where := liveNote(ownerID, noteID)
	where["revision"] = expectedRevision

	rs, err := r.query(ctx, q.Where(where).Suffix("RETURNING id, revision, updated_at"))
	if err != nil {
		return entity.RevisionResult{}, fmt.Errorf("update note content: %v", err)
	}

	row, err := pgx.CollectOneRow(rs, pgx.RowToStructByName[rows.Revision])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.RevisionResult{}, entity.ErrConflict
		}
		return entity.RevisionResult{}, fmt.Errorf("collect note revision: %v", err)
	}

	return converter.ConvertRevisionToEntity(row), nil
}

func (r *Repo) UpdateNoteFlags(ctx context.Context, ownerID, noteID string, flags entity.NoteFlags) error {
	q := psql.Update("notes").Set("updated_at", sq.Expr("now()"))

	if flags.IsPinned != nil {
		q = q.Set("is_pinned", *flags.IsPinned)
	}
	if flags.IsArchived != nil {
		q = q.Set("is_archived", *flags.IsArchived)
	}

	n, err := r.exec(ctx, q.Where(liveNote(ownerID, noteID)))
	if err != nil {
		return fmt.Errorf("update note flags: %v", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repo) SetNoteCategory(ctx context.Context, ownerID, noteID string, categoryID *string) error {
	q := psql.Update("notes").
		Set("category_id", converter.ConvertStringToText(categoryID)).
		Set("updated_at", sq.Expr("now()")).
		Where(liveNote(ownerID, noteID))

	n, err := r.exec(ctx, q)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.ErrInvalidCategory
		}
		return fmt.Errorf("set note category: %v", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repo) SoftDeleteNote(ctx context.Context, ownerID, noteID string) error {
	q := psql.Update("notes").
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(liveNote(ownerID, noteID))

	n, err := r.exec(ctx, q)
	if err != nil {
		return fmt.Errorf("soft delete note: %v", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// CountCategoryNotes counts live notes of ownerID that reference categoryID.
func (r *Repo) CountCategoryNotes(ctx context.Context, ownerID, categoryID string) (int, error) {
	q := psql.Select("count(*)").
		From("notes").
		Where(sq.Eq{"owner_id": ownerID, "category_id": categoryID, "deleted_at": nil})

	rs, err := r.query(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("count category notes: %v", err)
	}

	n, err := pgx.CollectOneRow(rs, pgx.RowTo[int64])
	if err != nil {
		return 0, fmt.Errorf("collect category notes count: %v", err)
	}

	return int(n), nil
}

// ReassignCategoryNotes points every note of ownerID referencing from at to,
// soft-deleted notes included. A nil to clears the reference.
func (r *Repo) ReassignCategoryNotes(ctx context.Context, ownerID, from string, to *string) (int64, error) {
	q := psql.Update("notes").
		Set("category_id", converter.ConvertStringToText(to)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"owner_id": ownerID, "category_id": from})

	n, err := r.exec(ctx, q)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, entity.ErrInvalidCategory
		}
		return 0, fmt.Errorf("reassign category notes: %v", err)
	}

	return n, nil
}

func (r *Repo) collectNote(ctx context.Context, q sq.Sqlizer) (rows.Note, error) {
	rs, err := r.query(ctx, q)
	if err != nil {
		return rows.Note{}, err
	}

	return pgx.CollectOneRow(rs, pgx.RowToStructByName[rows.Note])
}
